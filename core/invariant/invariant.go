// Package invariant provides contract assertions for planar.
//
// Assertions are a force multiplier for discovering bugs. Use Precondition
// and Postcondition to express function contracts on internal code paths.
//
// All functions panic on violation - these are programming errors, not user
// errors. User input failures (bad dimensions, non-shape values) surface as
// geomerr values instead and never panic.
package invariant

import (
	"fmt"
	"reflect"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func Info(shape geometry.Shape) ShapeInfo {
//	    invariant.NotNil(shape, "shape")
//	    // ... work ...
//	}
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
// Panics with POSTCONDITION VIOLATION if condition is false.
//
// Example:
//
//	area := math.Sqrt(radicand)
//	invariant.Postcondition(!math.IsNaN(area), "area must be a number")
func Postcondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// NotNil panics if value is nil, including typed nils such as
// (*geometry.Circle)(nil) stored in an interface.
func NotNil(value interface{}, name string) {
	if value == nil || isNilValue(value) {
		fail("PRECONDITION", "%s must not be nil", name)
	}
}

// NonNegative panics if value is negative or NaN. This is a postcondition
// check for computed areas, which can never be below zero for a validly
// constructed shape.
func NonNegative(value float64, name string) {
	if !(value >= 0) {
		fail("POSTCONDITION", "%s must be non-negative, got %v", name, value)
	}
}

// isNilValue detects typed nils using reflection.
func isNilValue(value interface{}) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// fail panics with a formatted message including call stack context.
func fail(kind, format string, args ...interface{}) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)

	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}

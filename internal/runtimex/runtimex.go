// Package runtimex contains runtime extensions. This package is inspired to
// https://pkg.go.dev/github.com/m-lab/go/rtx, except that it's simpler.
//
// Use these functions for programmer errors only. The simulation never
// panics because of user-provided settings.
package runtimex

import "fmt"

// PanicOnError calls panic() if err is not nil.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}

// Assert calls panic if assertion is false.
func Assert(assertion bool, message string) {
	if !assertion {
		panic(message)
	}
}

// PanicIfNil calls panic if the given interface is nil.
func PanicIfNil(v any, message string) {
	Assert(v != nil, message)
}

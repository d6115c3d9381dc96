package runtimex

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, f func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatal("expected a panic")
		}
	}()
	f()
	return
}

func TestPanicOnError(t *testing.T) {
	t.Run("error is nil", func(t *testing.T) {
		PanicOnError(nil, "antani")
	})

	t.Run("error is not nil", func(t *testing.T) {
		expected := errors.New("mocked error")
		r := expectPanic(t, func() {
			PanicOnError(expected, "antani")
		})
		if err, ok := r.(error); !ok || !errors.Is(err, expected) {
			t.Fatal("unexpected panic value", r)
		}
	})
}

func TestAssert(t *testing.T) {
	Assert(true, "antani")
	r := expectPanic(t, func() {
		Assert(false, "antani")
	})
	if r != "antani" {
		t.Fatal("unexpected panic value", r)
	}
}

func TestPanicIfNil(t *testing.T) {
	PanicIfNil(17, "antani")
	expectPanic(t, func() {
		PanicIfNil(nil, "antani")
	})
}

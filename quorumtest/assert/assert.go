/*
Package assert provides the few assertion helpers shared by the tests of
this repository. Use testify when more is needed.
*/
package assert

import (
	"bytes"
	"reflect"

	"github.com/iov-one/quorum/errors"
)

// Tester is the subset of testing.TB used by the assertions.
type Tester interface {
	Helper()
	Logf(string, ...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil. Typed nil pointers, maps
// and slices count as nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if value == nil {
		return
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		if v.IsNil() {
			return
		}
	}
	// %+v prints the stack trace of wrapped errors.
	t.Fatalf("want a nil value, got %+v", value)
}

// Equal fails the test unless want and got are deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		return
	}
	t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
}

// EqualBytes fails the test if two byte slices differ. Nil and empty
// slices are considered equal.
func EqualBytes(t Tester, want, got []byte) {
	t.Helper()
	if !bytes.Equal(want, got) {
		t.Fatalf("bytes not equal \nwant %x\n got %x", want, got)
	}
}

// IsErr fails the test unless got is want or wraps it. A nil want only
// matches a nil got.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Fatalf("want no error, got %+v", got)
		}
		return
	}
	if root, ok := want.(*errors.Error); ok && root.Is(got) {
		return
	}
	if want == got {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}

// FieldError fails the test unless err holds exactly one error for the
// named field and that error wraps want. Use a nil want to ensure that
// the field has no error.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()
	errs := errors.FieldErrors(err, field)
	if want == nil && len(errs) == 0 {
		return
	}
	if want != nil && len(errs) == 1 {
		if !want.Is(errs[0]) {
			t.Fatalf("unexpected %q field error: %q", field, errs[0])
		}
		return
	}
	for i, e := range errs {
		t.Logf("\terror %d: %q", i+1, e)
	}
	if want == nil {
		t.Fatalf("want no error for %q, got %d", field, len(errs))
	} else {
		t.Fatalf("want one %q error for %q, got %d", want, field, len(errs))
	}
}

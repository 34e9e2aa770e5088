package errors

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Field returns an error that attributes err to the named field of a
// validated value. It returns nil if err is nil. The description is
// optional and formatted with args when given.
//
// Field names follow Go naming, for example Target or Balance.
// Elements of a list are named by their index, see Index.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{name: name, desc: description, parent: err}
}

// Index returns the field name of the i-th element of a list field, for
// example Addresses.2
func Index(name string, i int) string {
	return name + "." + strconv.Itoa(i)
}

// AppendField appends a field error to errs. Nothing is appended if fieldErr
// is nil.
func AppendField(errs error, name string, fieldErr error) error {
	return Append(errs, Field(name, fieldErr, ""))
}

type fieldError struct {
	name   string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	if e.desc != "" {
		return fmt.Sprintf("field %q: %s: %s", e.name, e.desc, e.parent)
	}
	return fmt.Sprintf("field %q: %s", e.name, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}

// FieldErrors returns all errors attributed to the named field, searching
// through wrapped errors and error groups. A matching field error is
// returned as a whole, its cause is not searched further.
func FieldErrors(err error, name string) []error {
	var found []error
	walkFields(err, func(f *fieldError) bool {
		if f.name != name {
			return false
		}
		found = append(found, f)
		return true
	})
	return found
}

// walkFields calls fn for every field error in the tree of err. When fn
// returns true, the cause of that field error is skipped.
func walkFields(err error, fn func(*fieldError) bool) {
	for !isNilErr(err) {
		if f, ok := err.(*fieldError); ok && fn(f) {
			return
		}
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				walkFields(e, fn)
			}
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}

// Package form adapts concrete input surfaces to submission.Form.
package form

import (
	"errors"
	"net/url"

	"github.com/MikhailRaia/url-shortener-client/internal/submission"
)

// Values is a form backed by decoded HTTP form fields.
type Values struct {
	values url.Values
}

// NewValues wraps v. A nil v behaves as an empty form.
func NewValues(v url.Values) *Values {
	if v == nil {
		v = url.Values{}
	}
	return &Values{values: v}
}

// Value returns the first value for name, or "" when absent.
func (v *Values) Value(name string) string {
	return v.values.Get(name)
}

// Reset clears every field.
func (v *Values) Reset() {
	clear(v.values)
}

// Fields is a form backed by a plain map, used by the CLI and gRPC fronts.
type Fields map[string]string

func (f Fields) Value(name string) string {
	return f[name]
}

// Reset clears every field.
func (f Fields) Reset() {
	clear(f)
}

// ErrTooManyArgs is returned when more than a URL and a custom code are given.
var ErrTooManyArgs = errors.New("expected <url> [custom_code]")

// ParseArgs maps positional CLI arguments onto form fields.
func ParseArgs(args []string) (Fields, error) {
	if len(args) > 2 {
		return nil, ErrTooManyArgs
	}

	fields := Fields{}
	if len(args) > 0 {
		fields[submission.FieldURL] = args[0]
	}
	if len(args) > 1 {
		fields[submission.FieldCustomCode] = args[1]
	}

	return fields, nil
}

package bucket

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rickgao/mdexport/internal/rebase"
)

// ErrMalformedValue matches every value that fails to decode.
var ErrMalformedValue = errors.New("malformed value")

// MalformedValueError reports the tuple that failed to decode.
type MalformedValueError struct {
	Kind   string
	Row    string
	Column string
	Value  string
	Err    error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("%s: row %q column %q value %q: %v", e.Kind, e.Row, e.Column, e.Value, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrMalformedValue.
func (e *MalformedValueError) Is(target error) bool {
	return target == ErrMalformedValue
}

// Decoder turns a raw value into a typed field value.
type Decoder func(raw string, env Env) (any, error)

// Date parses a YYYY-MM-DD value and shifts it by the record offset.
func Date(raw string, env Env) (any, error) {
	return rebase.ShiftString(strings.TrimSpace(raw), env.Offset)
}

// Number parses a finite float and adds the record noise.
func Number(raw string, env Env) (any, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("non-finite number %q", raw)
	}
	return v + env.Noise, nil
}

// Flag is false only for the exact string "false".
func Flag(raw string, _ Env) (any, error) {
	return raw != "false", nil
}

// Package classes holds record fixtures: plain mutable values with accessors, structural equality,
// hashing and a fixed string form.
package classes

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/gostdlib/fixtures/errors"

	"github.com/cespare/xxhash/v2"
	"github.com/go-json-experiment/json"
)

// Example is a mutable record with a string, an int and a bool field. The zero value is ready
// to use and is equal to New(). Only the setters and UnmarshalJSON need a pointer; an Example
// value prints, compares and hashes the same as a pointer to it. Example is not safe for
// concurrent mutation.
type Example struct {
	s string
	i int
	b bool
}

// New returns an Example with all fields at their defaults ("", 0, false).
func New() *Example {
	return &Example{}
}

// GetString retrieves the content of the string field.
func (e Example) GetString() string {
	return e.s
}

// SetString sets the string field.
func (e *Example) SetString(s string) {
	e.s = s
}

// GetInt retrieves the content of the int field.
func (e Example) GetInt() int {
	return e.i
}

// SetInt sets the int field.
func (e *Example) SetInt(i int) {
	e.i = i
}

// GetBool retrieves the content of the bool field.
func (e Example) GetBool() bool {
	return e.b
}

// SetBool sets the bool field.
func (e *Example) SetBool(b bool) {
	e.b = b
}

// Equal reports whether other is an Example or *Example holding the same three field values.
// nil, a nil *Example and values of any other type are never equal.
func (e Example) Equal(other any) bool {
	var o Example
	switch v := other.(type) {
	case Example:
		o = v
	case *Example:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}
	return e.s == o.s && e.i == o.i && e.b == o.b
}

// Hash returns a hash of the fields in declaration order. Values that are Equal have the same Hash.
func (e Example) Hash() uint64 {
	var buf [8]byte
	d := xxhash.New()

	// The string is length prefixed so that ("a", ...) and ("", ...) with shifted bytes cannot collide.
	binary.LittleEndian.PutUint64(buf[:], uint64(len(e.s)))
	d.Write(buf[:])
	d.WriteString(e.s)

	binary.LittleEndian.PutUint64(buf[:], uint64(int64(e.i)))
	d.Write(buf[:])

	if e.b {
		d.Write([]byte{1})
	} else {
		d.Write([]byte{0})
	}
	return d.Sum64()
}

// String implements fmt.Stringer. The output is "Example(<string>, <int>, <bool>)".
func (e Example) String() string {
	return fmt.Sprintf("Example(%s, %d, %t)", e.s, e.i, e.b)
}

// LogValue implements slog.LogValuer.
func (e Example) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("string", e.s),
		slog.Int("int", e.i),
		slog.Bool("boolean", e.b),
	)
}

// wire is the JSON form of Example. Pointers let UnmarshalJSON leave absent members untouched.
type wire struct {
	String  *string `json:"string"`
	Int     *int    `json:"int"`
	Boolean *bool   `json:"boolean"`
}

// MarshalJSON implements json.Marshaler. The output is {"string":...,"int":...,"boolean":...}.
func (e Example) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{String: &e.s, Int: &e.i, Boolean: &e.b})
}

// UnmarshalJSON implements json.Unmarshaler. Members missing from b keep their current values.
// Unknown members are an error.
func (e *Example) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w, json.RejectUnknownMembers(true)); err != nil {
		return errors.E(context.Background(), errors.CatRequest, errors.TypeBadJSON, fmt.Errorf("classes.Example: %w", err))
	}

	if w.String != nil {
		e.s = *w.String
	}
	if w.Int != nil {
		e.i = *w.Int
	}
	if w.Boolean != nil {
		e.b = *w.Boolean
	}
	return nil
}

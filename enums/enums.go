// Package enums holds enumeration fixtures. Each variant carries a label that is set once, in the
// line comment of its constant, and read back with Name().
package enums

import (
	"context"
	"fmt"

	"github.com/gostdlib/fixtures/errors"
)

//go:generate stringer -type=WithMethods -linecomment

// WithMethods is an enumeration whose variants carry a string label. The zero value is not a variant.
type WithMethods uint8

const (
	// Value1 is the first variant.
	Value1 WithMethods = iota + 1 // value1
	// Value2 is the second variant.
	Value2 // value2
)

var values = []WithMethods{Value1, Value2}

// byName maps each label to its variant.
var byName = make(map[string]WithMethods, len(values))

func init() {
	for _, v := range values {
		byName[v.String()] = v
	}
	if len(byName) != len(values) {
		panic("enums: WithMethods labels are not unique")
	}
}

// Values returns every variant in definition order. The returned slice may be modified.
func Values() []WithMethods {
	out := make([]WithMethods, len(values))
	copy(out, values)
	return out
}

// Valid returns true if v is one of the defined variants.
func (v WithMethods) Valid() bool {
	return v >= Value1 && v <= Value2
}

// Name returns the label of the variant. An invalid value returns the empty string.
func (v WithMethods) Name() string {
	if !v.Valid() {
		return ""
	}
	return v.String()
}

// Parse returns the variant with the given label. Labels are case sensitive.
func Parse(ctx context.Context, label string) (WithMethods, error) {
	v, ok := byName[label]
	if !ok {
		return 0, errors.E(ctx, errors.CatRequest, errors.TypeUnknownLabel, fmt.Errorf("%q is not a WithMethods label", label))
	}
	return v, nil
}

// MarshalText implements encoding.TextMarshaler. The text form of a variant is its label.
func (v WithMethods) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, errors.E(context.Background(), errors.CatInternal, errors.TypeInvalidVariant, fmt.Errorf("%s is not a WithMethods variant", v))
	}
	return []byte(v.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *WithMethods) UnmarshalText(b []byte) error {
	p, err := Parse(context.Background(), string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

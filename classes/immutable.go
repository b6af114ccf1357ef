package classes

// ImExample is a read-only snapshot of an Example. Setters return a modified copy and leave the
// receiver unchanged, so an ImExample can be shared between goroutines.
type ImExample struct {
	s string
	i int
	b bool
}

// Immutable converts the mutable Example to a read-only ImExample.
func (e Example) Immutable() ImExample {
	return ImExample{s: e.s, i: e.i, b: e.b}
}

// Mutable converts the snapshot back to a mutable Example. Changes to the result do not affect r.
func (r ImExample) Mutable() Example {
	return Example{s: r.s, i: r.i, b: r.b}
}

// GetString retrieves the content of the string field.
func (r ImExample) GetString() string {
	return r.s
}

// SetString returns a copy of the snapshot with the string field set to the new value.
func (r ImExample) SetString(value string) ImExample {
	r.s = value
	return r
}

// GetInt retrieves the content of the int field.
func (r ImExample) GetInt() int {
	return r.i
}

// SetInt returns a copy of the snapshot with the int field set to the new value.
func (r ImExample) SetInt(value int) ImExample {
	r.i = value
	return r
}

// GetBool retrieves the content of the bool field.
func (r ImExample) GetBool() bool {
	return r.b
}

// SetBool returns a copy of the snapshot with the bool field set to the new value.
func (r ImExample) SetBool(value bool) ImExample {
	r.b = value
	return r
}

// String implements fmt.Stringer using the same format as Example.
func (r ImExample) String() string {
	return r.Mutable().String()
}

// Equal reports whether other is an ImExample with the same field values. Like Example.Equal,
// values of any other type, including Example, are never equal.
func (r ImExample) Equal(other any) bool {
	o, ok := other.(ImExample)
	if !ok {
		return false
	}
	return r.Mutable().Equal(o.Mutable())
}

// Hash returns the same hash as the Example the snapshot was taken from.
func (r ImExample) Hash() uint64 {
	return r.Mutable().Hash()
}

// MarshalJSON implements json.Marshaler with the same form as Example.
func (r ImExample) MarshalJSON() ([]byte, error) {
	return r.Mutable().MarshalJSON()
}

package entity

import (
	"bytes"
	"encoding/json"
)

// Optional carries a value together with whether the caller supplied it.
// Patches use it so that "leave untouched" (Set == false) is distinct from
// "clear" (Set == true with a nil pointer Value).
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// ApplyTo overwrites *dst when the value was supplied.
func (o Optional[T]) ApplyTo(dst *T) bool {
	if o.Set {
		*dst = o.Value
	}

	return o.Set
}

// UnmarshalJSON marks the field as present. A JSON null decodes to the zero
// value of T, which clears pointer fields.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero

		return nil
	}

	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON encodes the value, or null when absent.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

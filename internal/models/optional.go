package models

import (
	"bytes"
	"encoding/json"
)

// Optional carries a field value for partial updates, distinguishing
// "absent from the request" from a legitimate zero value. A field left
// absent keeps its stored value; a present field overwrites it.
type Optional[T any] struct {
	value T
	set   bool
}

// Some wraps a value as a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the field was supplied.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// UnmarshalJSON marks the field present. A JSON null is treated the
// same as an absent key: the field stays unset.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.set = true
	return nil
}

// MarshalJSON renders an unset field as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

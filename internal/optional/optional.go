// Package optional distinguishes "field omitted" from "field explicitly set
// to null" in JSON patch payloads. A plain pointer cannot express the
// difference, and nullable columns like a task's due date need all three
// states.
package optional

import (
	json "github.com/bytedance/sonic"
)

// Optional is a tri-state JSON field: absent, null, or a value.
type Optional[T any] struct {
	// Set reports whether the field appeared in the payload at all.
	Set bool
	// Valid reports whether the field carried a non-null value.
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Some returns an Optional carrying a value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

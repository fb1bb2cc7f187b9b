// Package wire defines the JSON shapes the resume services speak: optionals
// as zero-or-one element arrays, ids as decimal strings, skill levels as
// single-key tagged objects and responses as an ok/err discriminant.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Opt is an optional value encoded as [] when absent and [v] when present.
type Opt[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Opt[T] { return Opt[T]{v: v, ok: true} }

func None[T any]() Opt[T] { return Opt[T]{} }

// FromZero is None for the zero value of T and Some otherwise.
func FromZero[T comparable](v T) Opt[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}

func (o Opt[T]) Get() (T, bool) { return o.v, o.ok }

func (o Opt[T]) IsSome() bool { return o.ok }

// OrZero returns the value, or the zero value of T when absent.
func (o Opt[T]) OrZero() T { return o.v }

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(o.v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(b)+2)
	out = append(out, '[')
	out = append(out, b...)
	return append(out, ']'), nil
}

func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*o = Opt[T]{}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("optional: expected array: %w", err)
	}

	switch len(items) {
	case 0:
		*o = Opt[T]{}
	case 1:
		if isNull(items[0]) {
			*o = Opt[T]{}
			return nil
		}
		var v T
		if err := json.Unmarshal(items[0], &v); err != nil {
			return fmt.Errorf("optional: %w", err)
		}
		*o = Some(v)
	default:
		return fmt.Errorf("optional: expected at most one element, got %d", len(items))
	}
	return nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

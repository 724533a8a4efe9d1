package api

import (
	"bytes"
	"fmt"
	"strconv"
)

// Optional is a value that may be absent. A JSON null, a missing key or an
// empty string all decode to absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is present.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalJSON implements json.Marshaler; absent values encode as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// FlexNumber is a number that may arrive as a JSON number or a numeric
// string. History rows are read back from CSV by the backend and keep
// their values as strings.
type FlexNumber float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		s, err := strconv.Unquote(string(trimmed))
		if err != nil {
			return err
		}
		trimmed = []byte(s)
	}
	v, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", data)
	}
	*n = FlexNumber(v)
	return nil
}

// Float64 returns the number as a float64.
func (n FlexNumber) Float64() float64 {
	return float64(n)
}

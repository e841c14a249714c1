package types

import (
	"encoding/json"
	"strconv"
)

// FlexNumber is a float64 that can be unmarshaled from a JSON number, a
// numeric JSON string, or junk. Anything unparseable decodes to 0 so that set
// payloads from loose clients never reject; normalization clamps the value
// afterwards.
type FlexNumber float64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	// Try unmarshaling as a number first
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexNumber(n)
		return nil
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexNumber(val)
		return nil
	}

	// Not a number in any usable form
	*f = 0
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Float64 converts FlexNumber back to float64.
func (f FlexNumber) Float64() float64 {
	return float64(f)
}

// FlexList is a slice that can be unmarshaled from either a single JSON
// object or a JSON array.
type FlexList[T any] []T

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// If it starts with '[', treat it as a normal array
	if data[0] == '[' {
		var slice []T
		if err := json.Unmarshal(data, &slice); err != nil {
			return err
		}
		*f = FlexList[T](slice)
		return nil
	}

	// Otherwise, try to unmarshal as a single item and wrap it in a slice
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*f = FlexList[T]{item}
	return nil
}

// Slice converts FlexList[T] back to []T.
func (f FlexList[T]) Slice() []T {
	return []T(f)
}

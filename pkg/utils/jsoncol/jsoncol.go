// Package jsoncol encodes structured values (lists, maps) into single
// JSON text columns, and decodes them back.
//
// The invariant, shared by every column using this package: an absent
// value is stored as SQL NULL, never as an empty string, and a NULL
// column decodes to a nil collection, never to an empty one.
package jsoncol

import "encoding/json"

// EncodeSlice serializes v for a text column. A nil slice encodes to
// nil (SQL NULL). An empty non-nil slice encodes to "[]".
func EncodeSlice[T any](v []T) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// DecodeSlice parses a text column written by EncodeSlice.
// A NULL column yields a nil slice.
func DecodeSlice[T any](col *string) ([]T, error) {
	if col == nil {
		return nil, nil
	}
	var v []T
	if err := json.Unmarshal([]byte(*col), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeMap serializes v for a text column. A nil map encodes to
// nil (SQL NULL). An empty non-nil map encodes to "{}".
func EncodeMap[V any](v map[string]V) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// DecodeMap parses a text column written by EncodeMap.
// A NULL column yields a nil map.
func DecodeMap[V any](col *string) (map[string]V, error) {
	if col == nil {
		return nil, nil
	}
	var v map[string]V
	if err := json.Unmarshal([]byte(*col), &v); err != nil {
		return nil, err
	}
	return v, nil
}

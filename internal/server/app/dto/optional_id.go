package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// OptionalID is a category reference in a request body. It distinguishes a
// field that was absent from one set to null, and accepts both a JSON number
// and a numeric string, because the browser form posts select values as
// strings. null, the empty string and zero all mean "no category".
type OptionalID struct {
	Present bool
	Valid   bool
	Value   int64
}

// ID returns the reference as a nullable id.
func (o OptionalID) ID() *int64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// NewOptionalID builds a present reference; nil means null.
func NewOptionalID(id *int64) OptionalID {
	if id == nil {
		return OptionalID{Present: true}
	}
	return OptionalID{Present: true, Valid: true, Value: *id}
}

// UnmarshalJSON implements json.Unmarshaler. It is invoked for null and for
// any value, but not for an absent field, which is what keeps Present honest.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Present = true
	o.Valid = false
	o.Value = 0

	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid category id: %w", err)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid category id %q: %w", s, err)
		}
		if v != 0 {
			o.Valid = true
			o.Value = v
		}
		return nil
	}

	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid category id: %w", err)
	}
	if v != 0 {
		o.Valid = true
		o.Value = v
	}
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the id or null.
func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(o.Value, 10)), nil
}

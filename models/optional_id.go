package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// OptionalID is a foreign key submitted by a form. Zero means "no reference".
// It accepts JSON numbers, numeric strings, empty strings and null, and the
// same values as a form field.
type OptionalID uint

func (id *OptionalID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return id.UnmarshalParam(s)
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	return id.UnmarshalParam(n.String())
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for form fields.
// Text that is not a positive integer reads as no reference.
func (id *OptionalID) UnmarshalParam(param string) error {
	v, err := strconv.ParseUint(strings.TrimSpace(param), 10, 64)
	if err != nil {
		*id = 0
		return nil
	}
	*id = OptionalID(v)
	return nil
}

// Ptr returns nil for zero so the column is stored as NULL.
func (id OptionalID) Ptr() *uint {
	if id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}

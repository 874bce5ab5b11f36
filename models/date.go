package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// inputLayouts are tried in order by ParseDate. Layouts carrying an offset
// are converted to UTC before the calendar day is taken.
var inputLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Date is a calendar day without a time of day.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in t's own location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate normalizes s to a calendar day.
func ParseDate(s string) (Date, error) {
	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return NewDate(t.UTC()), nil
	}
	return Date{}, fmt.Errorf("parse date %q: unsupported format", s)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType maps Date to a DATE column on every dialect.
func (Date) GormDataType() string {
	return "date"
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(DateLayout) {
		if t, err := time.Parse(DateLayout, s[:len(DateLayout)]); err == nil {
			*d = Date{t}
			return nil
		}
	}
	return fmt.Errorf("scan date: %q is not a date", s)
}

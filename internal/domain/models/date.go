// internal/domain/models/date.go
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Date is a calendar date or timestamp as stored by either backend.
//
// PostgREST returns `date` columns as "2006-01-02" and `timestamptz`
// columns as RFC 3339 strings; MongoDB stores BSON datetimes. Date decodes
// all of them so the same model works against both.
type Date struct {
	time.Time
}

// dateLayouts are tried in order when parsing a string value.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999",
}

// NewDate wraps t as a Date.
func NewDate(t time.Time) *Date {
	return &Date{Time: t.UTC()}
}

// ParseDate parses s using the layouts PostgREST and Postgres emit.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t.UTC()}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

// IsDateOnly reports whether d carries no time-of-day component.
func (d Date) IsDateOnly() bool {
	h, m, s := d.Clock()
	return h == 0 && m == 0 && s == 0 && d.Nanosecond() == 0
}

// String returns "2006-01-02" for date-only values and RFC 3339 otherwise.
func (d Date) String() string {
	if d.IsDateOnly() {
		return d.Format("2006-01-02")
	}
	return d.Format(time.RFC3339Nano)
}

// MarshalJSON encodes d the way PostgREST expects it on insert.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts null or any of the supported string layouts.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalBSONValue stores d as a BSON datetime.
func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Time)
}

// UnmarshalBSONValue accepts BSON datetimes and strings.
func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		d.Time = rv.Time().UTC()
		return nil
	case bsontype.String:
		parsed, err := ParseDate(rv.StringValue())
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case bsontype.Null, bsontype.Undefined:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into Date", t)
	}
}

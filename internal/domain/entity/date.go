package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical wire form of calendar dates sent to the API.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// inputLayouts are accepted from forms, in order of preference.
var inputLayouts = []string{DateLayout, "02/01/2006", time.RFC3339}

// Date is a calendar date in UTC. The API has been seen returning both ISO
// strings and epoch seconds for the same field; both decode to a Date and
// every Date encodes as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func dateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts "YYYY-MM-DD", "DD/MM/YYYY" or an RFC 3339 timestamp.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*d = Date{}
			return nil
		}
		// numeric strings are epoch seconds as well
		if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
			*d = dateOf(time.Unix(secs, 0))
			return nil
		}
		parsed, err := ParseDate(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	var secs json.Number
	if err := json.Unmarshal(data, &secs); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}
	f, err := secs.Float64()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}
	*d = dateOf(time.Unix(int64(f), 0))
	return nil
}

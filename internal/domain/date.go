package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// DateLayout is the canonical text form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day. It is always stored as
// midnight UTC so that comparisons only look at year, month and day.
type Date struct {
	time.Time
}

// NewDate builds a Date from calendar parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts ISO 8601 dates ("2023-10-31") as well as the other
// unambiguous layouts dateparse recognises, and keeps only the calendar day.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewDate(t.Date()), nil
	}

	// A lone number is only a date in its compact YYYYMMDD form. dateparse
	// would read "2023" as a year and "1700000000" as a unix timestamp.
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	switch len(parts) {
	case 1:
		t, err := time.Parse("20060102", s)
		if err != nil {
			return Date{}, fmt.Errorf("%q is not a calendar date", s)
		}
		return NewDate(t.Date()), nil
	case 2:
		return Date{}, fmt.Errorf("%q is missing the day of month", s)
	}

	t, err := dateparse.ParseStrict(s)
	if err != nil {
		return Date{}, fmt.Errorf("unparseable date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

// Compare returns -1, 0 or +1 like time.Time.Compare.
func (d Date) Compare(other Date) int { return d.Time.Compare(other.Time) }

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON and UnmarshalJSON shadow the promoted time.Time methods,
// which would otherwise emit a full RFC 3339 timestamp.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date must be a JSON string, got %s", b)
	}
	return d.UnmarshalText(b[1 : len(b)-1])
}

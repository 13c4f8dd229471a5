package reserva

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Fecha is a calendar date without time-of-day, the only temporal unit the
// ledger works with. Well-formed values are parsed from ISO "YYYY-MM-DD" into
// year/month/day components; anything else is kept verbatim and compared as a
// plain string, which for ISO input is equivalent to chronological order.
type Fecha struct {
	year  int
	month time.Month
	day   int
	raw   string
	valid bool
}

// ParseFecha never fails: malformed input degrades to string ordering
// instead of raising, matching how the persisted data behaves.
func ParseFecha(s string) Fecha {
	if s == "" {
		return Fecha{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Fecha{raw: s}
	}
	return Fecha{year: t.Year(), month: t.Month(), day: t.Day(), raw: s, valid: true}
}

// FechaDe builds a Fecha from date components.
func FechaDe(year int, month time.Month, day int) Fecha {
	// Normalize through time.Date so Dec 32 becomes Jan 1.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Fecha{year: t.Year(), month: t.Month(), day: t.Day(), raw: t.Format("2006-01-02"), valid: true}
}

// FechaDesde truncates a wall-clock instant to its local calendar date.
func FechaDesde(t time.Time) Fecha {
	return FechaDe(t.Year(), t.Month(), t.Day())
}

func (f Fecha) IsZero() bool {
	return !f.valid && f.raw == ""
}

func (f Fecha) IsValid() bool {
	return f.valid
}

// String returns the ISO form for valid dates and the raw input otherwise.
func (f Fecha) String() string {
	if f.valid {
		return fmt.Sprintf("%04d-%02d-%02d", f.year, int(f.month), f.day)
	}
	return f.raw
}

// Display formats as DD/MM/YYYY, the form used on screen and in exports.
// Malformed dates come back unchanged.
func (f Fecha) Display() string {
	if !f.valid {
		return f.raw
	}
	return fmt.Sprintf("%02d/%02d/%04d", f.day, int(f.month), f.year)
}

// Compare is a three-way compare. Two valid dates compare chronologically;
// if either side is malformed both fall back to lexicographic order on the
// raw strings.
func (f Fecha) Compare(other Fecha) int {
	if f.valid && other.valid {
		switch {
		case f.year != other.year:
			return cmpInt(f.year, other.year)
		case f.month != other.month:
			return cmpInt(int(f.month), int(other.month))
		default:
			return cmpInt(f.day, other.day)
		}
	}
	return strings.Compare(f.String(), other.String())
}

func (f Fecha) Before(other Fecha) bool { return f.Compare(other) < 0 }
func (f Fecha) After(other Fecha) bool  { return f.Compare(other) > 0 }
func (f Fecha) Equal(other Fecha) bool  { return f.Compare(other) == 0 }

// Time converts to a UTC midnight instant. The second return is false for
// zero or malformed dates, which have no instant representation.
func (f Fecha) Time() (time.Time, bool) {
	if !f.valid {
		return time.Time{}, false
	}
	return time.Date(f.year, f.month, f.day, 0, 0, 0, 0, time.UTC), true
}

// AddDays returns the date d days later (or earlier for negative d).
// No-op on malformed dates.
func (f Fecha) AddDays(d int) Fecha {
	if !f.valid {
		return f
	}
	return FechaDe(f.year, f.month, f.day+d)
}

// Weekday of the date; only meaningful for valid dates.
func (f Fecha) Weekday() time.Weekday {
	return time.Date(f.year, f.month, f.day, 0, 0, 0, 0, time.UTC).Weekday()
}

// LunesDeSemana returns the Monday that starts this date's week.
// Sunday counts as 6 days after the preceding Monday.
func (f Fecha) LunesDeSemana() Fecha {
	if !f.valid {
		return f
	}
	diff := int(f.Weekday()) - int(time.Monday)
	if f.Weekday() == time.Sunday {
		diff = 6
	}
	return f.AddDays(-diff)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = ParseFecha(s)
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

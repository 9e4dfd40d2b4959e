package pricing

import "time"

// =============================================================================
// DATE - Day-granular calendar date
// =============================================================================

// Date is a calendar date with day granularity. Every record in the pricing
// database carries one; hours and below are never meaningful here, so the
// wrapper normalizes to midnight UTC on construction and comparisons stay
// free of time-zone surprises.
type Date struct {
	Time time.Time
}

// DateLayout is the wire format used by the database and all rendered output.
const DateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" string as stored in the database.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// Comparison
func (d Date) Before(other Date) bool { return d.normalize().Before(other.normalize()) }
func (d Date) Equal(other Date) bool  { return d.normalize().Equal(other.normalize()) }
func (d Date) After(other Date) bool  { return d.normalize().After(other.normalize()) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Properties
func (d Date) Year() int    { return d.Time.Year() }
func (d Date) IsZero() bool { return d.Time.IsZero() }

func (d Date) String() string { return d.Time.Format(DateLayout) }

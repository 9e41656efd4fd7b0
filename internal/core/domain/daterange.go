package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is a half-open range of calendar dates [CheckIn, CheckOut).
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Date strips the time-of-day component, keeping the calendar date t has in its own location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewError(KindInvalidDateRange, fmt.Sprintf("malformed date %q, expected YYYY-MM-DD", s))
	}

	return t, nil
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return DateRange{}, NewError(KindInvalidDateRange, "check-in and check-out dates are required")
	}

	r := DateRange{CheckIn: Date(checkIn), CheckOut: Date(checkOut)}
	if !r.CheckOut.After(r.CheckIn) {
		return DateRange{}, NewError(KindInvalidDateRange, "check-out must be after check-in")
	}

	return r, nil
}

func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}

	return NewDateRange(in, out)
}

const secondsPerDay = 24 * 60 * 60

// Nights counts whole days between check-in and check-out. It works on Unix seconds
// because time.Duration saturates at about 292 years.
func (r DateRange) Nights() int {
	return int((r.CheckOut.Unix() - r.CheckIn.Unix()) / secondsPerDay)
}

func (r DateRange) Overlaps(o DateRange) bool {
	return r.CheckIn.Before(o.CheckOut) && o.CheckIn.Before(r.CheckOut)
}

func (r DateRange) String() string {
	return r.CheckIn.Format(DateLayout) + "/" + r.CheckOut.Format(DateLayout)
}

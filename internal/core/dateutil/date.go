// Package dateutil provides the 8-digit YYYYMMDD date code used on the wire
// and the inclusive date windows that bound ledger queries.
package dateutil

import (
	"fmt"
	"time"

	"jaego/internal/core/apperror"
)

// Layout is the wire format for all dates.
const Layout = "20060102"

// Date is a zero-padded YYYYMMDD date code. The format sorts
// lexicographically, so Dates compare with plain string operators.
type Date string

// FromTime converts a time.Time to a Date in the time's location.
func FromTime(t time.Time) Date {
	return Date(t.Format(Layout))
}

// Today returns the current date.
func Today() Date {
	return FromTime(time.Now())
}

// Parse validates an 8-digit date code.
func Parse(s string) (Date, error) {
	if _, err := time.Parse(Layout, s); err != nil {
		return "", apperror.NewValidation("invalid date, expected YYYYMMDD").
			WithDetail("value", s)
	}
	return Date(s), nil
}

// Time converts the Date back to a time.Time at midnight UTC.
// Invalid dates yield the zero time.
func (d Date) Time() time.Time {
	t, err := time.Parse(Layout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Valid reports whether d is a well-formed date code.
func (d Date) Valid() bool {
	_, err := time.Parse(Layout, string(d))
	return err == nil
}

func (d Date) String() string { return string(d) }

// Window is an inclusive [From, To] date range with From <= To.
type Window struct {
	From Date
	To   Date
}

// NewWindow builds a window from two dates in either order.
// The effective window is always [min(a,b), max(a,b)].
func NewWindow(a, b Date) Window {
	if b < a {
		a, b = b, a
	}
	return Window{From: a, To: b}
}

// MonthWindow returns the window covering the calendar month of t:
// first day through last day.
func MonthWindow(t time.Time) Window {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return Window{From: FromTime(first), To: FromTime(last)}
}

// Contains reports whether d falls within the window, bounds included.
func (w Window) Contains(d Date) bool {
	return w.From <= d && d <= w.To
}

// Valid reports whether both bounds are well-formed and ordered.
func (w Window) Valid() bool {
	return w.From.Valid() && w.To.Valid() && w.From <= w.To
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.From, w.To)
}

// Package timespan implements Timespan, a signed time interval with
// millisecond resolution.
//
// A Timespan stores a single count of milliseconds. Components (days, hours,
// minutes, seconds, milliseconds), totals in other units and the canonical
// string form "[-][D.]hh:mm:ss.fff" are derived from it on demand.
//
// The value is bounded by ±MaxMilliseconds. Every mutation computes the new
// total, rounds it to the nearest millisecond and checks the bound before it
// is stored; on failure the instance is left untouched and an error of one of
// the kinds ErrArgumentNull, ErrArgumentOutOfRange, ErrNotInteger or
// ErrOverflow is returned.
//
// Timespan is not safe for concurrent mutation.
package timespan

import (
	"math"

	"github.com/mailru/timespan/internal/pkg/tserror"
)

const (
	// MaxMilliseconds is the largest magnitude a Timespan can hold (100,000,000 days).
	MaxMilliseconds = 0x1EB208C2DC0000

	// Largest magnitudes accepted for values in the other units; each one
	// spans MaxMilliseconds.
	MaxSeconds = 0x7DBA8218000
	MaxMinutes = 0x218711A000
	MaxHours   = 0x8F0D1800
	MaxDays    = 0x5F5E100
	MaxWeeks   = 14285714.285714285
)

// Unit sizes in milliseconds.
const (
	MillisecondsPerSecond = 1000
	MillisecondsPerMinute = 60 * MillisecondsPerSecond
	MillisecondsPerHour   = 60 * MillisecondsPerMinute
	MillisecondsPerDay    = 24 * MillisecondsPerHour
	MillisecondsPerWeek   = 7 * MillisecondsPerDay
)

// Timespan represents a time interval. The zero value is a zero-length interval.
type Timespan struct {
	ms int64
}

// Components is the broken-down form of a Timespan. Fields left at zero are
// treated as not supplied.
type Components struct {
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// Bounds accepted by Create for each component. Minutes and seconds accept 60
// here while the component setters stop at 59.
var createBounds = [...]struct {
	name  string
	limit int64
}{
	{"days", MaxDays},
	{"hours", 23},
	{"minutes", 60},
	{"seconds", 60},
	{"milliseconds", 999},
}

// New returns a Timespan of ms milliseconds.
func New(ms int64) (*Timespan, error) {
	if ms < -MaxMilliseconds || ms > MaxMilliseconds {
		return nil, tserror.NewArgumentOutOfRange("ms", float64(ms), -MaxMilliseconds, MaxMilliseconds)
	}

	return &Timespan{ms: ms}, nil
}

// Create returns a Timespan built from the given component values. Each value
// is checked against its own bound before the total is combined.
func Create(days, hours, minutes, seconds, milliseconds int64) (*Timespan, error) {
	return FromComponents(Components{
		Days:         days,
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: milliseconds,
	})
}

// FromComponents is Create taking a Components value.
func FromComponents(c Components) (*Timespan, error) {
	values := [...]int64{c.Days, c.Hours, c.Minutes, c.Seconds, c.Milliseconds}

	for i, b := range createBounds {
		if err := validateRange(float64(values[i]), -float64(b.limit), float64(b.limit), b.name); err != nil {
			return nil, err
		}
	}

	ms, err := evalMillis(float64(c.Days*MillisecondsPerDay +
		c.Hours*MillisecondsPerHour +
		c.Minutes*MillisecondsPerMinute +
		c.Seconds*MillisecondsPerSecond +
		c.Milliseconds))
	if err != nil {
		return nil, err
	}

	return &Timespan{ms: ms}, nil
}

// Difference returns d1 - d2.
func Difference(d1, d2 Instant) (*Timespan, error) {
	if isAbsent(d1) {
		return nil, tserror.NewArgumentNull("d1")
	}

	if isAbsent(d2) {
		return nil, tserror.NewArgumentNull("d2")
	}

	return New(d1.UnixMilli() - d2.UnixMilli())
}

// Clone returns an independent copy of t.
func (t Timespan) Clone() *Timespan {
	return &Timespan{ms: t.ms}
}

// Sign returns -1, 0 or +1.
func (t Timespan) Sign() int {
	switch {
	case t.ms > 0:
		return 1
	case t.ms < 0:
		return -1
	default:
		return 0
	}
}

// Negate flips the sign of t in place.
func (t *Timespan) Negate() {
	t.ms = -t.ms
}

func (t Timespan) abs() int64 {
	if t.ms < 0 {
		return -t.ms
	}

	return t.ms
}

// evalMillis is the only way a computed total reaches a Timespan or a date:
// the value is rounded half away from zero and checked against the bound.
func evalMillis(value float64) (int64, error) {
	r := math.Round(value)
	if math.IsNaN(r) || r < -MaxMilliseconds || r > MaxMilliseconds {
		return 0, tserror.NewOverflow(value)
	}

	return int64(r), nil
}

// validateRange checks min <= value <= max. NaN fails the check as well.
func validateRange(value, min, max float64, name string) error {
	if !(value >= min && value <= max) {
		return tserror.NewArgumentOutOfRange(name, value, min, max)
	}

	return nil
}

func validateInt(value float64, name string) error {
	if value != math.Trunc(value) {
		return tserror.NewNotInteger(name, value)
	}

	return nil
}

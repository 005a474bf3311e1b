package timespan

import (
	"math"
	"reflect"
	"time"

	"github.com/mailru/timespan/internal/pkg/tserror"
)

// Instant is an absolute point in time addressable as milliseconds since the
// Unix epoch. Helpers taking an Instant overwrite it in place and hand the same
// value back.
type Instant interface {
	UnixMilli() int64
	SetUnixMilli(ms int64)
}

// Clock provides the current moment for helpers called without a date.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

var clock Clock = SystemClock{}

// Date is the Instant implementation over time.Time. Setting a new value keeps
// the location of the wrapped time.
type Date struct {
	time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// Now returns the current moment as a Date.
func Now() *Date {
	return NewDate(clock.Now())
}

// SetUnixMilli moves d to ms milliseconds since the epoch. The part of d
// below a millisecond is carried over.
func (d *Date) SetUnixMilli(ms int64) {
	sub := time.Duration(d.Nanosecond()) % time.Millisecond
	d.Time = time.UnixMilli(ms).Add(sub).In(d.Location())
}

// isAbsent reports nil interfaces and typed nil pointers alike.
func isAbsent(date Instant) bool {
	if date == nil {
		return true
	}

	v := reflect.ValueOf(date)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

func offsetDate(date Instant, total float64) (Instant, error) {
	ms, err := evalMillis(total)
	if err != nil {
		return nil, err
	}

	date.SetUnixMilli(ms)

	return date, nil
}

func addToDate(u unit, value float64, date Instant) (Instant, error) {
	if err := u.validate(value); err != nil {
		return nil, err
	}

	if isAbsent(date) {
		date = Now()
	}

	return offsetDate(date, float64(date.UnixMilli())+value*u.millis)
}

// AddMillisecondsToDate adds a whole number of milliseconds to date. A nil
// date means the current moment.
func AddMillisecondsToDate(value float64, date Instant) (Instant, error) {
	if err := validateInt(value, "value"); err != nil {
		return nil, err
	}

	return addToDate(unitMillisecond, value, date)
}

func AddSecondsToDate(value float64, date Instant) (Instant, error) {
	return addToDate(unitSecond, value, date)
}

func AddMinutesToDate(value float64, date Instant) (Instant, error) {
	return addToDate(unitMinute, value, date)
}

func AddHoursToDate(value float64, date Instant) (Instant, error) {
	return addToDate(unitHour, value, date)
}

func AddDaysToDate(value float64, date Instant) (Instant, error) {
	return addToDate(unitDay, value, date)
}

func AddWeeksToDate(value float64, date Instant) (Instant, error) {
	return addToDate(unitWeek, value, date)
}

// AddToDate moves date forward by t.
func (t Timespan) AddToDate(date Instant) (Instant, error) {
	if isAbsent(date) {
		return nil, tserror.NewArgumentNull("value")
	}

	return offsetDate(date, float64(date.UnixMilli())+float64(t.ms))
}

// SubtractFromDate moves date backward by t.
func (t Timespan) SubtractFromDate(date Instant) (Instant, error) {
	if isAbsent(date) {
		return nil, tserror.NewArgumentNull("value")
	}

	return offsetDate(date, float64(date.UnixMilli())-float64(t.ms))
}

// FromDuration converts d, dropping anything below a millisecond. Every
// time.Duration fits into a Timespan.
func FromDuration(d time.Duration) *Timespan {
	return &Timespan{ms: d.Milliseconds()}
}

// Duration converts t to a time.Duration, which covers about ±292 years.
func (t Timespan) Duration() (time.Duration, error) {
	if t.abs() > math.MaxInt64/int64(time.Millisecond) {
		return 0, tserror.NewOverflow(float64(t.ms))
	}

	return time.Duration(t.ms) * time.Millisecond, nil
}

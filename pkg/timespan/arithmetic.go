package timespan

import "github.com/mailru/timespan/internal/pkg/tserror"

// Add adds value to t.
func (t *Timespan) Add(value *Timespan) error {
	if value == nil {
		return tserror.NewArgumentNull("value")
	}

	return t.shift(float64(t.ms) + float64(value.ms))
}

// Subtract subtracts value from t.
func (t *Timespan) Subtract(value *Timespan) error {
	if value == nil {
		return tserror.NewArgumentNull("value")
	}

	return t.shift(float64(t.ms) - float64(value.ms))
}

func (t *Timespan) shift(total float64) error {
	ms, err := evalMillis(total)
	if err != nil {
		return err
	}

	t.ms = ms

	return nil
}

func (t *Timespan) add(u unit, value float64) (*Timespan, error) {
	if err := u.validate(value); err != nil {
		return nil, err
	}

	if err := t.shift(float64(t.ms) + value*u.millis); err != nil {
		return nil, err
	}

	return t, nil
}

// AddMilliseconds adds a whole number of milliseconds to t and returns t.
func (t *Timespan) AddMilliseconds(value float64) (*Timespan, error) {
	if err := validateInt(value, "value"); err != nil {
		return nil, err
	}

	return t.add(unitMillisecond, value)
}

// AddSeconds adds whole and fractional seconds to t and returns t.
func (t *Timespan) AddSeconds(value float64) (*Timespan, error) {
	return t.add(unitSecond, value)
}

// AddMinutes adds value minutes to t and returns t.
func (t *Timespan) AddMinutes(value float64) (*Timespan, error) {
	return t.add(unitMinute, value)
}

// AddHours adds value hours to t and returns t.
func (t *Timespan) AddHours(value float64) (*Timespan, error) {
	return t.add(unitHour, value)
}

// AddDays adds value days to t and returns t.
func (t *Timespan) AddDays(value float64) (*Timespan, error) {
	return t.add(unitDay, value)
}

// AddWeeks adds value weeks to t and returns t.
func (t *Timespan) AddWeeks(value float64) (*Timespan, error) {
	return t.add(unitWeek, value)
}

// FromMilliseconds returns a Timespan of a whole number of milliseconds.
func FromMilliseconds(value float64) (*Timespan, error) {
	return new(Timespan).AddMilliseconds(value)
}

// FromSeconds returns a Timespan of value seconds rounded to milliseconds.
func FromSeconds(value float64) (*Timespan, error) {
	return new(Timespan).AddSeconds(value)
}

// FromMinutes returns a Timespan of value minutes.
func FromMinutes(value float64) (*Timespan, error) {
	return new(Timespan).AddMinutes(value)
}

// FromHours returns a Timespan of value hours.
func FromHours(value float64) (*Timespan, error) {
	return new(Timespan).AddHours(value)
}

// FromDays returns a Timespan of value days.
func FromDays(value float64) (*Timespan, error) {
	return new(Timespan).AddDays(value)
}

// FromWeeks returns a Timespan of value weeks.
func FromWeeks(value float64) (*Timespan, error) {
	return new(Timespan).AddWeeks(value)
}

package timespan

// unit describes a whole-unit scale: how many milliseconds one unit holds and
// the largest magnitude accepted for a value expressed in it.
type unit struct {
	millis float64
	limit  float64
}

var (
	unitMillisecond = unit{millis: 1, limit: MaxMilliseconds}
	unitSecond      = unit{millis: MillisecondsPerSecond, limit: MaxSeconds}
	unitMinute      = unit{millis: MillisecondsPerMinute, limit: MaxMinutes}
	unitHour        = unit{millis: MillisecondsPerHour, limit: MaxHours}
	unitDay         = unit{millis: MillisecondsPerDay, limit: MaxDays}
	unitWeek        = unit{millis: MillisecondsPerWeek, limit: MaxWeeks}
)

func (u unit) validate(value float64) error {
	return validateRange(value, -u.limit, u.limit, "value")
}

func (t *Timespan) setTotal(u unit, value float64) error {
	if err := u.validate(value); err != nil {
		return err
	}

	return t.shift(value * u.millis)
}

// TotalMilliseconds returns the raw value of t.
func (t Timespan) TotalMilliseconds() int64 {
	return t.ms
}

// TotalSeconds returns t in whole and fractional seconds.
func (t Timespan) TotalSeconds() float64 {
	return float64(t.ms) / MillisecondsPerSecond
}

// TotalMinutes returns t in whole and fractional minutes.
func (t Timespan) TotalMinutes() float64 {
	return float64(t.ms) / MillisecondsPerMinute
}

// TotalHours returns t in whole and fractional hours.
func (t Timespan) TotalHours() float64 {
	return float64(t.ms) / MillisecondsPerHour
}

// TotalDays returns t in whole and fractional days.
func (t Timespan) TotalDays() float64 {
	return float64(t.ms) / MillisecondsPerDay
}

// TotalWeeks returns t in whole and fractional weeks.
func (t Timespan) TotalWeeks() float64 {
	return float64(t.ms) / MillisecondsPerWeek
}

// SetTotalMilliseconds replaces the value of t, rounding to whole milliseconds.
func (t *Timespan) SetTotalMilliseconds(value float64) error {
	return t.setTotal(unitMillisecond, value)
}

// SetTotalSeconds replaces the value of t with the given whole and fractional seconds.
func (t *Timespan) SetTotalSeconds(value float64) error {
	return t.setTotal(unitSecond, value)
}

func (t *Timespan) SetTotalMinutes(value float64) error {
	return t.setTotal(unitMinute, value)
}

func (t *Timespan) SetTotalHours(value float64) error {
	return t.setTotal(unitHour, value)
}

func (t *Timespan) SetTotalDays(value float64) error {
	return t.setTotal(unitDay, value)
}

func (t *Timespan) SetTotalWeeks(value float64) error {
	return t.setTotal(unitWeek, value)
}

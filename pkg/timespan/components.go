package timespan

// Component getters work on the magnitude of the total and carry the overall
// sign, so a negative Timespan never mixes positive and negative components.

// Days returns the whole days of t.
func (t Timespan) Days() int64 {
	return t.abs() / MillisecondsPerDay * int64(t.Sign())
}

// Hours returns the hours component, -23..23.
func (t Timespan) Hours() int64 {
	return t.abs() / MillisecondsPerHour % 24 * int64(t.Sign())
}

// Minutes returns the minutes component, -59..59.
func (t Timespan) Minutes() int64 {
	return t.abs() / MillisecondsPerMinute % 60 * int64(t.Sign())
}

// Seconds returns the seconds component, -59..59.
func (t Timespan) Seconds() int64 {
	return t.abs() / MillisecondsPerSecond % 60 * int64(t.Sign())
}

// Milliseconds returns the milliseconds component, -999..999.
func (t Timespan) Milliseconds() int64 {
	return t.abs() % MillisecondsPerSecond * int64(t.Sign())
}

// Components returns all component values of t.
func (t Timespan) Components() Components {
	return Components{
		Days:         t.Days(),
		Hours:        t.Hours(),
		Minutes:      t.Minutes(),
		Seconds:      t.Seconds(),
		Milliseconds: t.Milliseconds(),
	}
}

// SetDays shifts t so that its days component becomes value. The other
// components keep their meaning relative to the total.
func (t *Timespan) SetDays(value int64) error {
	return t.setComponent("days", value, MaxDays, MillisecondsPerDay, t.Days())
}

// SetHours shifts t by (value - t.Hours()) hours.
func (t *Timespan) SetHours(value int64) error {
	return t.setComponent("hours", value, 23, MillisecondsPerHour, t.Hours())
}

// SetMinutes shifts t by (value - t.Minutes()) minutes, value in -59..59.
func (t *Timespan) SetMinutes(value int64) error {
	return t.setComponent("minutes", value, 59, MillisecondsPerMinute, t.Minutes())
}

// SetSeconds shifts t by (value - t.Seconds()) seconds, value in -59..59.
func (t *Timespan) SetSeconds(value int64) error {
	return t.setComponent("seconds", value, 59, MillisecondsPerSecond, t.Seconds())
}

// SetMilliseconds shifts t by (value - t.Milliseconds()) milliseconds.
func (t *Timespan) SetMilliseconds(value int64) error {
	return t.setComponent("milliseconds", value, 999, 1, t.Milliseconds())
}

func (t *Timespan) setComponent(name string, value, limit, millis, current int64) error {
	if err := validateRange(float64(value), -float64(limit), float64(limit), name); err != nil {
		return err
	}

	return t.shift(float64(t.ms + (value-current)*millis))
}

package timespan

import "github.com/mailru/timespan/internal/pkg/tserror"

// Compare returns t1 - t2 in milliseconds. The sign tells the order, the
// magnitude is the raw difference.
func Compare(t1, t2 *Timespan) (int64, error) {
	if t1 == nil {
		return 0, tserror.NewArgumentNull("t1")
	}

	if t2 == nil {
		return 0, tserror.NewArgumentNull("t2")
	}

	return t1.ms - t2.ms, nil
}

// CompareTo returns t - value in milliseconds.
func (t Timespan) CompareTo(value *Timespan) (int64, error) {
	if value == nil {
		return 0, tserror.NewArgumentNull("value")
	}

	return t.ms - value.ms, nil
}

// EqualTo reports whether t and value hold the same total.
func (t Timespan) EqualTo(value *Timespan) (bool, error) {
	if value == nil {
		return false, tserror.NewArgumentNull("value")
	}

	return t.ms == value.ms, nil
}

// LessThan reports whether t is shorter than value, sign included.
func (t Timespan) LessThan(value *Timespan) (bool, error) {
	if value == nil {
		return false, tserror.NewArgumentNull("value")
	}

	return t.ms < value.ms, nil
}

// GreaterThan reports whether t is longer than value, sign included.
func (t Timespan) GreaterThan(value *Timespan) (bool, error) {
	if value == nil {
		return false, tserror.NewArgumentNull("value")
	}

	return t.ms > value.ms, nil
}

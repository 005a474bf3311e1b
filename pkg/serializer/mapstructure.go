package serializer

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mailru/mapstructure"

	"github.com/mailru/timespan/pkg/serializer/errs"
	"github.com/mailru/timespan/pkg/timespan"
)

var timespanType = reflect.TypeOf(timespan.Timespan{})

// TimespanHook converts numeric input into timespan.Timespan targets. The
// number is taken as total milliseconds. Strings are rejected: the canonical
// form is never parsed back.
func TimespanHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != timespanType || from == timespanType {
		return data, nil
	}

	var ms float64

	switch v := data.(type) {
	case float64:
		ms = v
	case float32:
		ms = float64(v)
	case int:
		ms = float64(v)
	case int64:
		ms = float64(v)
	case uint64:
		ms = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrTimespanValue, err)
		}

		ms = f
	default:
		return nil, fmt.Errorf("%w: unsupported %s input", errs.ErrTimespanValue, from)
	}

	ts, err := timespan.FromMilliseconds(ms)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrTimespanValue, err)
	}

	return *ts, nil
}

func MapstructureUnmarshal(data string, v any) error {
	m := make(map[string]interface{})

	err := json.Unmarshal([]byte(data), &m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalJSON, err)
	}

	config := &mapstructure.DecoderConfig{
		// Fail on keys the target struct does not declare
		ErrorUnused: true,
		// Reset target fields instead of merging into them
		ZeroFields: true,
		DecodeHook: mapstructure.DecodeHookFuncType(TimespanHook),
		Result:     v,
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureNewDecoder, err)
	}

	err = decoder.Decode(m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureDecode, err)
	}

	return nil
}

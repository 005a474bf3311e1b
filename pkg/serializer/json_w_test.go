package serializer

import (
	"errors"
	"math"
	"testing"

	"github.com/mailru/timespan/pkg/serializer/errs"
	"github.com/mailru/timespan/pkg/timespan"
)

type Window struct {
	Name    string             `json:"name" yaml:"name" msgpack:"name" mapstructure:"name"`
	Timeout timespan.Timespan  `json:"timeout" yaml:"timeout" msgpack:"timeout" mapstructure:"timeout"`
	Grace   *timespan.Timespan `json:"grace,omitempty" yaml:"grace,omitempty" msgpack:"grace,omitempty" mapstructure:"grace"`
}

func mustMillis(t *testing.T, ms int64) *timespan.Timespan {
	t.Helper()

	ts, err := timespan.New(ms)
	if err != nil {
		t.Fatalf("timespan.New(%d) error = %v", ms, err)
	}

	return ts
}

func TestJSONMarshal(t *testing.T) {
	tests := []struct {
		name    string
		exec    func(t *testing.T) any
		want    string
		wantErr error
	}{
		{
			name: "bare timespan",
			exec: func(t *testing.T) any { return mustMillis(t, 90061001) },
			want: `"1.01:01:01.001"`,
		},
		{
			name: "struct fields",
			exec: func(t *testing.T) any {
				return Window{Name: "checkout", Timeout: *mustMillis(t, -1500), Grace: mustMillis(t, 0)}
			},
			want: `{"name":"checkout","timeout":"-00:00:01.500","grace":"00:00:00.000"}`,
		},
		{
			name:    "unsupported value",
			exec:    func(t *testing.T) any { return math.NaN() },
			wantErr: errs.ErrMarshalJSON,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSONMarshal(tt.exec(t))
			if tt.wantErr != err && !errors.Is(err, tt.wantErr) {
				t.Errorf("JSONMarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("JSONMarshal() = %v, want %v", got, tt.want)
			}
		})
	}
}

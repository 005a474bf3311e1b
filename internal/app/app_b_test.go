package app_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mailru/timespan/internal/app"
	"github.com/mailru/timespan/internal/pkg/ds"
	"github.com/mailru/timespan/pkg/timespan"
)

var testAppInfo = ds.NewAppInfo().
	WithVersion("1.0").
	WithBuildCommit("nocommit").
	WithBuildTime("2024-01-01T00:00:00Z").
	WithBuildOS("linux")

var testNow = time.Date(2020, time.January, 2, 3, 4, 5, 6_000_000, time.UTC)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfg, err := app.LoadConfig(app.NewFlagSet("tspan"), args)
	require.NoError(t, err)

	var out bytes.Buffer

	err = app.New(cfg, testAppInfo, zap.NewNop(), &out).
		WithClock(func() time.Time { return testNow }).
		Run(context.Background())

	return out.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "create",
			args: []string{"--days", "1", "--hours", "1", "--minutes", "1", "--seconds", "1", "--ms", "1"},
			want: "1.01:01:01.001\n",
		},
		{
			name: "create zero",
			want: "00:00:00.000\n",
		},
		{
			name: "create json",
			args: []string{"--hours", "-23", "--minutes", "-59", "--seconds", "-59", "--ms", "-999", "--output", "json"},
			want: `{"span":"-23:59:59.999","ms":-86399999}` + "\n",
		},
		{
			name: "create yaml",
			args: []string{"--ms", "250", "-o", "yaml"},
			want: "span: \"00:00:00.250\"\nms: 250\n",
		},
		{
			name:    "create out of range",
			args:    []string{"--hours", "24"},
			wantErr: timespan.ErrArgumentOutOfRange,
		},
		{
			name: "since",
			args: []string{"--since", "2020-01-01T00:00:00Z"},
			want: "1.03:04:05.006\n",
		},
		{
			name: "since in future",
			args: []string{"--since", "2020-01-03T03:04:05.006Z"},
			want: "-1.00:00:00.000\n",
		},
		{
			name: "add weeks",
			args: []string{"--add", "2", "--unit", "WEEKS", "--date", "2020-01-01T00:00:00Z"},
			want: "2020-01-15T00:00:00Z\n",
		},
		{
			name: "add to now",
			args: []string{"--add", "-6", "--unit", "ms"},
			want: "2020-01-02T03:04:05Z\n",
		},
		{
			name: "add json",
			args: []string{"--add", "1.5", "--unit", "hours", "--date", "2020-01-01T00:00:00Z", "-o", "json"},
			want: `{"date":"2020-01-01T01:30:00Z"}` + "\n",
		},
		{
			name:    "add fractional milliseconds",
			args:    []string{"--add", "0.5"},
			wantErr: timespan.ErrNotInteger,
		},
		{
			name:    "add overflows",
			args:    []string{"--add", "100000000", "--unit", "days", "--date", "2020-01-01T00:00:00Z"},
			wantErr: timespan.ErrOverflow,
		},
		{
			name: "version",
			args: []string{"--version"},
			want: "tspan@1.0 (Commit: nocommit) (BuildTime: 2024-01-01T00:00:00Z, OS: linux)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Run() output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	_, err := run(t, "--add", "1", "--unit", "fortnights")
	require.ErrorContains(t, err, `unknown unit "fortnights"`)

	_, err = run(t, "--since", "yesterday")
	require.ErrorContains(t, err, "parse --since")

	_, err = run(t, "--add", "1", "--date", "01.01.2020")
	require.ErrorContains(t, err, "parse --date")

	cfg, err := app.LoadConfig(app.NewFlagSet("tspan"), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = app.New(cfg, testAppInfo, zap.NewNop(), &bytes.Buffer{}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

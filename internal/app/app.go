// Пакет app - основной пакет утилиты tspan.
//
// Утилита строит Timespan из компонент, считает интервал от заданного
// момента до текущего или сдвигает дату на заданное количество единиц.
// Результат выводится в каноническом виде или в json/yaml.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mailru/timespan/internal/pkg/ds"
	"github.com/mailru/timespan/pkg/serializer"
	"github.com/mailru/timespan/pkg/timespan"
)

type dateAdder func(value float64, date timespan.Instant) (timespan.Instant, error)

var dateAdders = map[string]dateAdder{
	"ms":           timespan.AddMillisecondsToDate,
	"millisecond":  timespan.AddMillisecondsToDate,
	"milliseconds": timespan.AddMillisecondsToDate,
	"s":            timespan.AddSecondsToDate,
	"second":       timespan.AddSecondsToDate,
	"seconds":      timespan.AddSecondsToDate,
	"m":            timespan.AddMinutesToDate,
	"minute":       timespan.AddMinutesToDate,
	"minutes":      timespan.AddMinutesToDate,
	"h":            timespan.AddHoursToDate,
	"hour":         timespan.AddHoursToDate,
	"hours":        timespan.AddHoursToDate,
	"d":            timespan.AddDaysToDate,
	"day":          timespan.AddDaysToDate,
	"days":         timespan.AddDaysToDate,
	"w":            timespan.AddWeeksToDate,
	"week":         timespan.AddWeeksToDate,
	"weeks":        timespan.AddWeeksToDate,
}

// Результат для режимов create и since
type spanResult struct {
	Span         timespan.Timespan `json:"span" yaml:"span"`
	Milliseconds int64             `json:"ms" yaml:"ms"`
}

// Результат для режима add
type dateResult struct {
	Date string `json:"date" yaml:"date"`
}

// Структура приложения
// now - источник текущего времени для --since и --add без --date
type App struct {
	cfg     *Config
	appInfo *ds.AppInfo
	log     *zap.Logger
	out     io.Writer
	now     func() time.Time
}

func New(cfg *Config, appInfo *ds.AppInfo, log *zap.Logger, out io.Writer) *App {
	return &App{
		cfg:     cfg,
		appInfo: appInfo,
		log:     log,
		out:     out,
		now:     time.Now,
	}
}

// WithClock подменяет источник текущего времени
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.log.Debug("run", zap.Stringer("app", a.appInfo), zap.Uint8("mode", uint8(a.cfg.Mode)))

	switch a.cfg.Mode {
	case ModeVersion:
		_, err := fmt.Fprintln(a.out, a.appInfo.Build())
		return errors.Wrap(err, "write version")
	case ModeSince:
		return a.since()
	case ModeAdd:
		return a.add()
	default:
		return a.create()
	}
}

func (a *App) create() error {
	ts, err := timespan.Create(a.cfg.Days, a.cfg.Hours, a.cfg.Minutes, a.cfg.Seconds, a.cfg.Milliseconds)
	if err != nil {
		return errors.Wrap(err, "create timespan")
	}

	a.log.Debug("timespan created", zap.Object("timespan", ts))

	return a.writeSpan(ts)
}

func (a *App) since() error {
	from, err := time.Parse(time.RFC3339Nano, a.cfg.Since)
	if err != nil {
		return errors.Wrap(err, "parse --since")
	}

	ts, err := timespan.Difference(timespan.NewDate(a.now()), timespan.NewDate(from))
	if err != nil {
		return errors.Wrap(err, "difference")
	}

	a.log.Debug("timespan since", zap.Time("from", from), zap.Object("timespan", ts))

	return a.writeSpan(ts)
}

func (a *App) add() error {
	unit := lowerCase(a.cfg.Unit)

	adder, ok := dateAdders[unit]
	if !ok {
		return errors.Errorf("unknown unit %q", a.cfg.Unit)
	}

	date := timespan.NewDate(a.now())

	if a.cfg.Date != "" {
		parsed, err := time.Parse(time.RFC3339Nano, a.cfg.Date)
		if err != nil {
			return errors.Wrap(err, "parse --date")
		}

		date = timespan.NewDate(parsed)
	}

	if _, err := adder(a.cfg.Add, date); err != nil {
		return errors.Wrapf(err, "add %v %s", a.cfg.Add, unit)
	}

	a.log.Debug("date shifted", zap.Float64("value", a.cfg.Add), zap.String("unit", unit), zap.Time("date", date.Time))

	res := dateResult{Date: date.Format(time.RFC3339Nano)}
	if a.cfg.Output == OutputText {
		return a.write(res.Date)
	}

	return a.encode(res)
}

func (a *App) writeSpan(ts *timespan.Timespan) error {
	if a.cfg.Output == OutputText {
		return a.write(ts.String())
	}

	return a.encode(spanResult{Span: *ts, Milliseconds: ts.TotalMilliseconds()})
}

func (a *App) encode(v any) error {
	var (
		data string
		err  error
	)

	switch a.cfg.Output {
	case OutputJSON:
		data, err = serializer.JSONMarshal(v)
	case OutputYAML:
		data, err = serializer.YAMLMarshal(v)
	default:
		return errors.Errorf("unknown output format %q", a.cfg.Output)
	}

	if err != nil {
		return errors.Wrap(err, "encode result")
	}

	return a.write(data)
}

func (a *App) write(s string) error {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}

	_, err := fmt.Fprintln(a.out, s)

	return errors.Wrap(err, "write result")
}

package app

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const envPrefix = "TSPAN"

// Имена форматов и единиц сравниваются без учёта регистра.
// Caser хранит состояние, поэтому создаётся на каждый вызов
func lowerCase(s string) string {
	return cases.Lower(language.English).String(s)
}

// Режим работы определяется набором переданных флагов
type Mode uint8

const (
	ModeCreate Mode = iota
	ModeSince
	ModeAdd
	ModeVersion
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	Days         int64   `mapstructure:"days"`
	Hours        int64   `mapstructure:"hours"`
	Minutes      int64   `mapstructure:"minutes"`
	Seconds      int64   `mapstructure:"seconds"`
	Milliseconds int64   `mapstructure:"ms"`
	Since        string  `mapstructure:"since"`
	Add          float64 `mapstructure:"add"`
	Unit         string  `mapstructure:"unit"`
	Date         string  `mapstructure:"date"`
	Output       string  `mapstructure:"output"`
	LogLevel     string  `mapstructure:"log-level"`
	Version      bool    `mapstructure:"version"`

	Mode Mode `mapstructure:"-"`
}

func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)

	flags.Int64("days", 0, "days component")
	flags.Int64("hours", 0, "hours component")
	flags.Int64("minutes", 0, "minutes component")
	flags.Int64("seconds", 0, "seconds component")
	flags.Int64("ms", 0, "milliseconds component")
	flags.String("since", "", "RFC3339 moment, prints the span from it until now")
	flags.Float64("add", 0, "amount to add to --date")
	flags.String("unit", "milliseconds", "unit of --add: milliseconds, seconds, minutes, hours, days or weeks")
	flags.String("date", "", "RFC3339 moment for --add, now when empty")
	flags.StringP("output", "o", OutputText, "output format: text, json or yaml")
	flags.String("log-level", "warn", "log level")
	flags.Bool("version", false, "print version")

	return flags
}

// LoadConfig разбирает аргументы командной строки. Любой флаг можно задать
// переменной окружения с префиксом TSPAN_, например TSPAN_LOG_LEVEL.
func LoadConfig(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	cfg.Output = lowerCase(cfg.Output)

	switch cfg.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return nil, errors.Errorf("unknown output format %q", cfg.Output)
	}

	switch {
	case cfg.Version:
		cfg.Mode = ModeVersion
	case v.IsSet("add") && v.IsSet("since"):
		return nil, errors.New("--add and --since are mutually exclusive")
	case v.IsSet("add"):
		cfg.Mode = ModeAdd
	case v.IsSet("since"):
		cfg.Mode = ModeSince
	default:
		cfg.Mode = ModeCreate
	}

	return &cfg, nil
}

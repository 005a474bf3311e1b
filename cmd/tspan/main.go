package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/mailru/timespan/internal/app"
	"github.com/mailru/timespan/internal/pkg/ds"
)

// ldflags
var (
	Version     string
	BuildTime   string
	BuildOS     string
	BuildCommit string
)

func getAppInfo() *ds.AppInfo {
	return ds.NewAppInfo().
		WithVersion(Version).
		WithBuildTime(BuildTime).
		WithBuildOS(BuildOS).
		WithBuildCommit(BuildCommit)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig(app.NewFlagSet(os.Args[0]), os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		fmt.Fprintf(os.Stderr, "error load config: %s\n", err)

		return 2
	}

	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error init logger: %s\n", err)
		return 2
	}

	defer func() { _ = logger.Sync() }()

	if err := app.New(cfg, getAppInfo(), logger, os.Stdout).Run(ctx); err != nil {
		logger.Error("tspan failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	return 0
}

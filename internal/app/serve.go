package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nimblechat/polyglot/internal/cli"
	"github.com/nimblechat/polyglot/internal/httpapi"
)

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if _, err := envLoader.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg, logger, orchestrator, err := bootstrap()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	server := httpapi.NewServer(orchestrator, logger, httpapi.Options{
		Host:            cfg.HTTPHost,
		Port:            cfg.HTTPPort,
		ReadTimeout:     cfg.HTTPReadTimeout,
		WriteTimeout:    cfg.HTTPWriteTimeout,
		ShutdownTimeout: cfg.HTTPShutdownTimeout,
		AllowedOrigins:  cfg.CORSAllowedOriginsList(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		return 1
	}
	return 0
}

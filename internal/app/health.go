package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/nimblechat/polyglot/internal/cli"
)

func runHealth(args []string) int {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 30*time.Second, "Command timeout")

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

	_, _, orchestrator, err := bootstrap()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	health := orchestrator.Healthy(ctx)
	names := make([]string, 0, len(health))
	for name := range health {
		names = append(names, name)
	}
	sort.Strings(names)

	exitCode := 0
	for _, name := range names {
		state := "ok"
		if !health[name] {
			state = "unavailable"
			exitCode = 1
		}
		fmt.Printf("%-16s %s\n", name, state)
	}
	return exitCode
}

package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvLoader loads .env files with a predictable override order.
type EnvLoader struct {
	value       *string
	defaultPath string
}

// AddEnvFlag registers an --env flag and returns an EnvLoader.
func AddEnvFlag(fs *flag.FlagSet, defaultPath, description string) *EnvLoader {
	if fs == nil {
		fs = flag.CommandLine
	}
	if defaultPath == "" {
		defaultPath = ".env"
	}
	if description == "" {
		description = "Path to the .env file"
	}

	value := fs.String("env", defaultPath, description)
	return &EnvLoader{
		value:       value,
		defaultPath: defaultPath,
	}
}

// Load resolves and loads environment variables using the configured
// flag value. A missing env file is not an error: all configuration
// has defaults and may come from the process environment instead.
func (l *EnvLoader) Load() (string, error) {
	if l == nil {
		return "", fmt.Errorf("env loader is nil")
	}

	log.SetOutput(os.Stderr)

	if custom := strings.TrimSpace(os.Getenv("POLYGLOT_ENV_FILE")); custom != "" {
		if err := godotenv.Overload(custom); err != nil {
			return "", fmt.Errorf("load POLYGLOT_ENV_FILE=%s: %w", custom, err)
		}
		return custom, nil
	}

	requested := strings.TrimSpace(derefString(l.value))
	if requested == "" {
		requested = l.defaultPath
	}

	if err := godotenv.Overload(requested); err == nil {
		return requested, nil
	}

	if requested != l.defaultPath {
		return "", fmt.Errorf("failed to load env file from %s", requested)
	}
	return "", nil
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

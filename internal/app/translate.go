package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nimblechat/polyglot/internal/cli"
	"github.com/nimblechat/polyglot/internal/language"
)

func runTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", time.Minute, "Command timeout")
	from := fs.String("from", language.Auto, "Source language (ISO 639-1 or auto)")
	to := fs.String("to", "en", "Target language (ISO 639-1)")
	asJSON := fs.Bool("json", false, "Print the full result as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "translate requires exactly one text argument")
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

	result := orchestrator.Translate(ctx, fs.Arg(0), *from, *to)
	if *asJSON {
		return printJSON(result)
	}
	fmt.Println(result.TranslatedText)
	return 0
}

func runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 10*time.Minute, "Command timeout")
	from := fs.String("from", language.Auto, "Source language (ISO 639-1 or auto)")
	to := fs.String("to", "en", "Target language (ISO 639-1)")
	asJSON := fs.Bool("json", false, "Print the full results as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "batch requires one file argument (use - for stdin)")
		return 2
	}
	if _, err := envLoader.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	texts, err := readLines(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if len(texts) == 0 {
		fmt.Fprintln(os.Stderr, "batch input is empty")
		return 1
	}

	_, _, orchestrator, err := bootstrap()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	results := orchestrator.TranslateBatch(ctx, texts, *from, *to)
	if *asJSON {
		return printJSON(results)
	}
	for _, result := range results {
		fmt.Println(result.TranslatedText)
	}
	return 0
}

func runDetect(args []string) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", time.Minute, "Command timeout")
	localOnly := fs.Bool("local", false, "Use only the network-free script heuristic")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "detect requires exactly one text argument")
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

	if *localOnly {
		fmt.Println(orchestrator.DetectLocal(fs.Arg(0)))
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fmt.Println(orchestrator.Detect(ctx, fs.Arg(0)))
	return 0
}

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Print the catalog as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *asJSON {
		return printJSON(language.All())
	}
	for _, lang := range language.All() {
		fmt.Printf("%s  %s\t%s (%s)\n", lang.Flag, lang.Code, lang.Name, lang.NativeName)
	}
	return 0
}

func readLines(path string) ([]string, error) {
	var scanner *bufio.Scanner
	if path == "-" {
		scanner = bufio.NewScanner(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open batch file: %w", err)
		}
		defer file.Close()
		scanner = bufio.NewScanner(file)
	}

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch input: %w", err)
	}
	return lines, nil
}

func printJSON(value any) int {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

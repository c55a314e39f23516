// Package cmd provides CLI commands for pid.
package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/pid/scheme"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var schemesPath string

var rootCmd = &cobra.Command{
	Use:   "pid",
	Short: "Detect, normalize and resolve persistent identifiers",
	Long: `Pid is a CLI tool for working with persistent identifiers such as
DOIs, Handles, ORCIDs, arXiv IDs, ISBNs and many more.

It can detect which schemes a raw value matches, rewrite a value into its
canonical form, and render the landing-page URL of a resolvable identifier.

Examples:
  pid detect 10.1234/foo.bar
  pid normalize doi:10.1234/foo.bar
  pid url arXiv:1310.2590
  cat identifiers.txt | pid detect`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&schemesPath, "schemes", "", "Custom scheme YAML file or directory")
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(schemesCmd)
}

// loadRegistry builds the custom-scheme registry for this invocation: the
// process default, plus anything declared under --schemes.
func loadRegistry() (*scheme.Registry, error) {
	if schemesPath == "" {
		return scheme.Default(), nil
	}
	regs, err := scheme.LoadPath(schemesPath)
	if err != nil {
		return nil, fmt.Errorf("loading custom schemes: %w", err)
	}
	reg, err := scheme.NewRegistry(regs)
	if err != nil {
		return nil, fmt.Errorf("building scheme registry: %w", err)
	}
	return reg, nil
}

// inputValues returns the identifiers to operate on: the positional args,
// or non-empty lines from stdin when no args were given.
func inputValues(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var values []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return values, nil
}

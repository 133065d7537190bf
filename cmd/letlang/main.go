package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/vito/letlang/pkg/ioctx"
	"github.com/vito/letlang/pkg/project"
)

// Set at link time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "none"
)

// Config holds the application configuration
type Config struct {
	Debug      bool
	Dump       bool
	NoColor    bool
	ConfigPath string

	// resolved from flags and letlang.toml before any command runs
	project *project.Config
}

func main() {
	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)
	if err := fang.Execute(ctx, rootCmd(),
		fang.WithVersion(version),
		fang.WithCommit(commit),
		// per-program failures are rendered by each stage; only selection
		// and config errors reach here, and they print as plain lines
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "letlang",
		Short: "Evaluate, type check, and resolve letlang expressions",
		Long: `letlang runs the example expression trees of a small language with
integers, booleans, conditionals, let-bindings, and first-class functions
through its evaluator, type checker, and de Bruijn resolver.`,
		Example: `  # Evaluate every example program
  letlang eval

  # Type check a single program
  letlang check sum-to

  # Show the nameless form with debug logging
  letlang nameless -d nested-let`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, &cfg)
		},
	}

	cmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&cfg.Dump, "dump", false, "Print each expression tree before its result")
	cmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", false, "Disable styled output")
	cmd.PersistentFlags().StringVar(&cfg.ConfigPath, "config", "", "Path to letlang.toml (searched for by default)")

	cmd.AddCommand(
		evalCmd(&cfg),
		checkCmd(&cfg),
		namelessCmd(&cfg),
		listCmd(),
	)

	return cmd
}

// setup loads letlang.toml, merges it with the flags, and installs the logger.
func setup(cmd *cobra.Command, cfg *Config) error {
	ctx := cmd.Context()

	var err error
	if cfg.ConfigPath != "" {
		cfg.project, err = project.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return err
		}
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		_, cfg.project, err = project.FindConfig(cwd)
		if err != nil {
			return fmt.Errorf("failed to find %s: %w", project.FileName, err)
		}
		if cfg.project == nil {
			cfg.project = project.Default()
		}
	}

	if cfg.project.Debug {
		cfg.Debug = true
	}
	if !cfg.project.UseColor() {
		cfg.NoColor = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	ctx = ioctx.LoggerToContext(ctx, level)
	slog.SetDefault(ioctx.LoggerFromContext(ctx))
	cmd.SetContext(ctx)
	return nil
}

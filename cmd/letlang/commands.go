package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vito/letlang/pkg/env"
	"github.com/vito/letlang/pkg/eval"
	"github.com/vito/letlang/pkg/hm"
	"github.com/vito/letlang/pkg/ioctx"
	"github.com/vito/letlang/pkg/named"
	"github.com/vito/letlang/pkg/nameless"
	"github.com/vito/letlang/pkg/programs"
	"github.com/vito/letlang/pkg/project"
	"github.com/vito/letlang/pkg/typing"
)

func evalCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [program...]",
		Short: "Evaluate named programs to values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd.Context(), cfg, programs.Named, args, "Value",
				func(ctx context.Context, expr named.Expr) (fmt.Stringer, error) {
					return eval.Evaluate(ctx, expr)
				})
		},
	}
}

func checkCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check [program...]",
		Short: "Type check typed programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd.Context(), cfg, programs.Typed, args, "Type",
				func(ctx context.Context, expr typing.Expr) (fmt.Stringer, error) {
					return typing.TypeOf(ctx, expr)
				})
		},
	}
}

func namelessCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "nameless [program...]",
		Short: "Convert named programs to de Bruijn indices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd.Context(), cfg, programs.Named, args, "Nameless",
				func(ctx context.Context, expr named.Expr) (fmt.Stringer, error) {
					return nameless.ToNameless(ctx, expr)
				})
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the example programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := ioctx.StdoutFromContext(cmd.Context())
			fmt.Fprintln(w, "eval, nameless:")
			for _, p := range programs.Named {
				fmt.Fprintf(w, "  %-16s %s\n", p.Name, p.Doc)
			}
			fmt.Fprintln(w, "check:")
			for _, p := range programs.Typed {
				fmt.Fprintf(w, "  %-16s %s\n", p.Name, p.Doc)
			}
			return nil
		},
	}
}

// selectPrograms picks programs named on the command line, falling back to
// the letlang.toml selection and then to the whole catalogue.
func selectPrograms[E any](ctx context.Context, cfg *Config, catalogue []programs.Program[E], args []string) ([]programs.Program[E], error) {
	if len(args) > 0 {
		selected, missing := programs.Select(catalogue, args...)
		if len(missing) > 0 {
			return nil, fmt.Errorf("unknown program(s): %s", strings.Join(missing, ", "))
		}
		return selected, nil
	}
	if len(cfg.project.Programs) > 0 {
		if unknown := programs.Unknown(cfg.project.Programs...); len(unknown) > 0 {
			return nil, fmt.Errorf("unknown program(s) in %s: %s", project.FileName, strings.Join(unknown, ", "))
		}
		// the selection is shared by every stage; names from the other
		// catalogue are skipped here
		selected, _ := programs.Select(catalogue, cfg.project.Programs...)
		if len(selected) == 0 {
			ioctx.LoggerFromContext(ctx).WarnContext(ctx, "no configured programs for this stage, running all",
				"programs", cfg.project.Programs)
			return catalogue, nil
		}
		return selected, nil
	}
	return catalogue, nil
}

// isResult reports whether err is an outcome of the stage itself, to be shown
// next to the program rather than aborting the run.
func isResult(err error) bool {
	var unbound *env.UnboundError
	var runtimeErr *eval.RuntimeError
	var mismatch hm.TypeMismatchError
	var notFn hm.NotAFunctionError
	return errors.As(err, &unbound) ||
		errors.As(err, &runtimeErr) ||
		errors.As(err, &mismatch) ||
		errors.As(err, &notFn)
}

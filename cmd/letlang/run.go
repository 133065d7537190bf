package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vito/letlang/pkg/ioctx"
	"github.com/vito/letlang/pkg/programs"
)

type outcome struct {
	expr   any
	result fmt.Stringer
	err    error
}

// runStage runs stage over the selected programs concurrently and prints
// the outcomes in catalogue order. Every call starts from its own empty
// environment, so programs share no state.
func runStage[E fmt.Stringer](
	ctx context.Context,
	cfg *Config,
	catalogue []programs.Program[E],
	args []string,
	label string,
	stage func(context.Context, E) (fmt.Stringer, error),
) error {
	selected, err := selectPrograms(ctx, cfg, catalogue, args)
	if err != nil {
		return err
	}

	outcomes := make([]outcome, len(selected))

	eg, gctx := errgroup.WithContext(ctx)
	if cfg.project.Parallel > 0 {
		eg.SetLimit(cfg.project.Parallel)
	}
	for i, prog := range selected {
		eg.Go(func() error {
			logger := ioctx.LoggerFromContext(gctx).With("program", prog.Name)
			logger.DebugContext(gctx, "running", "stage", label)

			result, err := stage(gctx, prog.Expr)
			if err != nil && !isResult(err) {
				return errors.Wrapf(err, "program %s", prog.Name)
			}
			if err != nil {
				logger.DebugContext(gctx, "failed", "error", err)
			}
			outcomes[i] = outcome{expr: prog.Expr, result: result, err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	r := newRenderer(ioctx.StdoutFromContext(ctx), !cfg.NoColor, cfg.Dump)
	for _, o := range outcomes {
		r.outcome(label, o)
	}
	slog.DebugContext(ctx, "done", "stage", label, "programs", len(outcomes))
	return nil
}

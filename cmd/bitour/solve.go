package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/katalvlaran/bitour/bitonic"
	"github.com/katalvlaran/bitour/pointset"
	"golang.org/x/sync/errgroup"
)

// outcome is the solve result of one point set.
type outcome struct {
	set     pointset.Set
	res     bitonic.Result
	err     error
	elapsed time.Duration
}

func solve(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*solveFlags)
	ctx, opts, err := setup(ctx, fv.commonFlags)
	if err != nil {
		return err
	}

	sets, loadErr := loadAll(ctx, args)
	if len(sets) == 0 {
		return loadErr
	}
	errs := &errors.M{}
	errs.Append(loadErr)
	errs.Append(run(ctx, fv.commonFlags, opts, sets))

	return errs.Err()
}

func random(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*randomFlags)
	ctx, opts, err := setup(ctx, fv.commonFlags)
	if err != nil {
		return err
	}
	if fv.Count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", fv.Count)
	}

	sets := make([]pointset.Set, fv.Count)
	for i := range sets {
		sets[i] = pointset.Random(fv.N, pointset.DeriveSeed(int64(fv.Seed), uint64(i)))
	}
	if fv.Emit {
		return pointset.Encode(stdout, sets)
	}

	return run(ctx, fv.commonFlags, opts, sets)
}

func demo(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*demoFlags)
	ctx, opts, err := setup(ctx, fv.commonFlags)
	if err != nil {
		return err
	}

	return run(ctx, fv.commonFlags, opts, []pointset.Set{pointset.Classic()})
}

// setup installs the JSON logger and derives solver options from the flags.
func setup(ctx context.Context, cf commonFlags) (context.Context, bitonic.Options, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cf.LogLevel)); err != nil {
		return ctx, bitonic.Options{}, fmt.Errorf("--log-level: %w", err)
	}
	ctx = ctxlog.NewJSONLogger(ctx, stderr, &slog.HandlerOptions{Level: level})

	layout, err := bitonic.ParseLayout(cf.Layout)
	if err != nil {
		return ctx, bitonic.Options{}, fmt.Errorf("--layout: %w", err)
	}
	if _, err := formatterFor(cf.Format); err != nil {
		return ctx, bitonic.Options{}, err
	}

	opts := bitonic.DefaultOptions()
	opts.Layout = layout
	opts.MaxPoints = cf.MaxPoints

	return ctx, opts, nil
}

// loadAll reads every file, keeping the sets of the files that parse and
// returning the errors of the others.
func loadAll(ctx context.Context, paths []string) ([]pointset.Set, error) {
	var (
		sets []pointset.Set
		errs = &errors.M{}
	)
	for _, path := range paths {
		s, err := pointset.LoadFile(path)
		if err != nil {
			ctxlog.Logger(ctx).Warn("load failed", "file", path, "error", err)
			errs.Append(err)
			continue
		}
		ctxlog.Logger(ctx).Debug("loaded", "file", path, "sets", len(s))
		sets = append(sets, s...)
	}

	return sets, errs.Err()
}

// run solves sets concurrently, writes the report in input order and
// returns the aggregated per-set errors.
func run(ctx context.Context, cf commonFlags, opts bitonic.Options, sets []pointset.Set) error {
	out := solveAll(ctx, sets, opts, cf.Concurrency)

	format, err := formatterFor(cf.Format)
	if err != nil {
		return err
	}
	if err := format(stdout, out); err != nil {
		return err
	}

	errs := &errors.M{}
	for _, o := range out {
		if o.err != nil {
			errs.Append(fmt.Errorf("%s: %w", o.set.Name, o.err))
		}
	}

	return errs.Err()
}

// solveAll runs at most concurrency solves at a time. A failing set does
// not stop the others; cancellation of ctx stops all of them.
func solveAll(ctx context.Context, sets []pointset.Set, opts bitonic.Options, concurrency int) []outcome {
	out := make([]outcome, len(sets))

	var g errgroup.Group
	g.SetLimit(max(concurrency, 1))
	for i := range sets {
		g.Go(func() error {
			lctx := ctxlog.ContextWith(ctx, "set", sets[i].Name, "n", sets[i].Len(), "layout", opts.Layout.String())
			start := time.Now()
			res, err := bitonic.SolveContext(lctx, sets[i].Points, &opts)
			out[i] = outcome{set: sets[i], res: res, err: err, elapsed: time.Since(start)}

			if err != nil {
				ctxlog.Logger(lctx).Warn("solve failed", "error", err)
				return nil
			}
			ctxlog.Logger(lctx).Info("solved", "length", res.Length, "elapsed", out[i].elapsed)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

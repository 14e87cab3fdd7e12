package days

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Runner executes units against Out.
type Runner struct {
	Log   *zap.Logger
	Out   io.Writer
	Units []Unit // defaults to Units
}

func NewRunner(log *zap.Logger, out io.Writer) *Runner {
	return &Runner{Log: log, Out: out, Units: Units}
}

func (r *Runner) units() []Unit {
	if r.Units == nil {
		return Units
	}
	return r.Units
}

// RunOne runs the unit called name. An unknown name is reported on Out and
// is not an error.
func (r *Runner) RunOne(ctx context.Context, name string) error {
	u, ok := find(r.units(), name)
	if !ok {
		fmt.Fprintf(r.Out, "%s not recognized\n", name)
		return nil
	}
	return r.run(ctx, u)
}

// RunAll runs every unit in day order and stops at the first failure.
func (r *Runner) RunAll(ctx context.Context) error {
	fmt.Fprintln(r.Out, "Running all days")
	for _, u := range r.units() {
		if err := r.run(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) run(ctx context.Context, u Unit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := r.Log.With(zap.String("unit", u.Name), zap.String("input", u.InputFilename))
	log.Debug("running unit")
	fmt.Fprintf(r.Out, "running %s\n", u.Name)

	start := time.Now()
	if err := u.Run(r.Out); err != nil {
		log.Error("unit failed", zap.Error(err))
		return fmt.Errorf("%s: %w", u.Name, err)
	}
	log.Debug("unit finished", zap.Duration("elapsed", time.Since(start)))
	return nil
}

package texscale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/texscale/internal/parallel"
)

// Batch is one conversion run: every resource under InputRoot is written
// to the same relative path under OutputRoot.
type Batch struct {
	InputRoot  string
	OutputRoot string
	Resources  []ResourceDescriptor
	Params     UpscalingParameters
}

// Report summarizes a finished Run.
type Report struct {
	// Total is the number of resources in the batch.
	Total int

	// Succeeded and Failed count finished resources. Skipped counts
	// resources never started because the context was cancelled.
	Succeeded int
	Failed    int
	Skipped   int

	// Errors holds one entry per failed resource, in group order and,
	// within a group, in discovery order.
	Errors []*ResourceError

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// errSkipped marks a task that observed cancellation before starting.
var errSkipped = errors.New("texscale: skipped")

// Run processes every resource in b.
//
// Resources are split into groups in the fixed order CopyOnly, Block, Item,
// Entity. Every task of every group is submitted before any group is
// waited on; groups are then joined in order. A failing resource is logged
// and recorded in the report and never affects its siblings.
//
// Run returns an error only for invalid parameters or cancellation. The
// output directories must already exist (see PrepareOutput). When ctx is
// cancelled, no further tasks are started, running tasks finish, and Run
// returns the partial report together with ctx.Err().
func Run(ctx context.Context, b Batch, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log()

	if err := b.Params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()
	log.Debug("worker pool started", "workers", pool.Workers(), "params", b.Params.String())

	var buckets [kindCount][]ResourceDescriptor
	for _, r := range b.Resources {
		if r.Kind >= kindCount {
			return nil, fmt.Errorf("%w: %s has unknown kind %d", ErrConfiguration, r.Path, uint8(r.Kind))
		}
		buckets[r.Kind] = append(buckets[r.Kind], r)
	}

	var groups [kindCount]*parallel.Group
	for _, kind := range Kinds {
		g := parallel.NewGroup(pool)
		for _, res := range buckets[kind] {
			g.Go(func() error {
				if ctx.Err() != nil {
					return errSkipped
				}
				return processResource(b.InputRoot, b.OutputRoot, res, b.Params, log)
			})
		}
		groups[kind] = g
	}

	report := &Report{Total: len(b.Resources)}
	for _, kind := range Kinds {
		var failed int
		for i, err := range groups[kind].Wait() {
			res := buckets[kind][i]
			switch {
			case err == nil:
				report.Succeeded++
			case errors.Is(err, errSkipped):
				report.Skipped++
			default:
				failed++
				report.Failed++
				report.Errors = append(report.Errors, asResourceError(res, err))
				log.Warn("resource failed", "kind", kind, "path", res.Path, "err", err)
			}
		}
		if n := len(buckets[kind]); n > 0 {
			log.Info("group finished", "kind", kind, "resources", n, "failed", failed)
		}
	}
	report.Elapsed = time.Since(start)

	log.Info("batch finished",
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"elapsed", report.Elapsed,
	)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// asResourceError wraps errors that did not come from processResource,
// such as recovered panics.
func asResourceError(res ResourceDescriptor, err error) *ResourceError {
	var re *ResourceError
	if errors.As(err, &re) {
		return re
	}
	return &ResourceError{Path: res.Path, Kind: res.Kind, Err: err}
}

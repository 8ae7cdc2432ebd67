package history

import (
	"context"
	"time"

	"github.com/funvibe/numbra/internal/pipeline"
)

// Processor is the pipeline stage that records the run, successful or not.
// A failure to record does not fail the run; it is passed to Warn.
type Processor struct {
	Store *Store
	Warn  func(run Run, err error)
}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if p.Store == nil {
		return ctx
	}
	run := FromContext(ctx)
	if err := p.Store.Record(context.Background(), run); err != nil && p.Warn != nil {
		p.Warn(run, err)
	}
	return ctx
}

// FromContext builds the history entry for a finished pipeline run.
func FromContext(ctx *pipeline.PipelineContext) Run {
	run := Run{
		ID:        ctx.RunID,
		File:      ctx.FilePath,
		StartedAt: ctx.Started,
		Elapsed:   ctx.Elapsed,
	}
	if run.StartedAt.IsZero() {
		// The tree never reached the backend.
		run.StartedAt = time.Now()
	}
	if ctx.Result != nil {
		run.Result = ctx.Result.Inspect()
	}
	if err := ctx.Err(); err != nil {
		run.Error = err.Error()
	}
	return run
}

package treefile

import (
	"github.com/funvibe/numbra/internal/pipeline"
)

// Processor is the pipeline stage that decodes ctx.Source into ctx.AstRoot.
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot != nil || ctx.Failed() {
		return ctx
	}
	root, err := DecodeBytes(ctx.Source)
	if err != nil {
		ctx.AddError(err)
		return ctx
	}
	ctx.AstRoot = root
	return ctx
}

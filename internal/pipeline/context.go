package pipeline

import (
	"io"
	"os"
	"time"

	"github.com/funvibe/numbra/internal/ast"
	"github.com/funvibe/numbra/internal/config"
	"github.com/funvibe/numbra/internal/evaluator"
	"github.com/google/uuid"
)

// Processor is one stage of a pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// PipelineContext carries one run from tree document to result.
type PipelineContext struct {
	FilePath string
	Source   []byte
	Config   *config.Config
	// Out receives print() output of the program.
	Out io.Writer

	AstRoot ast.Node
	Result  evaluator.Value
	Errors  []error

	RunID   uuid.UUID
	Started time.Time
	Elapsed time.Duration
}

// NewContext prepares a run of the document source read from filePath.
func NewContext(filePath string, source []byte, cfg *config.Config) *PipelineContext {
	if cfg == nil {
		cfg = config.Default()
	}
	return &PipelineContext{
		FilePath: filePath,
		Source:   source,
		Config:   cfg,
		Out:      os.Stdout,
	}
}

// Failed reports whether any stage recorded an error.
func (c *PipelineContext) Failed() bool { return len(c.Errors) > 0 }

// Err returns the first recorded error, or nil.
func (c *PipelineContext) Err() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c.Errors[0]
}

func (c *PipelineContext) AddError(err error) {
	c.Errors = append(c.Errors, err)
}

// Package backend provides an interface for execution backends and the
// pipeline stage that runs one.
package backend

import (
	"github.com/funvibe/numbra/internal/evaluator"
	"github.com/funvibe/numbra/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run executes the program from pipeline context and returns the result
	Run(ctx *pipeline.PipelineContext) (evaluator.Value, error)

	// Name returns the backend name for display
	Name() string
}

package backend

import (
	"fmt"
	"time"

	"github.com/funvibe/numbra/internal/config"
	"github.com/funvibe/numbra/internal/evaluator"
	"github.com/funvibe/numbra/internal/pipeline"
)

// TreeWalkBackend runs programs with the recursive tree-walking evaluator.
type TreeWalkBackend struct{}

// NewTreeWalk creates a new tree-walk backend
func NewTreeWalk() *TreeWalkBackend {
	return &TreeWalkBackend{}
}

func (b *TreeWalkBackend) Name() string { return "tree" }

// Run evaluates ctx.AstRoot in a fresh evaluation state configured from ctx.Config.
func (b *TreeWalkBackend) Run(ctx *pipeline.PipelineContext) (evaluator.Value, error) {
	if ctx.AstRoot == nil {
		return nil, fmt.Errorf("no syntax tree to execute")
	}

	cfg := ctx.Config
	if cfg == nil {
		cfg = config.Default()
	}

	state := evaluator.NewState()
	if ctx.Out != nil {
		state.Out = ctx.Out
	}
	if err := state.DeclareGlobals(cfg.Globals); err != nil {
		return nil, err
	}

	eval := evaluator.New(state)
	if cfg.MaxDepth > 0 {
		eval.MaxDepth = cfg.MaxDepth
	}

	ctx.RunID = state.RunID
	ctx.Started = state.Start
	defer func() { ctx.Elapsed = time.Since(ctx.Started) }()

	return eval.Eval(ctx.AstRoot)
}

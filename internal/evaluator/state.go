package evaluator

import (
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/funvibe/numbra/internal/ast"
	"github.com/funvibe/numbra/internal/config"
	"github.com/google/uuid"
)

// UserFunction is a function declared by the program.
// Body points into the syntax tree; it is shared, never copied.
type UserFunction struct {
	Name       string
	Parameters []string
	Body       ast.Node
}

// BuiltinFunction is the native implementation of a builtin.
// It receives the evaluated arguments, already checked against Arity.
type BuiltinFunction func(s *State, args ...Value) (Value, error)

type Builtin struct {
	Name  string
	Arity int
	Fn    BuiltinFunction
}

// State is the mutable context of one evaluation run. It is created per
// run and never shared between runs.
type State struct {
	Env       *Environment
	Functions map[string]*UserFunction
	Builtins  map[string]*Builtin
	Start     time.Time
	RunID     uuid.UUID
	Out       io.Writer
}

// NewState creates a state with the default globals and builtins.
func NewState() *State {
	s := &State{
		Env:       NewEnvironment(),
		Functions: make(map[string]*UserFunction),
		Builtins:  make(map[string]*Builtin, len(Builtins)),
		Start:     time.Now(),
		RunID:     uuid.New(),
		Out:       os.Stdout,
	}
	s.Env.SetGlobal(config.PiGlobalName, Real(math.Pi))
	s.Env.SetGlobal(config.EGlobalName, Real(math.E))
	for name, b := range Builtins {
		s.Builtins[name] = b
	}
	return s
}

// DeclareGlobals adds extra real globals, e.g. from configuration.
// Names are declared in sorted order; the first existing name fails.
func (s *State) DeclareGlobals(globals map[string]float64) error {
	names := make([]string, 0, len(globals))
	for name := range globals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if s.Env.HasGlobal(name) {
			return newError(Redeclaration, "you cannot redeclare a variable: %s", name)
		}
		s.Env.SetGlobal(name, Real(globals[name]))
	}
	return nil
}

// HasFunction reports whether name is a builtin or a user function.
func (s *State) HasFunction(name string) bool {
	if _, ok := s.Builtins[name]; ok {
		return true
	}
	_, ok := s.Functions[name]
	return ok
}

// Elapsed is the wall time since the run started.
func (s *State) Elapsed() time.Duration { return time.Since(s.Start) }

package evaluator

// FrameKind tells why a scope frame was opened.
type FrameKind int

const (
	CallFrame FrameKind = iota
	LoopFrame
	BlockFrame
)

type Frame struct {
	Kind  FrameKind
	store map[string]Value
}

// Environment holds the globals and the stack of local scope frames.
// Locals are looked up innermost frame first; a name bound in an inner
// frame hides the same name further out until that frame is popped.
type Environment struct {
	globals map[string]Value
	frames  []*Frame
	calls   int
}

func NewEnvironment() *Environment {
	return &Environment{globals: make(map[string]Value)}
}

func (e *Environment) Get(name string) (Value, bool) {
	if val, ok := e.GetLocal(name); ok {
		return val, true
	}
	val, ok := e.globals[name]
	return val, ok
}

func (e *Environment) GetLocal(name string) (Value, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if val, ok := e.frames[i].store[name]; ok {
			return val, true
		}
	}
	return nil, false
}

func (e *Environment) HasLocal(name string) bool {
	_, ok := e.GetLocal(name)
	return ok
}

func (e *Environment) HasGlobal(name string) bool {
	_, ok := e.globals[name]
	return ok
}

// SetGlobal binds name in the global table.
func (e *Environment) SetGlobal(name string, val Value) {
	e.globals[name] = val
}

// SetLocal binds name in the innermost frame.
// With no frame open it falls back to the globals.
func (e *Environment) SetLocal(name string, val Value) {
	if len(e.frames) == 0 {
		e.globals[name] = val
		return
	}
	e.frames[len(e.frames)-1].store[name] = val
}

// Update rebinds name where it is currently visible: the innermost frame
// holding it, else the globals. Returns false if name is not bound.
func (e *Environment) Update(name string, val Value) bool {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i].store[name]; ok {
			e.frames[i].store[name] = val
			return true
		}
	}
	if _, ok := e.globals[name]; ok {
		e.globals[name] = val
		return true
	}
	return false
}

// Push opens a new frame.
func (e *Environment) Push(kind FrameKind) *Frame {
	f := &Frame{Kind: kind, store: make(map[string]Value)}
	e.frames = append(e.frames, f)
	if kind == CallFrame {
		e.calls++
	}
	return f
}

// Pop closes the innermost frame, dropping its bindings.
func (e *Environment) Pop() {
	n := len(e.frames)
	if n == 0 {
		return
	}
	if e.frames[n-1].Kind == CallFrame {
		e.calls--
	}
	e.frames[n-1] = nil
	e.frames = e.frames[:n-1]
}

// InFunction reports whether a user function call is in progress.
func (e *Environment) InFunction() bool { return e.calls > 0 }

// CallDepth is the number of user function calls in progress.
func (e *Environment) CallDepth() int { return e.calls }

// Depth is the number of open frames.
func (e *Environment) Depth() int { return len(e.frames) }

// Globals returns a copy of the global table.
func (e *Environment) Globals() map[string]Value {
	out := make(map[string]Value, len(e.globals))
	for k, v := range e.globals {
		out[k] = v
	}
	return out
}

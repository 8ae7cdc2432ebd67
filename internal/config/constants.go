package config

// TreeFileExt is the canonical extension of syntax tree documents.
const TreeFileExt = ".yaml"

// TreeFileExtensions are all recognized tree document extensions.
// JSON is a subset of YAML, so .json documents decode the same way.
var TreeFileExtensions = []string{".yaml", ".yml", ".json"}

// DefaultMaxDepth is the maximum nesting depth of evaluation.
// Deep recursion in user programs fails with an error instead of exhausting the Go stack.
const DefaultMaxDepth = 10000

// ValueUnitSize is the cost mem() charges for a single value.
const ValueUnitSize = 32

// Default global names
const (
	PiGlobalName = "pi"
	EGlobalName  = "e"
)

// Built-in function names
const (
	VecFuncName       = "vec"
	XFuncName         = "x"
	YFuncName         = "y"
	SinFuncName       = "sin"
	CosFuncName       = "cos"
	TanFuncName       = "tan"
	LogFuncName       = "log"
	LognFuncName      = "logn"
	LnFuncName        = "ln"
	PrintFuncName     = "print"
	ConjugateFuncName = "conjugate"
	ReFuncName        = "Re"
	ImFuncName        = "Im"
	LenFuncName       = "len"
	RmFuncName        = "rm"
	InsFuncName       = "ins"
	MemFuncName       = "mem"
	ClockFuncName     = "clock"
	SqrtFuncName      = "sqrt"
	ExpFuncName       = "exp"
	AbsFuncName       = "abs"
	ArgFuncName       = "arg"
	GammaFuncName     = "gamma"
	DotFuncName       = "dot"
	CrossFuncName     = "cross"
)

// Color modes for diagnostics
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Version of the numbra command
const Version = "0.1.0"

// DefaultRecentRuns is how many runs -recent lists when given no count.
const DefaultRecentRuns = 10

// Package cli implements the numbra command: it decodes syntax tree
// documents, evaluates them and prints the final value.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/funvibe/numbra/internal/backend"
	"github.com/funvibe/numbra/internal/config"
	"github.com/funvibe/numbra/internal/evaluator"
	"github.com/funvibe/numbra/internal/history"
	"github.com/funvibe/numbra/internal/pipeline"
	"github.com/funvibe/numbra/internal/prettyprinter"
	"github.com/funvibe/numbra/internal/treefile"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	configPath string
	print      bool
	emit       bool
	history    string
	recent     int
	verbose    bool
	maxDepth   int
	color      string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{}
	fs := flag.NewFlagSet("numbra", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "read settings from a YAML `file`")
	fs.BoolVar(&opts.print, "print", false, "print each program as source text instead of running it")
	fs.BoolVar(&opts.emit, "emit", false, "re-encode each program as a tree document instead of running it")
	fs.StringVar(&opts.history, "history", "", "record runs in the SQLite database at `path`")
	fs.IntVar(&opts.recent, "recent", 0, "list the `n` most recent recorded runs")
	fs.BoolVar(&opts.verbose, "v", false, "log run details to stderr")
	fs.IntVar(&opts.maxDepth, "max-depth", 0, "maximum evaluation depth (0 keeps the configured value)")
	fs.StringVar(&opts.color, "color", "", "colorize errors: auto, always or never")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: numbra [flags] <tree.yaml> [tree2.yaml ...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs.Args(), nil
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	if opts.maxDepth != 0 {
		cfg.MaxDepth = opts.maxDepth
	}
	if opts.color != "" {
		cfg.Color = opts.color
	}
	if opts.history != "" {
		cfg.History = opts.history
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the command with args (without the program name) and
// returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) (code int) {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(stderr, "Internal error: %v\n", r)
			fmt.Fprintln(stderr, "This is a bug. Please report it.")
			code = exitFailure
		}
	}()

	opts, files, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if opts.version {
		fmt.Fprintln(stdout, "numbra "+config.Version)
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitUsage
	}

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger.SetOutput(stderr)
	}
	color := useColor(cfg.Color, stderr)

	if len(files) == 0 && opts.recent == 0 {
		fmt.Fprintln(stderr, "Error: no tree files specified")
		fmt.Fprintln(stderr, "Usage: numbra [flags] <tree.yaml> [tree2.yaml ...]")
		return exitUsage
	}

	var store *history.Store
	if cfg.History != "" && !opts.print && !opts.emit {
		if store, err = history.Open(cfg.History); err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return exitFailure
		}
		defer store.Close()
		logger.Printf("recording runs in %s", cfg.History)
	}

	code = exitOK
	for _, path := range files {
		var ok bool
		switch {
		case opts.print || opts.emit:
			ok = convertFile(path, opts.emit, stdout, stderr, color)
		default:
			ok = runFile(path, cfg, store, logger, stdout, stderr, color)
		}
		if !ok {
			code = exitFailure
		}
	}

	if opts.recent != 0 {
		if store == nil {
			fmt.Fprintln(stderr, "Error: -recent needs a history database (-history or the config history key)")
			return exitUsage
		}
		if err := printRecent(store, opts.recent, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return exitFailure
		}
	}
	return code
}

func readTree(path string) (*pipeline.PipelineContext, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return pipeline.NewContext(path, source, nil), nil
}

// runFile evaluates one tree document and prints its value.
func runFile(path string, cfg *config.Config, store *history.Store, logger *log.Logger, stdout, stderr io.Writer, color bool) bool {
	ctx, err := readTree(path)
	if err != nil {
		printError(stderr, color, "", err)
		return false
	}
	ctx.Config = cfg
	ctx.Out = stdout

	processors := []pipeline.Processor{
		treefile.Processor{},
		backend.NewExecutionProcessor(backend.NewTreeWalk()),
	}
	if store != nil {
		processors = append(processors, &history.Processor{
			Store: store,
			Warn: func(_ history.Run, err error) {
				fmt.Fprintf(stderr, "%s: warning: %v\n", path, err)
			},
		})
	}
	ctx = pipeline.New(processors...).Run(ctx)

	logger.Printf("run %s: %s in %s", ctx.RunID, path, ctx.Elapsed.Round(time.Microsecond))
	if ctx.Failed() {
		for _, err := range ctx.Errors {
			printError(stderr, color, path, err)
		}
		return false
	}
	fmt.Fprintln(stdout, ctx.Result.Inspect())
	return true
}

// convertFile decodes one tree document and writes it back out, as source
// text or (when emit is set) as a normalized tree document.
func convertFile(path string, emit bool, stdout, stderr io.Writer, color bool) bool {
	ctx, err := readTree(path)
	if err != nil {
		printError(stderr, color, "", err)
		return false
	}
	ctx = pipeline.New(treefile.Processor{}).Run(ctx)
	if ctx.Failed() {
		printError(stderr, color, path, ctx.Err())
		return false
	}
	if !emit {
		fmt.Fprintln(stdout, prettyprinter.Print(ctx.AstRoot))
		return true
	}
	out, err := treefile.Encode(ctx.AstRoot)
	if err != nil {
		printError(stderr, color, path, err)
		return false
	}
	stdout.Write(out)
	return true
}

func printRecent(store *history.Store, n int, stdout io.Writer) error {
	if n < 0 {
		n = config.DefaultRecentRuns
	}
	runs, err := store.Recent(context.Background(), n)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILE\tSTARTED\tELAPSED\tOUTCOME")
	for _, r := range runs {
		outcome := r.Result
		if r.Failed() {
			outcome = "error: " + r.Error
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.File, r.StartedAt.Local().Format(time.DateTime), r.Elapsed.Round(time.Microsecond), outcome)
	}
	return w.Flush()
}

// printError writes err prefixed with path and, when known, the position
// of the failing node.
func printError(stderr io.Writer, color bool, path string, err error) {
	where := path
	var evalErr *evaluator.Error
	var decodeErr *treefile.DecodeError
	switch {
	case errors.As(err, &evalErr) && evalErr.Pos().IsValid():
		where = fmt.Sprintf("%s:%s", path, evalErr.Pos())
	case errors.As(err, &decodeErr) && decodeErr.Line > 0:
		where = fmt.Sprintf("%s:%d:%d", path, decodeErr.Line, decodeErr.Column)
		err = errors.New(decodeErr.Message)
	}

	msg := "error: " + err.Error()
	if where != "" {
		msg = where + ": " + msg
	}
	if color {
		msg = colorRed + msg + colorReset
	}
	fmt.Fprintln(stderr, msg)
}

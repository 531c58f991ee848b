package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/layoutsmith/layoutsmith/pkg/example"
	"github.com/layoutsmith/layoutsmith/pkg/layout"
	"github.com/layoutsmith/layoutsmith/pkg/render"
)

// Runner executes the translation pipeline. It holds only a logger; results
// never persist between runs, so the same Runner is safe for concurrent use.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → synthesize → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	examples, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Examples = examples
	result.Stats.ParseTime = time.Since(parseStart)

	first := examples[0]
	opts.Logger.Debug("parsed example",
		"width", first.Width(),
		"height", first.Height(),
		"elements", len(first.Elements),
		"duration", result.Stats.ParseTime)

	// Stage 2: Synthesize
	synthStart := time.Now()
	tree, err := r.Synthesize(ctx, examples, opts)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	result.Tree = tree
	result.Stats.SynthTime = time.Since(synthStart)

	opts.Logger.Debug("synthesized layout", "duration", result.Stats.SynthTime)

	// Stage 3: Render
	renderStart := time.Now()
	result.Code = r.Render(ctx, tree, opts)
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Debug("rendered SwiftUI", "bytes", len(result.Code), "duration", result.Stats.RenderTime)

	return result, nil
}

// Parse scans the example text into structured examples.
func (r *Runner) Parse(ctx context.Context, opts Options) ([]example.Example, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return example.Parse(opts.Input)
}

// Synthesize maps parsed examples to a layout tree.
func (r *Runner) Synthesize(ctx context.Context, examples []example.Example, opts Options) (layout.Node, error) {
	return layout.Synthesize(examples)
}

// Render produces SwiftUI source text from a layout tree.
func (r *Runner) Render(ctx context.Context, tree layout.Node, opts Options) string {
	return render.SwiftUI(tree)
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

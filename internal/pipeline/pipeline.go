package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/assetreport/internal/config"
	"github.com/nao1215/assetreport/internal/model"
	"github.com/nao1215/assetreport/internal/report"
	"github.com/nao1215/assetreport/internal/verify"
)

// Run carries the state of one generation through the pipeline.
// The input fields are set by the caller; steps fill in the rest.
type Run struct {
	// Report is the content to render.
	Report *model.Report

	// Layout is the page geometry of the PDF.
	Layout config.Layout

	// OutputPath is where the PDF is written.
	OutputPath string

	// Builder holds the assembled document once AssembleStep has run.
	Builder *report.Builder

	// Written is set after the file has been written successfully.
	Written bool

	// Verification is set by VerifyStep.
	Verification *verify.Result

	// Record is set by RecordStep.
	Record *model.GenerationRecord

	// Completed lists the names of the steps that finished, in order.
	Completed []string
}

// NewRun creates a Run for rendering rpt to outputPath.
func NewRun(rpt *model.Report, layout config.Layout, outputPath string) *Run {
	return &Run{
		Report:     rpt,
		Layout:     layout,
		OutputPath: outputPath,
	}
}

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Do executes the step against run. A returned error stops the pipeline.
	Do(ctx context.Context, run *Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in the order they were added.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence and returns the first error.
// Cancellation is checked before each step; a step that has started is
// allowed to finish.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", err,
			)
			return err
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, run); err != nil {
			p.logger.Debug("step failed",
				"step", step.Name(),
				"error", err,
			)
			return err
		}

		run.Completed = append(run.Completed, step.Name())
	}
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/nao1215/assetreport/internal/model"
	"github.com/nao1215/assetreport/internal/report"
	"github.com/nao1215/assetreport/internal/verify"
)

// ErrNotAssembled is returned by steps that need the document before
// AssembleStep has run.
var ErrNotAssembled = errors.New("document has not been assembled")

// ErrNotWritten is returned by steps that need the output file before
// WriteStep has run.
var ErrNotWritten = errors.New("report file has not been written")

// AssembleStep builds the document: title, then every section in order.
type AssembleStep struct {
	opts []report.BuilderOption
}

// NewAssembleStep creates an AssembleStep. The options are passed to the builder.
func NewAssembleStep(opts ...report.BuilderOption) *AssembleStep {
	return &AssembleStep{opts: opts}
}

// Name returns the step name.
func (s *AssembleStep) Name() string {
	return "assemble"
}

// Do executes the assemble step.
func (s *AssembleStep) Do(_ context.Context, run *Run) error {
	run.Builder = report.Build(run.Report, run.Layout, s.opts...)
	return nil
}

// WriteStep serializes the document to run.OutputPath.
type WriteStep struct{}

// NewWriteStep creates a WriteStep.
func NewWriteStep() *WriteStep {
	return &WriteStep{}
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Do executes the write step.
func (s *WriteStep) Do(_ context.Context, run *Run) error {
	if run.Builder == nil {
		return ErrNotAssembled
	}
	if err := run.Builder.Finalize(run.OutputPath); err != nil {
		return err
	}
	run.Written = true
	return nil
}

// ConfirmStep prints the confirmation line for a written report.
type ConfirmStep struct {
	out io.Writer
}

// NewConfirmStep creates a ConfirmStep writing to out.
func NewConfirmStep(out io.Writer) *ConfirmStep {
	return &ConfirmStep{out: out}
}

// Name returns the step name.
func (s *ConfirmStep) Name() string {
	return "confirm"
}

// Do executes the confirm step.
func (s *ConfirmStep) Do(_ context.Context, run *Run) error {
	if !run.Written {
		return ErrNotWritten
	}
	_, err := fmt.Fprintf(s.out, "PDF report generated: %s\n", run.OutputPath)
	return err
}

// VerifyStep checks the written file and its section headings.
type VerifyStep struct {
	verifier *verify.Verifier
}

// NewVerifyStep creates a VerifyStep using verifier.
func NewVerifyStep(verifier *verify.Verifier) *VerifyStep {
	return &VerifyStep{verifier: verifier}
}

// Name returns the step name.
func (s *VerifyStep) Name() string {
	return "verify"
}

// Do executes the verify step.
func (s *VerifyStep) Do(ctx context.Context, run *Run) error {
	if !run.Written {
		return ErrNotWritten
	}
	result, err := s.verifier.Verify(ctx, run.OutputPath, run.Report.Headings())
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	run.Verification = result
	return nil
}

// Recorder stores generation records.
type Recorder interface {
	SaveGeneration(ctx context.Context, rec *model.GenerationRecord) error
}

// RecordStep saves a GenerationRecord for the written file.
type RecordStep struct {
	recorder Recorder
	logger   *slog.Logger
}

// RecordStepOption configures a RecordStep.
type RecordStepOption func(*RecordStep)

// WithRecordLogger sets a custom logger for the record step.
func WithRecordLogger(logger *slog.Logger) RecordStepOption {
	return func(s *RecordStep) {
		s.logger = logger
	}
}

// NewRecordStep creates a RecordStep saving to recorder.
func NewRecordStep(recorder Recorder, opts ...RecordStepOption) *RecordStep {
	s := &RecordStep{
		recorder: recorder,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *RecordStep) Name() string {
	return "record"
}

// Do executes the record step. The stored path is absolute so that history
// stays meaningful regardless of the working directory.
func (s *RecordStep) Do(ctx context.Context, run *Run) error {
	if run.Builder == nil {
		return ErrNotAssembled
	}
	if !run.Written {
		return ErrNotWritten
	}
	data, err := run.Builder.Bytes()
	if err != nil {
		return err
	}

	path := run.OutputPath
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	rec := model.NewGenerationRecord(path, data, run.Builder.PageCount())
	if err := s.recorder.SaveGeneration(ctx, rec); err != nil {
		return err
	}
	run.Record = rec

	s.logger.Debug("generation recorded",
		"id", rec.ID,
		"digest", rec.ShortDigest(),
	)
	return nil
}

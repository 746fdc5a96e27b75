// ============================================================================
// spiffy - SPIF Patent Number Checker
// ============================================================================
//
// Package:     service
// Description: Workbook check pipeline shared by all commands
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/msto63/spiffy/internal/processor"
	"github.com/msto63/spiffy/internal/report"
	"github.com/msto63/spiffy/internal/validator"
	"github.com/msto63/spiffy/internal/workbook"
	spferror "github.com/msto63/spiffy/pkg/core/error"
	"github.com/msto63/spiffy/pkg/core/logging"
)

// Progress messages printed while a workbook is checked
const (
	MsgBasicCheckComplete = "Basic checking complete: sheet name is correct and the two required column names are correct, now checking the contents"
	MsgResultsWritten     = "Contents check, results file written."
)

// Extension is the only accepted input file extension
const Extension = ".xlsx"

// DefaultOutputSuffix is appended to the input stem to name the results file
const DefaultOutputSuffix = "-results"

// Service runs workbook checks
type Service struct {
	logger    *zap.Logger
	layout    workbook.Layout
	suffix    string
	processor *processor.Processor
	progress  io.Writer
}

// Config holds service configuration
type Config struct {
	Layout       workbook.Layout
	Validator    *validator.Validator
	OutputSuffix string
	Logger       *zap.Logger

	// Progress receives the user-facing progress lines, nil discards them
	Progress io.Writer
}

// NewService creates a new check service
func NewService(cfg Config) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("service")
	}

	layout := cfg.Layout
	if layout == (workbook.Layout{}) {
		layout = workbook.DefaultLayout()
	}
	if layout.ApplicationErrorsColumn == layout.PublicationErrorsColumn {
		return nil, spferror.New("result column names must differ").
			WithCode(spferror.CodeInvalidConfig).
			WithDetail("column", layout.ApplicationErrorsColumn)
	}

	suffix := cfg.OutputSuffix
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}

	progress := cfg.Progress
	if progress == nil {
		progress = io.Discard
	}

	return &Service{
		logger:    logger,
		layout:    layout,
		suffix:    suffix,
		processor: processor.New(cfg.Validator),
		progress:  progress,
	}, nil
}

// CheckRequest describes one check run
type CheckRequest struct {
	Input string

	// Output overrides the default results path
	Output string

	// DryRun validates in memory and writes nothing
	DryRun bool
}

// CheckResult is the outcome of a completed run
type CheckResult struct {
	Summary report.Summary
	Rows    []RowView
}

// RowView pairs a row outcome with its 1-based sheet row number
type RowView struct {
	SheetRow    int
	Application validator.Outcome
	Publication validator.Outcome
}

// CheckExtension rejects paths that do not end in the literal ".xlsx"
func CheckExtension(path string) error {
	if !strings.HasSuffix(path, Extension) {
		return spferror.Newf("Expected an '%s' file got '%s'", Extension, path).
			WithCode(spferror.CodeInvalidExtension)
	}
	return nil
}

// OutputPath derives the results path <dir>/<stem><suffix>.xlsx from input
func OutputPath(input, suffix string) string {
	dir := filepath.Dir(input)
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, stem+suffix+Extension)
}

// OutputPath returns the results path for input using the configured suffix
func (s *Service) OutputPath(input string) string {
	return OutputPath(input, s.suffix)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// Check opens the input workbook, validates every data row and writes the
// results workbook. Preconditions fail before anything is written.
func (s *Service) Check(ctx context.Context, req *CheckRequest) (*CheckResult, error) {
	started := time.Now()
	runID := uuid.New().String()
	log := s.logger.With(zap.String(logging.KeyRunID, runID), zap.String(logging.KeyInput, req.Input))

	if err := CheckExtension(req.Input); err != nil {
		return nil, err
	}

	output := ""
	if !req.DryRun {
		output = req.Output
		if output == "" {
			output = s.OutputPath(req.Input)
		}
		if samePath(output, req.Input) {
			return nil, spferror.Newf("output file '%s' would overwrite the input file", output).
				WithCode(spferror.CodeInvalidOutput).
				WithOperation("service.Check")
		}
		if err := CheckExtension(output); err != nil {
			return nil, spferror.Wrap(err, "invalid output file").WithCode(spferror.CodeInvalidOutput)
		}
	}

	log.Debug("Opening workbook")
	wb, err := workbook.Open(req.Input)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet, err := wb.Sheet(s.layout.Sheet)
	if err != nil {
		return nil, err
	}

	positions, err := sheet.Locate(s.layout.ApplicationColumn, s.layout.PublicationColumn)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(s.progress, MsgBasicCheckComplete)

	if err := sheet.EnsureData(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, spferror.Wrap(err, "check cancelled").WithOperation("service.Check")
	}

	resultCols, err := sheet.AppendColumns(s.layout.ApplicationErrorsColumn, s.layout.PublicationErrorsColumn)
	if err != nil {
		return nil, spferror.Wrap(err, "failed to add result columns").
			WithCode(spferror.CodeWriteFailed).
			WithOperation("service.Check")
	}

	cols := processor.Columns{
		Application:       positions[s.layout.ApplicationColumn],
		Publication:       positions[s.layout.PublicationColumn],
		ApplicationErrors: resultCols[0],
		PublicationErrors: resultCols[1],
	}
	log.Debug("Checking rows",
		zap.String(logging.KeySheet, sheet.Name()),
		zap.Int("rows", sheet.Rows()),
		zap.Int("application_col", cols.Application),
		zap.Int("publication_col", cols.Publication))

	res, err := s.processor.Process(sheet, cols)
	if err != nil {
		return nil, spferror.Wrap(err, "failed to write row result").
			WithCode(spferror.CodeWriteFailed).
			WithOperation("service.Check")
	}

	rows := make([]RowView, len(res.Rows))
	for i, rr := range res.Rows {
		rows[i] = RowView{SheetRow: rr.Row + 2, Application: rr.Application, Publication: rr.Publication}
		if ce := log.Check(zap.DebugLevel, "Row checked"); ce != nil {
			ce.Write(append(logging.OutcomeFields(rows[i].SheetRow, rr.Application),
				zap.String("publication", rr.Publication.Identifier),
				zap.Stringer("publication_status", rr.Publication.Status))...)
		}
	}

	if !req.DryRun {
		if err := ctx.Err(); err != nil {
			return nil, spferror.Wrap(err, "check cancelled before saving").WithOperation("service.Check")
		}
		if err := wb.SaveAs(output); err != nil {
			return nil, err
		}
		fmt.Fprintln(s.progress, MsgResultsWritten)
	}

	summary := report.Summary{
		RunID:     runID,
		Input:     req.Input,
		Output:    output,
		Sheet:     sheet.Name(),
		Rows:      len(res.Rows),
		Tally:     res.Tally,
		StartedAt: started,
		Duration:  time.Since(started),
	}

	log.Info("Check complete",
		zap.String(logging.KeyOutput, output),
		zap.Int("rows", summary.Rows),
		zap.Int("application_ok", res.Tally.Application.OK),
		zap.Int("publication_ok", res.Tally.Publication.OK),
		zap.Duration("duration", summary.Duration))

	return &CheckResult{Summary: summary, Rows: rows}, nil
}

// ============================================================================
// spiffy - SPIF Patent Number Checker
// ============================================================================
//
// Package:     report
// Description: Run summaries, terminal rendering and file export
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

// Package report summarizes a check run for the terminal and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/msto63/spiffy/internal/processor"
	"github.com/msto63/spiffy/internal/validator"
	spferror "github.com/msto63/spiffy/pkg/core/error"
)

// Summary describes one completed check of a workbook
type Summary struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	Input     string          `json:"input" yaml:"input"`
	Output    string          `json:"output,omitempty" yaml:"output,omitempty"`
	Sheet     string          `json:"sheet" yaml:"sheet"`
	Rows      int             `json:"rows" yaml:"rows"`
	Tally     processor.Tally `json:"tally" yaml:"tally"`
	StartedAt time.Time       `json:"started_at" yaml:"started_at"`
	Duration  time.Duration   `json:"-" yaml:"-"`

	// Elapsed mirrors Duration in a readable form for exports
	Elapsed string `json:"elapsed" yaml:"elapsed"`
}

// Written reports whether the run produced a results file
func (s Summary) Written() bool {
	return s.Output != ""
}

// Render writes the styled summary to w
func (s Summary) Render(w io.Writer) error {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Check summary"))
	b.WriteString("\n")
	b.WriteString(field("Input", s.Input))
	if s.Written() {
		b.WriteString(field("Output", s.Output))
	}
	b.WriteString(field("Sheet", s.Sheet))
	b.WriteString(field("Data rows", fmt.Sprintf("%d", s.Rows)))
	if s.Duration > 0 {
		b.WriteString(field("Duration", s.Duration.Round(time.Millisecond).String()))
	}
	b.WriteString("\n")
	b.WriteString(s.table())

	_, err := fmt.Fprintln(w, PanelStyle.Render(strings.TrimRight(b.String(), "\n")))
	return err
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), ValueStyle.Render(value)) + "\n"
}

func (s Summary) table() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		KindCellStyle.Render(""),
		HeaderCellStyle.Render("OK"),
		HeaderCellStyle.Render("Invalid"),
		HeaderCellStyle.Render("Before 2000"),
		HeaderCellStyle.Render("Unsupported"),
	)

	lines := []string{header}
	for _, kind := range validator.Kinds {
		c := s.Tally.Of(kind)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			KindCellStyle.Render(kind.String()),
			OKStyle.Render(fmt.Sprintf("%d", c.OK)),
			countStyle(c.Invalid, InvalidStyle).Render(fmt.Sprintf("%d", c.Invalid)),
			countStyle(c.Predates2000, WarnStyle).Render(fmt.Sprintf("%d", c.Predates2000)),
			countStyle(c.Unsupported+c.NotImplemented, WarnStyle).Render(fmt.Sprintf("%d", c.Unsupported+c.NotImplemented)),
		))
	}
	return strings.Join(lines, "\n")
}

func countStyle(n int, style lipgloss.Style) lipgloss.Style {
	if n == 0 {
		return MutedStyle
	}
	return style
}

// Format of an exported summary
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the export format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", spferror.Newf("unsupported report format '%s', use .json, .yaml or .yml", filepath.Ext(path)).
			WithCode(spferror.CodeUsage).
			WithDetail("path", path)
	}
}

// Encode writes the summary to w in the given format
func (s Summary) Encode(w io.Writer, format Format) error {
	s.Elapsed = s.Duration.String()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return spferror.Newf("unknown report format %q", format).WithCode(spferror.CodeInternal)
	}
}

// WriteFile exports the summary to path, choosing the format by extension
func (s Summary) WriteFile(path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return spferror.Wrap(err, "failed to create report file").
			WithCode(spferror.CodeWriteFailed).
			WithOperation("report.WriteFile").
			WithDetail("path", path)
	}

	if err := s.Encode(f, format); err != nil {
		f.Close()
		return spferror.Wrap(err, "failed to encode report").
			WithCode(spferror.CodeWriteFailed).
			WithOperation("report.WriteFile").
			WithDetail("path", path)
	}
	return f.Close()
}

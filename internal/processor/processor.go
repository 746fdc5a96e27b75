// Package processor runs the identifier validator over the rows of a table
// and writes each outcome into the row's result columns.
package processor

import (
	"fmt"

	"github.com/msto63/spiffy/internal/validator"
)

// Table is the row storage the processor reads from and writes into.
// Rows are 0-based data rows; the header is not part of the table.
type Table interface {
	Rows() int
	Cell(row, col int) string
	SetCell(row, col int, value string) error
}

// Columns holds the 0-based column positions used by the processor.
type Columns struct {
	Application       int
	Publication       int
	ApplicationErrors int
	PublicationErrors int
}

// Validate checks that no column index is negative and that the result
// columns do not overlap the identifier columns.
func (c Columns) Validate() error {
	for _, col := range []struct {
		name string
		idx  int
	}{
		{"application", c.Application},
		{"publication", c.Publication},
		{"application errors", c.ApplicationErrors},
		{"publication errors", c.PublicationErrors},
	} {
		if col.idx < 0 {
			return fmt.Errorf("%s column index %d is negative", col.name, col.idx)
		}
	}
	if c.ApplicationErrors == c.PublicationErrors {
		return fmt.Errorf("result columns must differ, both are %d", c.ApplicationErrors)
	}
	for _, out := range []int{c.ApplicationErrors, c.PublicationErrors} {
		if out == c.Application || out == c.Publication {
			return fmt.Errorf("result column %d would overwrite an identifier column", out)
		}
	}
	return nil
}

// RowResult holds the two outcomes of one data row.
type RowResult struct {
	Row         int
	Application validator.Outcome
	Publication validator.Outcome
}

// Outcome returns the outcome of the given kind.
func (r RowResult) Outcome(kind validator.Kind) validator.Outcome {
	if kind == validator.Publication {
		return r.Publication
	}
	return r.Application
}

// Result is the output of one Process call.
type Result struct {
	Rows  []RowResult
	Tally Tally
}

// Processor applies a validator to every row of a table.
type Processor struct {
	validator *validator.Validator
}

// New creates a Processor. A nil validator selects validator.Default().
func New(v *validator.Validator) *Processor {
	if v == nil {
		v = validator.Default()
	}
	return &Processor{validator: v}
}

// Process validates every row in order and writes the outcome texts.
// A row with invalid identifiers never stops processing; only a failed
// write is returned as an error.
func (p *Processor) Process(t Table, cols Columns) (Result, error) {
	if err := cols.Validate(); err != nil {
		return Result{}, err
	}

	n := t.Rows()
	res := Result{Rows: make([]RowResult, 0, n)}

	for row := 0; row < n; row++ {
		rr := RowResult{
			Row:         row,
			Application: p.validator.Validate(validator.Application, t.Cell(row, cols.Application)),
			Publication: p.validator.Validate(validator.Publication, t.Cell(row, cols.Publication)),
		}

		if err := t.SetCell(row, cols.ApplicationErrors, rr.Application.Text()); err != nil {
			return res, fmt.Errorf("write application result of row %d: %w", row, err)
		}
		if err := t.SetCell(row, cols.PublicationErrors, rr.Publication.Text()); err != nil {
			return res, fmt.Errorf("write publication result of row %d: %w", row, err)
		}

		res.Rows = append(res.Rows, rr)
		res.Tally.Add(rr)
	}

	return res, nil
}

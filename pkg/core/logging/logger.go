package logging

import (
	"go.uber.org/zap"

	"github.com/msto63/spiffy/internal/validator"
)

// Field keys shared by all log statements of a run.
const (
	KeyRunID  = "run_id"
	KeyInput  = "input"
	KeyOutput = "output"
	KeySheet  = "sheet"
)

// OutcomeFields returns the structured fields describing one outcome.
func OutcomeFields(row int, o validator.Outcome) []zap.Field {
	return []zap.Field{
		zap.Int("row", row),
		zap.Stringer("kind", o.Kind),
		zap.String("identifier", o.Identifier),
		zap.String("jurisdiction", string(o.Jurisdiction)),
		zap.Stringer("status", o.Status),
		zap.String("reason", string(o.Reason)),
	}
}

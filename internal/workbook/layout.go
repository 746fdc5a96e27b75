package workbook

// Default names defined by the SPIF master data template.
const (
	DefaultSheet                   = "Master Data - SPIF"
	DefaultApplicationColumn       = "Application Number - SPIF"
	DefaultPublicationColumn       = "Publication Number - SPIF"
	DefaultApplicationErrorsColumn = "Application Number Errors"
	DefaultPublicationErrorsColumn = "Publication Number Errors"
)

// Layout names the sheet and the header cells the checker works with.
type Layout struct {
	Sheet                   string
	ApplicationColumn       string
	PublicationColumn       string
	ApplicationErrorsColumn string
	PublicationErrorsColumn string
}

// DefaultLayout returns the SPIF template names.
func DefaultLayout() Layout {
	return Layout{
		Sheet:                   DefaultSheet,
		ApplicationColumn:       DefaultApplicationColumn,
		PublicationColumn:       DefaultPublicationColumn,
		ApplicationErrorsColumn: DefaultApplicationErrorsColumn,
		PublicationErrorsColumn: DefaultPublicationErrorsColumn,
	}
}

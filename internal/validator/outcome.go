package validator

import "fmt"

// Kind selects which identifier rule set applies.
type Kind int

const (
	Application Kind = iota
	Publication
)

// String returns the lower-case kind name used on the command line.
func (k Kind) String() string {
	switch k {
	case Application:
		return "application"
	case Publication:
		return "publication"
	default:
		return "unknown"
	}
}

// ParseKind converts a command-line name ("application", "app", "publication", "pub").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "application", "app", "a":
		return Application, nil
	case "publication", "pub", "p":
		return Publication, nil
	default:
		return 0, fmt.Errorf("unknown identifier kind %q (want application or publication)", s)
	}
}

// Kinds lists every identifier kind in column order.
var Kinds = []Kind{Application, Publication}

// Status is the category of a validation outcome.
type Status int

const (
	Valid Status = iota
	Invalid
	Unchecked
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Unchecked:
		return "unchecked"
	default:
		return "unknown"
	}
}

// Reason refines a status. The codes follow the VALIDATION_* vocabulary of
// the platform's validation results.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonPattern            Reason = "VALIDATION_PATTERN"
	ReasonPredates2000       Reason = "VALIDATION_DATE"
	ReasonUnsupportedCountry Reason = "VALIDATION_COUNTRY"
	ReasonNotImplemented     Reason = "VALIDATION_NOT_IMPLEMENTED"
)

// Fixed outcome texts.
const (
	TextOK             = "OK"
	TextPredates2000   = "Year predates 2000 not checked"
	TextNotImplemented = "Not yet implemented"
)

// Outcome is the diagnostic for one identifier of one kind.
type Outcome struct {
	Kind         Kind
	Identifier   string
	Jurisdiction Jurisdiction
	Status       Status
	Reason       Reason
	Message      string
}

// Text returns the value written into the result column.
func (o Outcome) Text() string {
	if o.Status == Valid {
		return TextOK
	}
	return o.Message
}

// OK reports whether the identifier passed.
func (o Outcome) OK() bool {
	return o.Status == Valid
}

// Unsupported reports whether the jurisdiction was outside the supported set.
func (o Outcome) Unsupported() bool {
	return o.Reason == ReasonUnsupportedCountry
}

// String returns a compact debugging representation.
func (o Outcome) String() string {
	return fmt.Sprintf("%s %q: %s (%s)", o.Kind, o.Identifier, o.Text(), o.Status)
}

func unsupported(kind Kind, id string, cc Jurisdiction) Outcome {
	return Outcome{
		Kind:         kind,
		Identifier:   id,
		Jurisdiction: cc,
		Status:       Unchecked,
		Reason:       ReasonUnsupportedCountry,
		Message:      fmt.Sprintf("Unsupported country %s", cc),
	}
}

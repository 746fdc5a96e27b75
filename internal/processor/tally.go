package processor

import "github.com/msto63/spiffy/internal/validator"

// Counts tallies the outcomes of one identifier kind.
type Counts struct {
	Total          int `json:"total" yaml:"total"`
	OK             int `json:"ok" yaml:"ok"`
	Invalid        int `json:"invalid" yaml:"invalid"`
	Predates2000   int `json:"predates_2000" yaml:"predates_2000"`
	Unsupported    int `json:"unsupported" yaml:"unsupported"`
	NotImplemented int `json:"not_implemented" yaml:"not_implemented"`
}

// Add counts one outcome.
func (c *Counts) Add(o validator.Outcome) {
	c.Total++
	switch {
	case o.Status == validator.Valid:
		c.OK++
	case o.Status == validator.Invalid:
		c.Invalid++
	case o.Reason == validator.ReasonPredates2000:
		c.Predates2000++
	case o.Reason == validator.ReasonUnsupportedCountry:
		c.Unsupported++
	case o.Reason == validator.ReasonNotImplemented:
		c.NotImplemented++
	}
}

// Unchecked returns the number of outcomes that were neither passed nor failed.
func (c Counts) Unchecked() int {
	return c.Predates2000 + c.Unsupported + c.NotImplemented
}

// Tally holds the counts of both kinds.
type Tally struct {
	Application Counts `json:"application" yaml:"application"`
	Publication Counts `json:"publication" yaml:"publication"`
}

// Add counts both outcomes of a row.
func (t *Tally) Add(r RowResult) {
	t.Application.Add(r.Application)
	t.Publication.Add(r.Publication)
}

// Of returns the counts of a kind.
func (t Tally) Of(kind validator.Kind) Counts {
	if kind == validator.Publication {
		return t.Publication
	}
	return t.Application
}

// AllOK reports whether every identifier of both kinds passed.
func (t Tally) AllOK() bool {
	return t.Application.OK == t.Application.Total && t.Publication.OK == t.Publication.Total
}

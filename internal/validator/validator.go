// Package validator checks SPIF application and publication numbers against
// the per-country syntax rules of the SPIF data interchange format.
//
// Every input yields an Outcome; validation never fails with an error.
// An identifier is Valid ("OK"), Invalid (with the country's fixed message)
// or Unchecked (unsupported country, rule not implemented, or a year before
// 2000, whose numbering the rules do not describe).
package validator

import (
	"fmt"
	"sort"
)

// DefaultCountries is the supported jurisdiction set for both kinds.
var DefaultCountries = []string{"US", "KR", "JP", "CN", "EP", "WO"}

// Options configures the supported jurisdictions per identifier kind.
type Options struct {
	ApplicationCountries []string
	PublicationCountries []string
}

// DefaultOptions returns the default supported sets.
func DefaultOptions() Options {
	return Options{
		ApplicationCountries: append([]string(nil), DefaultCountries...),
		PublicationCountries: append([]string(nil), DefaultCountries...),
	}
}

// Validator dispatches identifiers to the rule of their jurisdiction.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	supported map[Kind]map[Jurisdiction]bool
}

// New creates a Validator. Country codes must be two upper-case letters.
func New(opts Options) (*Validator, error) {
	app, err := countrySet(Application, opts.ApplicationCountries)
	if err != nil {
		return nil, err
	}
	pub, err := countrySet(Publication, opts.PublicationCountries)
	if err != nil {
		return nil, err
	}
	return &Validator{
		supported: map[Kind]map[Jurisdiction]bool{
			Application: app,
			Publication: pub,
		},
	}, nil
}

func countrySet(kind Kind, codes []string) (map[Jurisdiction]bool, error) {
	set := make(map[Jurisdiction]bool, len(codes))
	for _, c := range codes {
		if !IsCountryCode(c) {
			return nil, fmt.Errorf("invalid %s country code %q: want two upper-case letters", kind, c)
		}
		set[Jurisdiction(c)] = true
	}
	return set, nil
}

// IsCountryCode reports whether s has the shape of a jurisdiction code.
func IsCountryCode(s string) bool {
	return len(s) == 2 && s[0] >= 'A' && s[0] <= 'Z' && s[1] >= 'A' && s[1] <= 'Z'
}

var defaultValidator = func() *Validator {
	v, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return v
}()

// Default returns the validator for DefaultCountries.
func Default() *Validator {
	return defaultValidator
}

// Validate checks an identifier with the default validator.
func Validate(kind Kind, identifier string) Outcome {
	return defaultValidator.Validate(kind, identifier)
}

// Validate returns the outcome for one identifier.
func (v *Validator) Validate(kind Kind, identifier string) Outcome {
	cc := Prefix(identifier)

	if !v.supported[kind][cc] {
		return unsupported(kind, identifier, cc)
	}

	out := Outcome{Kind: kind, Identifier: identifier, Jurisdiction: cc}

	rule, ok := LookupRule(kind, cc)
	if !ok {
		out.Status = Unchecked
		out.Reason = ReasonNotImplemented
		out.Message = TextNotImplemented
		return out
	}

	m := rule.Pattern.FindStringSubmatch(identifier)
	if m == nil {
		out.Status = Invalid
		out.Reason = ReasonPattern
		out.Message = rule.Message
		return out
	}

	if y, ok := rule.year(m); ok && y < 2000 {
		out.Status = Unchecked
		out.Reason = ReasonPredates2000
		out.Message = TextPredates2000
		return out
	}

	out.Status = Valid
	return out
}

// Supported returns the supported jurisdictions of a kind, sorted.
func (v *Validator) Supported(kind Kind) []Jurisdiction {
	out := make([]Jurisdiction, 0, len(v.supported[kind]))
	for cc := range v.supported[kind] {
		out = append(out, cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Prefix returns the jurisdiction part of an identifier: its first two
// characters, or fewer when the identifier is shorter.
func Prefix(identifier string) Jurisdiction {
	n := 0
	for i := range identifier {
		if n == 2 {
			return Jurisdiction(identifier[:i])
		}
		n++
	}
	return Jurisdiction(identifier)
}

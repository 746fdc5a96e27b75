package validator

import (
	"regexp"
	"sort"
	"strconv"
)

// Jurisdiction is the two-letter country or office prefix of an identifier.
type Jurisdiction string

// Rule is the syntax rule of one jurisdiction for one identifier kind.
// Patterns are anchored at both ends. A capture group named "year" marks the
// filing or publication year; alternatives may each declare their own.
type Rule struct {
	Jurisdiction Jurisdiction
	Pattern      *regexp.Regexp
	Message      string
}

// year returns the first non-empty "year" group of m.
func (r Rule) year(m []string) (int, bool) {
	for i, name := range r.Pattern.SubexpNames() {
		if name != "year" || i >= len(m) || m[i] == "" {
			continue
		}
		y, err := strconv.Atoi(m[i])
		if err != nil {
			return 0, false
		}
		return y, true
	}
	return 0, false
}

// Application number rules.
// The Aug 2007 change in CN digit count cannot be decided without the filing
// date, so both lengths are accepted.
var applicationRules = map[Jurisdiction]Rule{
	"US": {
		Jurisdiction: "US",
		Pattern:      regexp.MustCompile(`^US\d{8}$`),
		Message:      "US Application Numbers should be US######## (US followed by 8-digits)",
	},
	"EP": {
		Jurisdiction: "EP",
		Pattern:      regexp.MustCompile(`^EP\d{8}$`),
		Message:      "EP Application Numbers should be EP######## (EP followed by 8-digits)",
	},
	"JP": {
		Jurisdiction: "JP",
		Pattern:      regexp.MustCompile(`^JP(?P<year>\d{4})\d{6}$`),
		Message:      "JP Application Numbers should be JPYYYY###### (6-digits)",
	},
	"WO": {
		Jurisdiction: "WO",
		Pattern:      regexp.MustCompile(`^WO(?P<year>\d{4})[A-Z]{2}\d{6}$`),
		Message:      "WO Application Numbers should be WOYYYYCC###### (6-digits)",
	},
	"CN": {
		Jurisdiction: "CN",
		Pattern:      regexp.MustCompile(`^CN(?P<year>\d{4})[1289]\d{6,7}$`),
		Message:      "CN Application Numbers should be CNYYYY followed by 1, 2, 8, or 9, and then 6 digits pre Aug 2007 and 7 digits post Aug 2007",
	},
	"KR": {
		Jurisdiction: "KR",
		Pattern:      regexp.MustCompile(`^KR[12]0(?P<year>\d{4})\d{7}$`),
		Message:      "KR Application Numbers should be KR10YYYY####### or KR20YYYY####### (7-digits in both)",
	},
}

// Publication number rules.
// US only accepts 20YY in its year form, so no separate year check applies.
// The CN/JP/KR 6 vs 8 digit switch of 2007 is not checked.
var publicationRules = map[Jurisdiction]Rule{
	"US": {
		Jurisdiction: "US",
		Pattern:      regexp.MustCompile(`^(?:US20\d{2}\d{7}A\d|US[01]?\d{7}[ABCEFJKO][1-9]?|USRE\d{5}E\d?)$`),
		Message:      "US numbers should be USYYYY#######KK (US followed by 4-digit year, 7-digit pub, kind code) or US#######KK/US########KK (7 or 8 digit pub) or USRE#####E or USRE#####E#)",
	},
	"EP": {
		Jurisdiction: "EP",
		Pattern:      regexp.MustCompile(`^EP\d{7}[AB][1-9]?$`),
		Message:      "EP numbers should be EP#######KK (EP followed by 7-digits, followed by kind code)",
	},
	"WO": {
		Jurisdiction: "WO",
		Pattern:      regexp.MustCompile(`^WO(?P<year>\d{4})\d{6}A[1-9]$`),
		Message:      "WO numbers should be WOYYYY#######KK (WO followed by 4-digit year, by 6-digits, followed by kind code)",
	},
	"CN": {
		Jurisdiction: "CN",
		Pattern:      regexp.MustCompile(`^(?:CN[12]\d{6}|CN[12]\d{8}[A-Z]\d)$`),
		Message:      "CN numbers should be CN followed by 1 or 2, and either 6 or 8 digits then kind code",
	},
	"JP": {
		Jurisdiction: "JP",
		Pattern:      regexp.MustCompile(`^(?:JP(?P<year>\d{4})\d{6}[A-Z]\d|JP\d{6}[A-Z]\d|JP(?P<year>\d{4})\d{6}U|JP\d{6}U)$`),
		Message:      "JP numbers should be JPYYYY######KK or JP######KK or JPYYYY#####U or JP#####U (all 6-digits)",
	},
	"KR": {
		Jurisdiction: "KR",
		Pattern:      regexp.MustCompile(`^(?:KR(?P<year>\d{4})\d{7}[AU]|KR[12]0(?P<year>\d{4})\d{7}[AU]|KR[12]0\d{7}[BY]\d)$`),
		Message:      "KR numbers pre-2004 apps should be KRYYYY#######K (7 digits and A or U kind); post-2004 KR10YYYY#######K or KR20YYYY#######K (7-digits and A or U kind), or KR10########B# or KR20#######Y#",
	},
}

func ruleTable(kind Kind) map[Jurisdiction]Rule {
	if kind == Publication {
		return publicationRules
	}
	return applicationRules
}

// Rules returns the rules of a kind sorted by jurisdiction.
func Rules(kind Kind) []Rule {
	table := ruleTable(kind)
	out := make([]Rule, 0, len(table))
	for _, r := range table {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Jurisdiction < out[j].Jurisdiction })
	return out
}

// LookupRule returns the rule for a jurisdiction, if one is implemented.
func LookupRule(kind Kind, cc Jurisdiction) (Rule, bool) {
	r, ok := ruleTable(kind)[cc]
	return r, ok
}

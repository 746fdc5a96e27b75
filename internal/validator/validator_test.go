package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Application(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		status Status
		reason Reason
	}{
		{"US 8 digits", "US12345678", Valid, ReasonNone},
		{"US 7 digits", "US1234567", Invalid, ReasonPattern},
		{"US trailing garbage", "US12345678X", Invalid, ReasonPattern},
		{"EP 8 digits", "EP12345678", Valid, ReasonNone},
		{"EP 9 digits", "EP123456789", Invalid, ReasonPattern},
		{"JP year and serial", "JP2005123456", Valid, ReasonNone},
		{"JP short serial", "JP200512345", Invalid, ReasonPattern},
		{"JP pre 2000", "JP1999123456", Unchecked, ReasonPredates2000},
		{"WO year office serial", "WO2005US123456", Valid, ReasonNone},
		{"WO lower-case office", "WO2005us123456", Invalid, ReasonPattern},
		{"WO pre 2000", "WO1999US123456", Unchecked, ReasonPredates2000},
		{"CN 6 digit serial", "CN20051123456", Valid, ReasonNone},
		{"CN 7 digit serial", "CN200510123456", Valid, ReasonNone},
		{"CN 8 digit serial", "CN2005101234567", Invalid, ReasonPattern},
		{"CN bad type digit", "CN200531234567", Invalid, ReasonPattern},
		{"CN pre 2000", "CN199910123456", Unchecked, ReasonPredates2000},
		{"KR patent", "KR1020051234567", Valid, ReasonNone},
		{"KR utility", "KR2020051234567", Valid, ReasonNone},
		{"KR bad type", "KR3020051234567", Invalid, ReasonPattern},
		{"KR pre 2000", "KR1019991234567", Unchecked, ReasonPredates2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(Application, tt.id)
			assert.Equal(t, tt.status, got.Status, got.String())
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, Application, got.Kind)
			assert.Equal(t, tt.id, got.Identifier)
		})
	}
}

func TestValidate_Publication(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		status Status
		reason Reason
	}{
		{"US year form", "US20051234567A1", Valid, ReasonNone},
		{"US 7 digit grant", "US7654321B1", Valid, ReasonNone},
		{"US 8 digit grant", "US12345678B2", Valid, ReasonNone},
		{"US kind without digit", "US7654321E", Valid, ReasonNone},
		{"US reissue", "USRE12345E", Valid, ReasonNone},
		{"US reissue with digit", "USRE12345E1", Valid, ReasonNone},
		{"US year form short serial", "US2005123456A1", Invalid, ReasonPattern},
		{"US unknown kind", "US7654321D1", Invalid, ReasonPattern},
		{"US 1999 year form", "US19991234567A1", Invalid, ReasonPattern},
		{"EP with kind digit", "EP1234567A1", Valid, ReasonNone},
		{"EP without kind digit", "EP1234567B", Valid, ReasonNone},
		{"EP kind C", "EP1234567C1", Invalid, ReasonPattern},
		{"WO publication", "WO2020123456A1", Valid, ReasonNone},
		{"WO pre 2000", "WO1999123456A1", Unchecked, ReasonPredates2000},
		{"WO kind B", "WO2020123456B1", Invalid, ReasonPattern},
		{"CN 6 digits", "CN1123456", Valid, ReasonNone},
		{"CN 8 digits with kind", "CN212345678U1", Valid, ReasonNone},
		{"CN bad type", "CN3123456", Invalid, ReasonPattern},
		{"CN trailing garbage", "CN1123456XYZ", Invalid, ReasonPattern},
		{"JP year with kind", "JP2005123456A1", Valid, ReasonNone},
		{"JP no year with kind", "JP123456B2", Valid, ReasonNone},
		{"JP year utility", "JP2005123456U", Valid, ReasonNone},
		{"JP no year utility", "JP123456U", Valid, ReasonNone},
		{"JP pre 2000 with kind", "JP1999123456A1", Unchecked, ReasonPredates2000},
		{"JP pre 2000 utility", "JP1999123456U", Unchecked, ReasonPredates2000},
		{"JP 5 digits", "JP12345A1", Invalid, ReasonPattern},
		{"KR bare year", "KR20051234567A", Valid, ReasonNone},
		{"KR prefixed year", "KR1020051234567U", Valid, ReasonNone},
		{"KR registration", "KR101234567B1", Valid, ReasonNone},
		{"KR utility registration", "KR201234567Y1", Valid, ReasonNone},
		{"KR bare year pre 2000", "KR19991234567A", Unchecked, ReasonPredates2000},
		{"KR prefixed year pre 2000", "KR1019991234567U", Unchecked, ReasonPredates2000},
		{"KR wrong kind", "KR1020051234567B", Invalid, ReasonPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(Publication, tt.id)
			assert.Equal(t, tt.status, got.Status, got.String())
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestValidate_Scenarios(t *testing.T) {
	tests := []struct {
		kind Kind
		id   string
		text string
	}{
		{Application, "US12345678", "OK"},
		{Application, "US1234567", "US Application Numbers should be US######## (US followed by 8-digits)"},
		{Application, "JP1999123456", "Year predates 2000 not checked"},
		{Application, "FR12345678", "Unsupported country FR"},
		{Publication, "EP1234567A1", "OK"},
		{Publication, "WO2020123456A1", "OK"},
		{Publication, "WO1999123456A1", "Year predates 2000 not checked"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.id, func(t *testing.T) {
			assert.Equal(t, tt.text, Validate(tt.kind, tt.id).Text())
		})
	}
}

func TestValidate_InvalidMessagesAreVerbatim(t *testing.T) {
	want := map[Kind]map[Jurisdiction]string{
		Application: {
			"US": "US Application Numbers should be US######## (US followed by 8-digits)",
			"EP": "EP Application Numbers should be EP######## (EP followed by 8-digits)",
			"JP": "JP Application Numbers should be JPYYYY###### (6-digits)",
			"WO": "WO Application Numbers should be WOYYYYCC###### (6-digits)",
			"CN": "CN Application Numbers should be CNYYYY followed by 1, 2, 8, or 9, and then 6 digits pre Aug 2007 and 7 digits post Aug 2007",
			"KR": "KR Application Numbers should be KR10YYYY####### or KR20YYYY####### (7-digits in both)",
		},
		Publication: {
			"US": "US numbers should be USYYYY#######KK (US followed by 4-digit year, 7-digit pub, kind code) or US#######KK/US########KK (7 or 8 digit pub) or USRE#####E or USRE#####E#)",
			"EP": "EP numbers should be EP#######KK (EP followed by 7-digits, followed by kind code)",
			"WO": "WO numbers should be WOYYYY#######KK (WO followed by 4-digit year, by 6-digits, followed by kind code)",
			"CN": "CN numbers should be CN followed by 1 or 2, and either 6 or 8 digits then kind code",
			"JP": "JP numbers should be JPYYYY######KK or JP######KK or JPYYYY#####U or JP#####U (all 6-digits)",
			"KR": "KR numbers pre-2004 apps should be KRYYYY#######K (7 digits and A or U kind); post-2004 KR10YYYY#######K or KR20YYYY#######K (7-digits and A or U kind), or KR10########B# or KR20#######Y#",
		},
	}

	for kind, byCountry := range want {
		for cc, msg := range byCountry {
			got := Validate(kind, string(cc)+"?")
			assert.Equal(t, Invalid, got.Status, "%s %s", kind, cc)
			assert.Equal(t, msg, got.Text(), "%s %s", kind, cc)
		}
	}
}

func TestValidate_Unsupported(t *testing.T) {
	tests := []struct {
		id   string
		text string
	}{
		{"FR12345678", "Unsupported country FR"},
		{"DE", "Unsupported country DE"},
		{"us12345678", "Unsupported country us"},
		{"U", "Unsupported country U"},
		{"", "Unsupported country "},
		{"ÄB123", "Unsupported country ÄB"},
	}

	for _, kind := range Kinds {
		for _, tt := range tests {
			t.Run(kind.String()+"/"+tt.id, func(t *testing.T) {
				got := Validate(kind, tt.id)
				assert.Equal(t, Unchecked, got.Status)
				assert.True(t, got.Unsupported())
				assert.Equal(t, tt.text, got.Text())
			})
		}
	}
}

func TestValidator_NotImplemented(t *testing.T) {
	v, err := New(Options{
		ApplicationCountries: []string{"US", "FR"},
		PublicationCountries: []string{"EP"},
	})
	require.NoError(t, err)

	got := v.Validate(Application, "FR1234567")
	assert.Equal(t, Unchecked, got.Status)
	assert.Equal(t, ReasonNotImplemented, got.Reason)
	assert.Equal(t, "Not yet implemented", got.Text())

	// Sets are independent per kind.
	assert.Equal(t, "Unsupported country US", v.Validate(Publication, "US7654321B1").Text())
	assert.Equal(t, "OK", v.Validate(Application, "US12345678").Text())
	assert.Equal(t, []Jurisdiction{"FR", "US"}, v.Supported(Application))
	assert.Equal(t, []Jurisdiction{"EP"}, v.Supported(Publication))
}

func TestNew_RejectsMalformedCodes(t *testing.T) {
	for _, code := range []string{"usa", "u", "", "U1", "us"} {
		t.Run(code, func(t *testing.T) {
			_, err := New(Options{ApplicationCountries: []string{code}})
			assert.Error(t, err)
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	ids := []string{"US12345678", "JP1999123456", "XX", "KR1020051234567B"}
	for _, kind := range Kinds {
		for _, id := range ids {
			assert.Equal(t, Validate(kind, id), Validate(kind, id))
		}
	}
}

func TestRules(t *testing.T) {
	for _, kind := range Kinds {
		rules := Rules(kind)
		require.Len(t, rules, len(DefaultCountries))
		for i := 1; i < len(rules); i++ {
			assert.Less(t, string(rules[i-1].Jurisdiction), string(rules[i].Jurisdiction))
		}
		for _, r := range rules {
			assert.NotEmpty(t, r.Message)
			assert.Equal(t, byte('^'), r.Pattern.String()[0], "pattern must be anchored")
		}
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, Jurisdiction("US"), Prefix("US12345678"))
	assert.Equal(t, Jurisdiction("U"), Prefix("U"))
	assert.Equal(t, Jurisdiction(""), Prefix(""))
	assert.Equal(t, Jurisdiction("ÄB"), Prefix("ÄB123"))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("pub")
	require.NoError(t, err)
	assert.Equal(t, Publication, k)

	k, err = ParseKind("application")
	require.NoError(t, err)
	assert.Equal(t, Application, k)

	_, err = ParseKind("patent")
	assert.Error(t, err)
}

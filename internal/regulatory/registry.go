package regulatory

import (
	"regexp"
)

// Form codes recognised by the parser
const (
	FormRevenueAccount   = "NL-1B"
	FormBusinessReturns  = "NL-35"
	FormBusinessChannels = "NL-36"
	FormClaimsData       = "NL-37"
	FormClaimsAgeing     = "NL-39"
	FormReinsurance      = "NL-33"
	FormGeographical     = "NL-34"
)

// amountPattern captures a digit-grouped figure with an optional two-digit fraction
const amountPattern = `(\d[\d,]+(?:\.\d{2})?)`

// integerPattern captures a digit-grouped whole number
const integerPattern = `(\d[\d,]+)`

// gapPattern separates adjacent table figures. Text dumps often use a no-break
// space between columns, which \s alone does not match.
const gapPattern = `[\s\p{Zs}]+`

// FormPattern identifies a form by its title followed by a defining phrase
type FormPattern struct {
	Code    string
	Pattern *regexp.Regexp
}

// FieldPattern extracts a single named field from a form section
type FieldPattern struct {
	Name     string
	Category FieldCategory
	Pattern  *regexp.Regexp
}

// LabelPattern extracts several numbers that follow a row label
type LabelPattern struct {
	Label   string
	Pattern *regexp.Regexp
}

// Registry is the static table of form, metadata and field patterns.
// It is read-only after construction.
type Registry struct {
	Forms []FormPattern

	InsurerName        *regexp.Regexp
	RegistrationNumber *regexp.Regexp
	ReportingPeriod    *regexp.Regexp

	RevenueAccount  []FieldPattern
	BusinessLines   []LabelPattern
	Channels        []LabelPattern
	ChannelTotal    *regexp.Regexp
	ClaimsMetrics   []FieldPattern
	States          []LabelPattern
	PremiumCeded    *regexp.Regexp
	ReinsurerShares []FieldPattern

	sectionStart map[string]*regexp.Regexp
	nextForm     *regexp.Regexp
}

// Line-of-business rows of NL-35 in table order
var businessLines = []string{
	"Fire",
	"Marine Cargo",
	"Motor OD",
	"Motor TP",
	"Health",
	"Personal Accident",
	"Travel",
	"Public/ Product Liability",
}

// Distribution channels of NL-36 in table order
var distributionChannels = []string{
	"Corporate Agents-Banks",
	"Corporate Agents -Others",
	"Brokers",
	"Direct Business",
}

// States reported from NL-34
var reportedStates = []string{
	"Karnataka",
	"Maharashtra",
	"Delhi",
	"Tamil Nadu",
	"Telangana",
	"Haryana",
	"Gujarat",
}

// NewRegistry compiles the built-in pattern tables
func NewRegistry() *Registry {
	r := &Registry{
		Forms: []FormPattern{
			{Code: FormRevenueAccount, Pattern: regexp.MustCompile(`(?is)FORM NL-1B.*?REVENUE ACCOUNT`)},
			{Code: FormBusinessReturns, Pattern: regexp.MustCompile(`(?is)FORM NL-35.*?QUARTERLY BUSINESS RETURNS`)},
			{Code: FormBusinessChannels, Pattern: regexp.MustCompile(`(?is)FORM NL-36.*?BUSINESS.*?CHANNELS`)},
			{Code: FormClaimsData, Pattern: regexp.MustCompile(`(?is)FORM NL-37.*?CLAIMS DATA`)},
			{Code: FormClaimsAgeing, Pattern: regexp.MustCompile(`(?is)FORM NL-39.*?AGEING OF CLAIMS`)},
			{Code: FormReinsurance, Pattern: regexp.MustCompile(`(?is)FORM NL-33.*?REINSURANCE`)},
			{Code: FormGeographical, Pattern: regexp.MustCompile(`(?is)FORM NL-34.*?GEOGRAPHICAL DISTRIBUTION`)},
		},

		InsurerName:        regexp.MustCompile(`(?i)Name of the Insurer:\s*([A-Za-z\s&]+(?:Limited|Ltd\.?))`),
		RegistrationNumber: regexp.MustCompile(`(?i)Registration\s+(?:No|Number)[.:]*\s*(\d+)`),
		ReportingPeriod:    regexp.MustCompile(`(?i)(?:Date:|ending on)\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),

		// Values are read from the Miscellaneous column of the revenue account
		RevenueAccount: []FieldPattern{
			{Name: "Premiums Earned (Net)", Category: CategoryPremium,
				Pattern: regexp.MustCompile(`(?is)Premiums earned.*?Miscellaneous.*?` + amountPattern)},
			{Name: "Claims Incurred (Net)", Category: CategoryClaims,
				Pattern: regexp.MustCompile(`(?is)Claims Incurred.*?Miscellaneous.*?` + amountPattern)},
			{Name: "Commission (Net)", Category: CategoryExpenses,
				Pattern: regexp.MustCompile(`(?is)Commission.*?Miscellaneous.*?` + amountPattern)},
			{Name: "Operating Expenses", Category: CategoryExpenses,
				Pattern: regexp.MustCompile(`(?is)Operating expenses related to Insurance Business.*?` + amountPattern)},
			{Name: "Profit on Sale of Investments", Category: CategoryInvestment,
				Pattern: regexp.MustCompile(`(?is)Profit.*?sale.*?Investments.*?Miscellaneous.*?` + amountPattern)},
			{Name: "Interest Dividend & Rent", Category: CategoryInvestment,
				Pattern: regexp.MustCompile(`(?is)Interest, Dividend & Rent.*?Miscellaneous.*?` + amountPattern)},
			{Name: "Total Income", Category: CategoryRevenue,
				Pattern: regexp.MustCompile(`(?is)Total \(A\).*?` + amountPattern)},
			{Name: "Total Expenses", Category: CategoryExpenses,
				Pattern: regexp.MustCompile(`(?is)Total \(B\).*?` + amountPattern)},
			{Name: "Operating Profit", Category: CategoryProfitLoss,
				Pattern: regexp.MustCompile(`(?is)Operating Profit.*?` + amountPattern)},
		},

		ChannelTotal: regexp.MustCompile(`(?i)Grand Total.*?` + integerPattern + gapPattern + integerPattern),

		ClaimsMetrics: []FieldPattern{
			{Name: "Claims Outstanding (Beginning)", Category: CategoryClaims,
				Pattern: regexp.MustCompile(`(?i)Claims O/S at the beginning.*?Total.*?` + integerPattern)},
			{Name: "Claims Reported (Count)", Category: CategoryClaims,
				Pattern: regexp.MustCompile(`(?i)Claims reported during the period.*?Total.*?` + integerPattern)},
			{Name: "Claims Settled (Count)", Category: CategoryClaims,
				Pattern: regexp.MustCompile(`(?i)Claims Settled during the period.*?Total.*?` + integerPattern)},
			{Name: "Claims Paid (Amount)", Category: CategoryClaims,
				Pattern: regexp.MustCompile(`(?i)paid during the period.*?Total.*?` + integerPattern)},
			{Name: "Claims Repudiated", Category: CategoryClaims,
				Pattern: regexp.MustCompile(`(?i)Claims Repudiated during the period.*?Total.*?` + integerPattern)},
			{Name: "Claims Outstanding (End)", Category: CategoryClaims,
				Pattern: regexp.MustCompile(`(?i)Claims O/S at End of the period.*?Total.*?` + integerPattern)},
		},

		PremiumCeded: regexp.MustCompile(`(?i)Total.*?` + amountPattern + gapPattern + `[\d,]+` + gapPattern + `\d+`),
		ReinsurerShares: []FieldPattern{
			{Name: "GIC Re Premium Share", Category: CategoryReinsurance,
				Pattern: regexp.MustCompile(`(?i)GIC Re.*?(\d+)%`)},
			{Name: "FRBs Premium Share", Category: CategoryReinsurance,
				Pattern: regexp.MustCompile(`(?i)FRBs.*?(\d+)%`)},
		},

		sectionStart: make(map[string]*regexp.Regexp),
		nextForm:     regexp.MustCompile(`(?i)FORM NL-`),
	}

	for _, line := range businessLines {
		r.BusinessLines = append(r.BusinessLines, LabelPattern{
			Label:   line,
			Pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(line) + `.*?` + integerPattern + gapPattern + integerPattern),
		})
	}
	for _, channel := range distributionChannels {
		r.Channels = append(r.Channels, LabelPattern{
			Label:   channel,
			Pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(channel) + `.*?` + integerPattern + gapPattern + integerPattern),
		})
	}
	for _, state := range reportedStates {
		r.States = append(r.States, LabelPattern{
			Label: state,
			Pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(state) + `.*?` +
				integerPattern + gapPattern + integerPattern + gapPattern + integerPattern),
		})
	}
	for _, form := range r.Forms {
		r.sectionStart[form.Code] = regexp.MustCompile(`(?i)FORM ` + regexp.QuoteMeta(form.Code))
	}

	return r
}

// FormCodes returns the known form codes in identification order
func (r *Registry) FormCodes() []string {
	codes := make([]string, 0, len(r.Forms))
	for _, f := range r.Forms {
		codes = append(codes, f.Code)
	}
	return codes
}

// Section returns the text from the form's opening marker up to the next form
// marker or the end of the document. ok is false when the marker is absent.
func (r *Registry) Section(text, code string) (string, bool) {
	start, found := r.sectionStart[code]
	if !found {
		return "", false
	}

	loc := start.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	end := len(text)
	if next := r.nextForm.FindStringIndex(text[loc[1]:]); next != nil {
		end = loc[1] + next[0]
	}
	return text[loc[0]:end], true
}

package regulatory

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FieldCategory is the closed set of categories a financial field can belong to
type FieldCategory string

const (
	CategoryPremium         FieldCategory = "premium"
	CategoryClaims          FieldCategory = "claims"
	CategoryRevenue         FieldCategory = "revenue"
	CategoryExpenses        FieldCategory = "expenses"
	CategoryInvestment      FieldCategory = "investment"
	CategoryProfitLoss      FieldCategory = "profit_loss"
	CategoryPolicyInfo      FieldCategory = "policy_info"
	CategoryReinsurance     FieldCategory = "reinsurance"
	CategoryBusinessMetrics FieldCategory = "business_metrics"
	CategoryGeographical    FieldCategory = "geographical"
	CategoryChannelWise     FieldCategory = "channel_wise"
)

// AllCategories lists every category in declaration order
var AllCategories = []FieldCategory{
	CategoryPremium,
	CategoryClaims,
	CategoryRevenue,
	CategoryExpenses,
	CategoryInvestment,
	CategoryProfitLoss,
	CategoryPolicyInfo,
	CategoryReinsurance,
	CategoryBusinessMetrics,
	CategoryGeographical,
	CategoryChannelWise,
}

// Valid reports whether c is one of the known categories
func (c FieldCategory) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category's wire value
func (c FieldCategory) String() string {
	return string(c)
}

// UnmarshalJSON rejects category strings outside the closed set
func (c *FieldCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	category := FieldCategory(s)
	if !category.Valid() {
		return fmt.Errorf("unknown field category: %q", s)
	}
	*c = category
	return nil
}

// Units used by the extractors
const (
	UnitLakhs      = "Rs. Lakhs"
	UnitPolicies   = "Number of Policies"
	UnitClaims     = "Number of Claims"
	UnitPercentage = "Percentage"

	PeriodQuarter = "Quarter"
)

// ValueKind distinguishes the three shapes a field value can take
type ValueKind int

const (
	KindAmount ValueKind = iota
	KindCount
	KindText
)

// FieldValue holds a numeric amount, an integral count, or a text value such as "55%"
type FieldValue struct {
	kind   ValueKind
	amount float64
	count  int64
	text   string
}

// Amount returns a decimal field value
func Amount(v float64) FieldValue {
	return FieldValue{kind: KindAmount, amount: v}
}

// Count returns an integral field value
func Count(v int64) FieldValue {
	return FieldValue{kind: KindCount, count: v}
}

// Text returns a string field value
func Text(v string) FieldValue {
	return FieldValue{kind: KindText, text: v}
}

// Kind returns the value's shape
func (v FieldValue) Kind() ValueKind {
	return v.kind
}

// IsNumeric reports whether the value is an amount or a count
func (v FieldValue) IsNumeric() bool {
	return v.kind != KindText
}

// Float returns the numeric value; text values report false
func (v FieldValue) Float() (float64, bool) {
	switch v.kind {
	case KindAmount:
		return v.amount, true
	case KindCount:
		return float64(v.count), true
	default:
		return 0, false
	}
}

// String renders the value the way it appears in JSON, without quoting
func (v FieldValue) String() string {
	switch v.kind {
	case KindAmount:
		return strconv.FormatFloat(v.amount, 'f', -1, 64)
	case KindCount:
		return strconv.FormatInt(v.count, 10)
	default:
		return v.text
	}
}

// MarshalJSON renders amounts and counts as numbers and text as a string
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindAmount:
		return json.Marshal(v.amount)
	case KindCount:
		return json.Marshal(v.count)
	default:
		return json.Marshal(v.text)
	}
}

// UnmarshalJSON accepts a JSON number or string
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case string:
		*v = Text(val)
	case float64:
		if val == float64(int64(val)) && !containsDecimalPoint(data) {
			*v = Count(int64(val))
		} else {
			*v = Amount(val)
		}
	default:
		return fmt.Errorf("unsupported field value: %s", string(data))
	}
	return nil
}

// MarshalYAML mirrors the JSON rendering
func (v FieldValue) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case KindAmount:
		return v.amount, nil
	case KindCount:
		return v.count, nil
	default:
		return v.text, nil
	}
}

func containsDecimalPoint(data []byte) bool {
	for _, b := range data {
		if b == '.' || b == 'e' || b == 'E' {
			return true
		}
	}
	return false
}

// FinancialField is a single datum extracted from a filing. It is not modified after construction.
type FinancialField struct {
	Name       string
	Value      FieldValue
	Category   FieldCategory
	Unit       string
	Period     string
	FormNumber string
	Confidence float64
	Context    string
	Page       int
}

// String mirrors the compact debug form used in logs
func (f FinancialField) String() string {
	if f.Value.Kind() == KindText {
		return fmt.Sprintf("FinancialField(name='%s', value=%q, category=%s)", f.Name, f.Value.String(), f.Category)
	}
	return fmt.Sprintf("FinancialField(name='%s', value=%s, category=%s)", f.Name, f.Value.String(), f.Category)
}

// Metadata holds the document-level identifiers; empty strings mean "not found"
type Metadata struct {
	InsurerName        string `json:"insurer_name,omitempty" yaml:"insurer_name,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty" yaml:"registration_number,omitempty"`
	ReportingPeriod    string `json:"reporting_period,omitempty" yaml:"reporting_period,omitempty"`
}

// IsEmpty reports whether no metadata pattern matched
func (m Metadata) IsEmpty() bool {
	return m.InsurerName == "" && m.RegistrationNumber == "" && m.ReportingPeriod == ""
}

// SummaryStatistics holds the aggregate figures; nil means not computed
type SummaryStatistics struct {
	TotalPremiumLakhs    *float64 `json:"total_premium_lakhs,omitempty" yaml:"total_premium_lakhs,omitempty"`
	TotalClaimsPaidLakhs *float64 `json:"total_claims_paid_lakhs,omitempty" yaml:"total_claims_paid_lakhs,omitempty"`
	LossRatioPercent     *float64 `json:"loss_ratio_percent,omitempty" yaml:"loss_ratio_percent,omitempty"`
}

// IsEmpty reports whether no statistic was computed
func (s SummaryStatistics) IsEmpty() bool {
	return s.TotalPremiumLakhs == nil && s.TotalClaimsPaidLakhs == nil && s.LossRatioPercent == nil
}

// ExtractionResult is the complete output of parsing one filing
type ExtractionResult struct {
	Metadata Metadata
	Summary  SummaryStatistics

	Premiums                 []FinancialField
	Claims                   []FinancialField
	RevenueAccount           []FinancialField
	Expenses                 []FinancialField
	Investments              []FinancialField
	ProfitLoss               []FinancialField
	BusinessDistribution     []FinancialField
	GeographicalDistribution []FinancialField
	ChannelWiseDistribution  []FinancialField
	Reinsurance              []FinancialField
	PolicyMetrics            []FinancialField

	// FormsFound and Diagnostics are not part of the exported document
	FormsFound  []string
	Diagnostics []string
}

// ResultList names one of the category-keyed lists of an ExtractionResult
type ResultList struct {
	Key    string
	Title  string
	Fields []FinancialField
}

// Lists returns every category-keyed list in export order
func (r *ExtractionResult) Lists() []ResultList {
	return []ResultList{
		{Key: "premiums", Title: "PREMIUMS", Fields: r.Premiums},
		{Key: "claims", Title: "CLAIMS DATA", Fields: r.Claims},
		{Key: "revenue_account", Title: "REVENUE ACCOUNT (NL-1B)", Fields: r.RevenueAccount},
		{Key: "expenses", Title: "EXPENSES", Fields: r.Expenses},
		{Key: "investments", Title: "INVESTMENT INCOME", Fields: r.Investments},
		{Key: "profit_loss", Title: "PROFIT & LOSS", Fields: r.ProfitLoss},
		{Key: "business_distribution", Title: "BUSINESS DISTRIBUTION", Fields: r.BusinessDistribution},
		{Key: "geographical_distribution", Title: "GEOGRAPHICAL DISTRIBUTION", Fields: r.GeographicalDistribution},
		{Key: "channel_wise_distribution", Title: "CHANNEL-WISE DISTRIBUTION", Fields: r.ChannelWiseDistribution},
		{Key: "reinsurance", Title: "REINSURANCE", Fields: r.Reinsurance},
		{Key: "policy_metrics", Title: "POLICY METRICS", Fields: r.PolicyMetrics},
	}
}

// List returns the list stored under key, or nil for an unknown key
func (r *ExtractionResult) List(key string) []FinancialField {
	for _, l := range r.Lists() {
		if l.Key == key {
			return l.Fields
		}
	}
	return nil
}

// FieldCount returns the number of extracted fields across all lists
func (r *ExtractionResult) FieldCount() int {
	total := 0
	for _, l := range r.Lists() {
		total += len(l.Fields)
	}
	return total
}

package regulatory

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const reportWidth = 120

// reportOrder is the display order of the report sections
var reportOrder = []string{
	"revenue_account",
	"premiums",
	"claims",
	"expenses",
	"investments",
	"profit_loss",
	"channel_wise_distribution",
	"geographical_distribution",
	"reinsurance",
	"policy_metrics",
}

// FormatNumber renders v with thousands separators and two decimals
func FormatNumber(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", v)
}

// FormatReport renders res as a fixed-width plain text report
func FormatReport(res *ExtractionResult) string {
	rule := strings.Repeat("=", reportWidth)
	thin := strings.Repeat("-", reportWidth)

	out := []string{
		rule,
		"INSURANCE REGULATORY DOCUMENT PARSER - EXTRACTION RESULTS",
		rule,
	}

	if !res.Metadata.IsEmpty() {
		out = append(out, "\nDOCUMENT METADATA", thin)
		for _, kv := range metadataEntries(res.Metadata) {
			out = append(out, fmt.Sprintf("  %-40s : %s", TitleKey(kv.key), kv.value))
		}
	}

	if !res.Summary.IsEmpty() {
		out = append(out, "\nSUMMARY STATISTICS", thin)
		for _, kv := range summaryEntries(res.Summary) {
			out = append(out, fmt.Sprintf("  %-40s : %20s", TitleKey(kv.key), FormatNumber(kv.value)))
		}
	}

	lists := res.Lists()
	for _, key := range reportOrder {
		for _, l := range lists {
			if l.Key != key || len(l.Fields) == 0 {
				continue
			}
			out = append(out, "\n"+l.Title, thin)
			for _, f := range l.Fields {
				out = append(out, formatFieldLine(f))
			}
		}
	}

	out = append(out, "\n"+rule)
	return strings.Join(out, "\n")
}

func formatFieldLine(f FinancialField) string {
	v, numeric := f.Value.Float()
	if !numeric {
		return fmt.Sprintf("  %-60s : %s", f.Name, f.Value.String())
	}
	if f.Unit == "" {
		return fmt.Sprintf("  %-60s : %20s", f.Name, FormatNumber(v))
	}
	return fmt.Sprintf("  %-60s : %20s %s", f.Name, FormatNumber(v), f.Unit)
}

// TitleKey turns a snake_case key such as "total_premium_lakhs" into "Total Premium Lakhs"
func TitleKey(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

type stringEntry struct {
	key   string
	value string
}

func metadataEntries(md Metadata) []stringEntry {
	var entries []stringEntry
	if md.InsurerName != "" {
		entries = append(entries, stringEntry{"insurer_name", md.InsurerName})
	}
	if md.RegistrationNumber != "" {
		entries = append(entries, stringEntry{"registration_number", md.RegistrationNumber})
	}
	if md.ReportingPeriod != "" {
		entries = append(entries, stringEntry{"reporting_period", md.ReportingPeriod})
	}
	return entries
}

type numberEntry struct {
	key   string
	value float64
}

func summaryEntries(s SummaryStatistics) []numberEntry {
	var entries []numberEntry
	if s.TotalPremiumLakhs != nil {
		entries = append(entries, numberEntry{"total_premium_lakhs", *s.TotalPremiumLakhs})
	}
	if s.TotalClaimsPaidLakhs != nil {
		entries = append(entries, numberEntry{"total_claims_paid_lakhs", *s.TotalClaimsPaidLakhs})
	}
	if s.LossRatioPercent != nil {
		entries = append(entries, numberEntry{"loss_ratio_percent", *s.LossRatioPercent})
	}
	return entries
}

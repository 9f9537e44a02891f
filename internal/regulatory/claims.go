package regulatory

import "strings"

// claimCountThreshold is the magnitude above which a claims figure is read as a count.
// It reflects the scale of the filings the patterns were written against.
const claimCountThreshold = 10000

// extractClaims reads the six claims lifecycle metrics from the Total column of NL-37
func (r *Registry) extractClaims(text string, _ map[int]string, diag *diagnostics) []FinancialField {
	section, ok := r.Section(text, FormClaimsData)
	if !ok {
		diag.missf(FormClaimsData, "section marker not found")
		return nil
	}

	var fields []FinancialField
	for _, fp := range r.ClaimsMetrics {
		m := fp.Pattern.FindStringSubmatch(section)
		if m == nil {
			diag.missf(FormClaimsData, "no match for %q", fp.Name)
			continue
		}
		value, ok := ParseAmount(m[1])
		if !ok {
			diag.missf(FormClaimsData, "unparseable value %q for %q", m[1], fp.Name)
			continue
		}

		fields = append(fields, newField(fp.Name, Amount(value), fp.Category, claimsUnit(fp.Name, value), "", FormClaimsData))
	}

	return fields
}

// claimsUnit decides between a claim count and an amount in lakhs
func claimsUnit(name string, value float64) string {
	if strings.Contains(name, "Count") || strings.Contains(name, "Repudiated") || value > claimCountThreshold {
		return UnitClaims
	}
	return UnitLakhs
}

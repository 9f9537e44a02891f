package regulatory

// extractReinsurance reads the ceded premium and the reinsurer shares of NL-33.
// Shares are kept as text with a trailing percent sign.
func (r *Registry) extractReinsurance(text string, _ map[int]string, diag *diagnostics) []FinancialField {
	section, ok := r.Section(text, FormReinsurance)
	if !ok {
		diag.missf(FormReinsurance, "section marker not found")
		return nil
	}

	var fields []FinancialField
	if m := r.PremiumCeded.FindStringSubmatch(section); m == nil {
		diag.missf(FormReinsurance, "no match for %q", "Total Premium Ceded")
	} else if value, ok := ParseAmount(m[1]); !ok {
		diag.missf(FormReinsurance, "unparseable value %q for %q", m[1], "Total Premium Ceded")
	} else {
		fields = append(fields, newField("Total Premium Ceded", Amount(value),
			CategoryReinsurance, UnitLakhs, "", FormReinsurance))
	}

	for _, fp := range r.ReinsurerShares {
		m := fp.Pattern.FindStringSubmatch(section)
		if m == nil {
			diag.missf(FormReinsurance, "no match for %q", fp.Name)
			continue
		}
		fields = append(fields, newField(fp.Name, Text(m[1]+"%"), fp.Category, UnitPercentage, "", FormReinsurance))
	}

	return fields
}

package regulatory

// extractRevenueAccount reads the nine revenue account lines of NL-1B
func (r *Registry) extractRevenueAccount(text string, _ map[int]string, diag *diagnostics) []FinancialField {
	section, ok := r.Section(text, FormRevenueAccount)
	if !ok {
		diag.missf(FormRevenueAccount, "section marker not found")
		return nil
	}

	var fields []FinancialField
	for _, fp := range r.RevenueAccount {
		m := fp.Pattern.FindStringSubmatch(section)
		if m == nil {
			diag.missf(FormRevenueAccount, "no match for %q", fp.Name)
			continue
		}
		value, ok := ParseAmount(m[1])
		if !ok {
			diag.missf(FormRevenueAccount, "unparseable value %q for %q", m[1], fp.Name)
			continue
		}

		fields = append(fields, newField(fp.Name, Amount(value), fp.Category, UnitLakhs, PeriodQuarter, FormRevenueAccount))
	}

	return fields
}

func newField(name string, value FieldValue, category FieldCategory, unit, period, form string) FinancialField {
	return FinancialField{
		Name:       name,
		Value:      value,
		Category:   category,
		Unit:       unit,
		Period:     period,
		FormNumber: form,
		Confidence: 1.0,
	}
}

package regulatory

// businessReturns holds the two lists produced from NL-35
type businessReturns struct {
	premiums []FinancialField
	policies []FinancialField
}

// extractBusinessReturns reads (premium, policy count) pairs per line of business.
// Lines with no premium are skipped.
func (r *Registry) extractBusinessReturns(text string, _ map[int]string, diag *diagnostics) businessReturns {
	var out businessReturns

	section, ok := r.Section(text, FormBusinessReturns)
	if !ok {
		diag.missf(FormBusinessReturns, "section marker not found")
		return out
	}

	for _, line := range r.BusinessLines {
		m := line.Pattern.FindStringSubmatch(section)
		if m == nil {
			diag.missf(FormBusinessReturns, "no row for %q", line.Label)
			continue
		}

		premium, ok := ParseAmount(m[1])
		if !ok {
			diag.missf(FormBusinessReturns, "unparseable premium %q for %q", m[1], line.Label)
			continue
		}
		policies, ok := ParseAmount(m[2])
		if !ok {
			diag.missf(FormBusinessReturns, "unparseable policy count %q for %q", m[2], line.Label)
			continue
		}
		if premium <= 0 {
			continue
		}
		count, ok := asCount(policies)
		if !ok {
			diag.missf(FormBusinessReturns, "policy count %q out of range for %q", m[2], line.Label)
			continue
		}

		out.premiums = append(out.premiums, newField(line.Label+" Premium", Amount(premium),
			CategoryPremium, UnitLakhs, PeriodQuarter, FormBusinessReturns))
		out.policies = append(out.policies, newField(line.Label+" Policies", Count(count),
			CategoryBusinessMetrics, UnitPolicies, PeriodQuarter, FormBusinessReturns))
	}

	return out
}

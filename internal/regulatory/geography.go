package regulatory

// materialPremium is the minimum state premium, in lakhs, reported from NL-34
const materialPremium = 500

// extractGeographical reads the total premium (third figure) for each reported state
func (r *Registry) extractGeographical(text string, _ map[int]string, diag *diagnostics) []FinancialField {
	section, ok := r.Section(text, FormGeographical)
	if !ok {
		diag.missf(FormGeographical, "section marker not found")
		return nil
	}

	var fields []FinancialField
	for _, state := range r.States {
		m := state.Pattern.FindStringSubmatch(section)
		if m == nil {
			diag.missf(FormGeographical, "no row for %q", state.Label)
			continue
		}
		premium, ok := ParseAmount(m[3])
		if !ok {
			diag.missf(FormGeographical, "unparseable premium %q for %q", m[3], state.Label)
			continue
		}
		if premium <= materialPremium {
			continue
		}

		fields = append(fields, newField(state.Label+" - Total Premium", Amount(premium),
			CategoryGeographical, UnitLakhs, "", FormGeographical))
	}

	return fields
}

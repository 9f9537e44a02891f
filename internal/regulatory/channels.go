package regulatory

// extractChannels reads (policy count, premium) pairs per distribution channel
// and the grand total row of NL-36. Channel rows are emitted regardless of size.
func (r *Registry) extractChannels(text string, _ map[int]string, diag *diagnostics) []FinancialField {
	section, ok := r.Section(text, FormBusinessChannels)
	if !ok {
		diag.missf(FormBusinessChannels, "section marker not found")
		return nil
	}

	var fields []FinancialField
	for _, channel := range r.Channels {
		m := channel.Pattern.FindStringSubmatch(section)
		if m == nil {
			diag.missf(FormBusinessChannels, "no row for %q", channel.Label)
			continue
		}
		policies, premium, ok := parsePair(m[1], m[2])
		if !ok {
			diag.missf(FormBusinessChannels, "unparseable row %q %q for %q", m[1], m[2], channel.Label)
			continue
		}
		count, ok := asCount(policies)
		if !ok {
			diag.missf(FormBusinessChannels, "policy count %q out of range for %q", m[1], channel.Label)
			continue
		}

		fields = append(fields,
			newField(channel.Label+" - Policies", Count(count), CategoryChannelWise, UnitPolicies, "", FormBusinessChannels),
			newField(channel.Label+" - Premium", Amount(premium), CategoryChannelWise, UnitLakhs, "", FormBusinessChannels),
		)
	}

	m := r.ChannelTotal.FindStringSubmatch(section)
	if m == nil {
		diag.missf(FormBusinessChannels, "no grand total row")
		return fields
	}
	policies, premium, ok := parsePair(m[1], m[2])
	if !ok {
		diag.missf(FormBusinessChannels, "unparseable grand total %q %q", m[1], m[2])
		return fields
	}
	count, ok := asCount(policies)
	if !ok {
		diag.missf(FormBusinessChannels, "grand total policy count %q out of range", m[1])
		return fields
	}

	return append(fields,
		newField("Total Policies (All Channels)", Count(count), CategoryBusinessMetrics, UnitPolicies, "", FormBusinessChannels),
		newField("Total Premium (All Channels)", Amount(premium), CategoryPremium, UnitLakhs, "", FormBusinessChannels),
	)
}

func parsePair(a, b string) (float64, float64, bool) {
	first, ok := ParseAmount(a)
	if !ok {
		return 0, 0, false
	}
	second, ok := ParseAmount(b)
	if !ok {
		return 0, 0, false
	}
	return first, second, true
}

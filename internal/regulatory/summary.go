package regulatory

import (
	"math"
	"strings"
)

// Summarize computes the summary statistics of a result.
//
// Total premium is the sum of the premiums list. Total claims paid is the value of
// the last claims field whose name contains "Paid"; it is not accumulated. The
// loss ratio is only reported when both totals are strictly positive.
func Summarize(res *ExtractionResult) SummaryStatistics {
	var summary SummaryStatistics

	if len(res.Premiums) > 0 {
		total := 0.0
		for _, f := range res.Premiums {
			if v, ok := f.Value.Float(); ok {
				total += v
			}
		}
		summary.TotalPremiumLakhs = &total
	}

	for _, f := range res.Claims {
		if !strings.Contains(f.Name, "Paid") {
			continue
		}
		if v, ok := f.Value.Float(); ok {
			paid := v
			summary.TotalClaimsPaidLakhs = &paid
		}
	}

	if summary.TotalPremiumLakhs != nil && summary.TotalClaimsPaidLakhs != nil &&
		*summary.TotalPremiumLakhs > 0 && *summary.TotalClaimsPaidLakhs > 0 {
		ratio := round2(*summary.TotalClaimsPaidLakhs / *summary.TotalPremiumLakhs * 100)
		summary.LossRatioPercent = &ratio
	}

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package regulatory

import "strings"

// ExtractMetadata runs the insurer, registration and reporting-period searches over text
func (r *Registry) ExtractMetadata(text string) Metadata {
	var md Metadata

	if m := r.InsurerName.FindStringSubmatch(text); m != nil {
		md.InsurerName = strings.TrimSpace(m[1])
	}
	if m := r.RegistrationNumber.FindStringSubmatch(text); m != nil {
		md.RegistrationNumber = m[1]
	}
	if m := r.ReportingPeriod.FindStringSubmatch(text); m != nil {
		md.ReportingPeriod = m[1]
	}

	return md
}

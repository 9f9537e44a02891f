package regulatory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_IdentifyForms(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "revenue account",
			text: "FORM NL-1B-RA\nREVENUE ACCOUNT FOR THE PERIOD",
			want: []string{FormRevenueAccount},
		},
		{
			name: "business returns is case insensitive",
			text: "form nl-35\nquarterly business returns across lob",
			want: []string{FormBusinessReturns},
		},
		{
			name: "channels across lines",
			text: "FORM NL-36\nBUSINESS ACQUISITION\nTHROUGH DIFFERENT CHANNELS",
			want: []string{FormBusinessChannels},
		},
		{
			name: "claims ageing",
			text: "FORM NL-39 AGEING OF CLAIMS",
			want: []string{FormClaimsAgeing},
		},
		{
			name: "marker without defining phrase",
			text: "FORM NL-37 summary of settlements",
			want: []string{},
		},
		{
			name: "phrase without marker",
			text: "GEOGRAPHICAL DISTRIBUTION OF BUSINESS",
			want: []string{},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IdentifyForms(tt.text))
		})
	}
}

func TestRegistry_IdentifyForms_RegistryOrder(t *testing.T) {
	r := NewRegistry()

	got := r.IdentifyForms(sampleDocument().Text)

	assert.Equal(t, []string{
		FormRevenueAccount,
		FormBusinessReturns,
		FormBusinessChannels,
		FormClaimsData,
		FormClaimsAgeing,
		FormReinsurance,
		FormGeographical,
	}, got)
	assert.Equal(t, r.FormCodes(), got)
}

func TestRegistry_ExtractMetadata(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		text string
		want Metadata
	}{
		{
			name: "all fields",
			text: sampleDocument().Text,
			want: Metadata{
				InsurerName:        "Acme General Insurance Company Limited",
				RegistrationNumber: "190",
				ReportingPeriod:    "31/12/2024",
			},
		},
		{
			name: "ltd suffix and registration number label",
			text: "Name of the Insurer:  Star & Allied Health Ltd.\nRegistration Number: 129\nDate: 15-06-24",
			want: Metadata{
				InsurerName:        "Star & Allied Health Ltd.",
				RegistrationNumber: "129",
				ReportingPeriod:    "15-06-24",
			},
		},
		{
			name: "nothing matches",
			text: "Quarterly public disclosures",
			want: Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ExtractMetadata(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == Metadata{}, got.IsEmpty())
		})
	}
}

func TestRegistry_Section(t *testing.T) {
	r := NewRegistry()
	text := sampleDocument().Text

	section, ok := r.Section(text, FormBusinessChannels)
	assert.True(t, ok)
	assert.Contains(t, section, "Grand Total 9,050 27,350")
	assert.NotContains(t, section, "FORM NL-37")
	assert.NotContains(t, section, "Motor OD")

	last, ok := r.Section(text, FormClaimsAgeing)
	assert.True(t, ok)
	assert.Contains(t, last, "No ageing data")

	_, ok = r.Section("no forms here", FormReinsurance)
	assert.False(t, ok)

	_, ok = r.Section(text, "NL-99")
	assert.False(t, ok)
}

package regulatory

// samplePages is a condensed filing with one page per form
var samplePages = []string{
	`FORM NL-1B-RA
Name of the Insurer: Acme General Insurance Company Limited
Registration No. 190
REVENUE ACCOUNT FOR THE PERIOD ending on 31/12/2024
Premiums earned (Net) Miscellaneous 12,345.67
Profit on sale/redemption of Investments Miscellaneous 210.00
Interest, Dividend & Rent - Gross Miscellaneous 1,450.25
Total (A) 14,005.92
Claims Incurred (Net) Miscellaneous 9,876.50
Commission (Net) Miscellaneous 1,020.00
Operating expenses related to Insurance Business 2,500.75
Total (B) 13,397.25
Operating Profit/(Loss) 608.67
`,
	`FORM NL-35 QUARTERLY BUSINESS RETURNS ACROSS LINE OF BUSINESS
Fire 12,500 340
Marine Cargo 3,200 45
Motor OD 8,750 1,200
Motor TP 6,400 1,150
Health 9,900 2,300
Personal Accident 450 120
Travel 0 150
Public/ Product Liability 75 12
`,
	`FORM NL-36 BUSINESS ACQUISITION THROUGH DIFFERENT CHANNELS
Corporate Agents-Banks 1,250 4,500
Corporate Agents -Others 300 800
Brokers 2,100 9,750
Direct Business 5,400 12,300
Grand Total 9,050 27,350
`,
	`FORM NL-37 CLAIMS DATA FOR NON-LIFE
Claims O/S at the beginning of the period Total 1,520
Claims reported during the period Total 18,400
Claims Settled during the period Total 16,900
Claims paid during the period Total 9,000
Claims Repudiated during the period Total 450
Claims O/S at End of the period Total 2,570
`,
	`FORM NL-34 GEOGRAPHICAL DISTRIBUTION OF BUSINESS
Karnataka 1,200 800 2,000
Maharashtra 3,000 2,500 5,500
Delhi 200 150 350
Tamil Nadu 900 700 1,600
`,
	`FORM NL-33 REINSURANCE RISK CONCENTRATION
GIC Re share of premium ceded 55%
FRBs share 20%
Total 4,500.50 12 3
`,
	`FORM NL-39 AGEING OF CLAIMS
No ageing data reported for the quarter
`,
}

func sampleDocument() *Document {
	return NewDocument("sample.pdf", samplePages)
}

func fieldByName(fields []FinancialField, name string) (FinancialField, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return FinancialField{}, false
}

func fieldNames(fields []FinancialField) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

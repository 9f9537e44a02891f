package descriptions

import "sort"

// Tool descriptions shown to MCP clients, with examples and common workflows

const (
	ParseFilingDescription = `Parse an IRDAI public disclosure filing (non-life insurer quarterly PDF) into structured financial data.

**When to use:** Need premiums, claims, revenue account figures, channel or state distribution, or reinsurance shares from an insurer's NL-series disclosure.

**Why it's useful:** Identifies the NL forms present in the filing, extracts every recognised field with its category, unit and source form, and computes total premium, total claims paid and the loss ratio.

**Examples:**
• Quarterly review: "Parse q3-nl-forms.pdf and report the loss ratio"
• Data export: "Parse filing.pdf with format=json and load it into the analysis notebook"
• Channel mix: "Which distribution channel wrote the most policies in q1-disclosures.pdf?"

**Formats:**
• text (default): human-readable report grouped by category with the key figures
• json: document_metadata, summary_statistics and one array per category
• yaml: the same document as json, in YAML

**Common workflows:**
1. Discovery: irdai_list_filings → irdai_parse_filing on each result
2. Triage: irdai_identify_forms → irdai_parse_filing only when the needed forms are present

**Best practices:** Amounts are in Rs. Lakhs unless the unit says otherwise. Fields whose pattern did not match are omitted rather than reported as zero.`

	IdentifyFormsDescription = `List which IRDAI NL forms a filing contains without extracting any figures.

**When to use:** Checking whether a filing carries the forms you need (for example NL-37 claims data) before parsing it in full.

**Why it's useful:** Fast check that also reports the insurer name, registration number, reporting period and page count.

**Recognised forms:**
• NL-1B Revenue Account
• NL-33 Reinsurance Risk Concentration
• NL-34 Geographical Distribution of Business
• NL-35 Quarterly Business Returns
• NL-36 Business Through Channels
• NL-37 Claims Data
• NL-39 Ageing of Claims

**Examples:**
• "Does annual-disclosure.pdf contain NL-34?"
• "Which forms are in every filing under /data/irdai?"

**Best practices:** A form counts as present only when both its number and its title appear in the text.`

	ListFilingsDescription = `Find filing PDFs in the configured directory.

**When to use:** Discovering which filings are available before parsing them.

**Why it's useful:** Lists every PDF (non-recursive) with size and modification time; the optional query does fuzzy matching on file names.

**Examples:**
• List everything: no arguments
• Narrow down: query="q2 2024" matches "NL_Forms_Q2_2024.pdf"
• Other folder: directory="/data/irdai/archive" (must lie inside the configured directory)

**Best practices:** Paths returned here can be passed unchanged to irdai_parse_filing and irdai_identify_forms.`

	ServerInfoDescription = `Report the parser's configuration and state.

**When to use:** Checking which directory is served, the file size limit, whether structural validation is on, and how many parsed filings are cached.

**Examples:**
• "Which directory does the IRDAI parser read from?"
• "What forms can this server recognise?"`
)

// ToolDescriptions maps tool names to their descriptions
var ToolDescriptions = map[string]string{
	"irdai_parse_filing":   ParseFilingDescription,
	"irdai_identify_forms": IdentifyFormsDescription,
	"irdai_list_filings":   ListFilingsDescription,
	"irdai_server_info":    ServerInfoDescription,
}

// GetToolDescription returns the description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns every tool name in sorted order
func GetAllToolNames() []string {
	names := make([]string, 0, len(ToolDescriptions))
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

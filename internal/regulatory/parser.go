// Package regulatory extracts financial fields from IRDAI public disclosure
// filings (the NL series of forms) given the plain text of the filing.
package regulatory

import (
	"fmt"
	"strings"
)

// Document is the text of a filing as produced by a text extraction backend
type Document struct {
	Path  string
	Text  string
	Pages map[int]string
}

// NewDocument assembles a document from page texts in page order. Each page is
// preceded by a "--- Page n ---" marker line.
func NewDocument(path string, pages []string) *Document {
	var builder strings.Builder
	pageMap := make(map[int]string, len(pages))

	for i, text := range pages {
		pageNum := i + 1
		pageMap[pageNum] = text
		builder.WriteString(PageMarker(pageNum))
		builder.WriteString(text)
	}

	return &Document{
		Path:  path,
		Text:  builder.String(),
		Pages: pageMap,
	}
}

// PageMarker returns the separator written before page n of the full text
func PageMarker(n int) string {
	return fmt.Sprintf("\n--- Page %d ---\n", n)
}

// PageCount returns the number of pages in the document
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// TextSource turns a file into a Document
type TextSource interface {
	ExtractText(path string) (*Document, error)
}

// Parser runs form identification and field extraction. It holds only the
// compiled pattern registry and can be shared between goroutines.
type Parser struct {
	registry *Registry
}

// NewParser creates a parser with the built-in registry
func NewParser() *Parser {
	return &Parser{registry: NewRegistry()}
}

// Registry returns the parser's pattern registry
func (p *Parser) Registry() *Registry {
	return p.registry
}

// IdentifyForms returns the known form codes present in text
func (p *Parser) IdentifyForms(text string) []string {
	return p.registry.IdentifyForms(text)
}

// ParseFile extracts the text of path through src and parses it.
// Errors come only from src; extraction misses never fail the parse.
func (p *Parser) ParseFile(src TextSource, path string) (*ExtractionResult, error) {
	doc, err := src.ExtractText(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(doc), nil
}

// ParseText parses a full text blob with no page map
func (p *Parser) ParseText(text string) *ExtractionResult {
	return p.Parse(&Document{Text: text})
}

// Parse runs every extractor whose form is present in doc
func (p *Parser) Parse(doc *Document) *ExtractionResult {
	r := p.registry
	text := doc.Text
	diag := &diagnostics{}

	res := &ExtractionResult{
		Metadata:   r.ExtractMetadata(text),
		FormsFound: r.IdentifyForms(text),
	}

	if containsForm(res.FormsFound, FormRevenueAccount) {
		res.RevenueAccount = r.extractRevenueAccount(text, doc.Pages, diag)
	}
	if containsForm(res.FormsFound, FormBusinessReturns) {
		business := r.extractBusinessReturns(text, doc.Pages, diag)
		res.Premiums = append(res.Premiums, business.premiums...)
		res.PolicyMetrics = append(res.PolicyMetrics, business.policies...)
	}
	if containsForm(res.FormsFound, FormBusinessChannels) {
		res.ChannelWiseDistribution = r.extractChannels(text, doc.Pages, diag)
	}
	if containsForm(res.FormsFound, FormClaimsData) {
		res.Claims = append(res.Claims, r.extractClaims(text, doc.Pages, diag)...)
	}
	if containsForm(res.FormsFound, FormGeographical) {
		res.GeographicalDistribution = r.extractGeographical(text, doc.Pages, diag)
	}
	if containsForm(res.FormsFound, FormReinsurance) {
		res.Reinsurance = r.extractReinsurance(text, doc.Pages, diag)
	}

	res.Summary = Summarize(res)
	res.Diagnostics = diag.list()

	return res
}

package regulatory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an export encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Extension returns the file extension written for the format
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// ParseFormat resolves a format name
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s (must be json or yaml)", name)
	}
}

// FieldRecord is the exported shape of a FinancialField
type FieldRecord struct {
	Name       string        `json:"name" yaml:"name"`
	Value      FieldValue    `json:"value" yaml:"value"`
	Category   FieldCategory `json:"category" yaml:"category"`
	Unit       string        `json:"unit" yaml:"unit"`
	FormNumber string        `json:"form_number" yaml:"form_number"`
}

// ExportDocument is the exported shape of an ExtractionResult. Field order
// is the key order of the written document.
type ExportDocument struct {
	DocumentMetadata         Metadata          `json:"document_metadata" yaml:"document_metadata"`
	SummaryStatistics        SummaryStatistics `json:"summary_statistics" yaml:"summary_statistics"`
	Premiums                 []FieldRecord     `json:"premiums" yaml:"premiums"`
	Claims                   []FieldRecord     `json:"claims" yaml:"claims"`
	RevenueAccount           []FieldRecord     `json:"revenue_account" yaml:"revenue_account"`
	Expenses                 []FieldRecord     `json:"expenses" yaml:"expenses"`
	Investments              []FieldRecord     `json:"investments" yaml:"investments"`
	ProfitLoss               []FieldRecord     `json:"profit_loss" yaml:"profit_loss"`
	BusinessDistribution     []FieldRecord     `json:"business_distribution" yaml:"business_distribution"`
	GeographicalDistribution []FieldRecord     `json:"geographical_distribution" yaml:"geographical_distribution"`
	ChannelWiseDistribution  []FieldRecord     `json:"channel_wise_distribution" yaml:"channel_wise_distribution"`
	Reinsurance              []FieldRecord     `json:"reinsurance" yaml:"reinsurance"`
	PolicyMetrics            []FieldRecord     `json:"policy_metrics" yaml:"policy_metrics"`
}

// NewExportDocument converts res into its exported shape. Empty lists are
// written as empty arrays.
func NewExportDocument(res *ExtractionResult) ExportDocument {
	return ExportDocument{
		DocumentMetadata:         res.Metadata,
		SummaryStatistics:        res.Summary,
		Premiums:                 records(res.Premiums),
		Claims:                   records(res.Claims),
		RevenueAccount:           records(res.RevenueAccount),
		Expenses:                 records(res.Expenses),
		Investments:              records(res.Investments),
		ProfitLoss:               records(res.ProfitLoss),
		BusinessDistribution:     records(res.BusinessDistribution),
		GeographicalDistribution: records(res.GeographicalDistribution),
		ChannelWiseDistribution:  records(res.ChannelWiseDistribution),
		Reinsurance:              records(res.Reinsurance),
		PolicyMetrics:            records(res.PolicyMetrics),
	}
}

func records(fields []FinancialField) []FieldRecord {
	out := make([]FieldRecord, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldRecord{
			Name:       f.Name,
			Value:      f.Value,
			Category:   f.Category,
			Unit:       f.Unit,
			FormNumber: f.FormNumber,
		})
	}
	return out
}

// ExportJSON writes res as indented UTF-8 JSON without escaping non-ASCII text
func ExportJSON(w io.Writer, res *ExtractionResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewExportDocument(res)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// ExportYAML writes res as YAML with the same shape as the JSON export
func ExportYAML(w io.Writer, res *ExtractionResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewExportDocument(res)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}
	return nil
}

// Export writes res to w in the given format
func Export(w io.Writer, res *ExtractionResult, format Format) error {
	switch format {
	case FormatYAML:
		return ExportYAML(w, res)
	default:
		return ExportJSON(w, res)
	}
}

// WriteFile exports res to path, replacing any existing file
func WriteFile(path string, res *ExtractionResult, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return Export(f, res, format)
}

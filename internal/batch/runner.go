// Package batch parses every filing in a directory once, printing a report
// per filing and writing the exports next to each PDF.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/a3tai/irdai-parser/internal/pdf"
	"github.com/a3tai/irdai-parser/internal/regulatory"
)

const ruleWidth = 120

// ErrNoFilings is returned when the directory holds no PDF files
var ErrNoFilings = errors.New("no PDF filings found")

// highlightLists are the categories counted in the per-filing highlights
var highlightLists = []string{
	"premiums",
	"claims",
	"revenue_account",
	"expenses",
	"investments",
	"channel_wise_distribution",
}

// Summary counts the outcome of a run
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	// Exported lists every file written, in processing order
	Exported []string
}

// Runner drives one pass over the filing directory
type Runner struct {
	service *pdf.Service
	formats []regulatory.Format
	out     io.Writer
	logger  *zap.Logger
}

// NewRunner creates a runner writing its report to out. formats names the
// export encodings written beside each filing.
func NewRunner(service *pdf.Service, formats []string, out io.Writer, logger *zap.Logger) (*Runner, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if out == nil {
		return nil, errors.New("output writer cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	parsed := make([]regulatory.Format, 0, len(formats))
	for _, name := range formats {
		f, err := regulatory.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, f)
	}

	return &Runner{
		service: service,
		formats: parsed,
		out:     out,
		logger:  logger,
	}, nil
}

// Run parses every filing in the service's directory. A failing filing is
// reported and skipped; Run fails only when no filing exists, every filing
// failed, or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	rule := strings.Repeat("=", ruleWidth)
	r.printf("%s\nINSURANCE REGULATORY DOCUMENT PARSER\n%s\n\n", rule, rule)

	listing, err := r.service.ListFilings(pdf.ListFilingsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list filings: %w", err)
	}
	if listing.TotalCount == 0 {
		r.printf("[ERROR] No PDF files found in %s\n", listing.Directory)
		r.printf("   Please place insurance regulatory PDF documents in: %s\n", listing.Directory)
		return nil, fmt.Errorf("%w in %s", ErrNoFilings, listing.Directory)
	}

	r.printf("Found %d PDF document(s) to parse:\n", listing.TotalCount)

	summary := &Summary{Total: listing.TotalCount}
	for _, file := range listing.Files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		exported, err := r.processFiling(file)
		if err != nil {
			summary.Failed++
			r.logger.Error("filing failed", zap.String("path", file.Path), zap.Error(err))
			r.printf("\n[ERROR] Error processing %s:\n   %v\n", file.Name, err)
			continue
		}
		summary.Succeeded++
		summary.Exported = append(summary.Exported, exported...)
	}

	r.printf("\n%s\nPARSING COMPLETE\n%s\n\n", rule, rule)
	r.printf("[*] Parsed %d of %d document(s)\n", summary.Succeeded, summary.Total)
	if len(summary.Exported) > 0 {
		r.printf("[*] Output files have been generated in %s\n", listing.Directory)
		for _, f := range r.formats {
			r.printf("   - *%s files contain structured data in %s format\n", f.Extension(), strings.ToUpper(string(f)))
		}
	}
	r.printf("\n")

	if summary.Failed == summary.Total {
		return summary, fmt.Errorf("all %d filing(s) failed to parse", summary.Total)
	}
	return summary, nil
}

// processFiling parses one filing, prints its report and highlights, and
// writes the exports. It returns the paths written.
func (r *Runner) processFiling(file pdf.FileInfo) ([]string, error) {
	rule := strings.Repeat("=", ruleWidth)
	r.printf("\n%s\nProcessing: %s\n%s\n\n", rule, file.Name, rule)
	r.printf("[*] Extracting data from PDF...\n")

	parsed, err := r.service.ParseFiling(pdf.ParseFilingRequest{Path: file.Path})
	if err != nil {
		return nil, err
	}
	res := parsed.Result

	r.printf("\n%s\n", regulatory.FormatReport(res))

	exported := make([]string, 0, len(r.formats))
	for _, format := range r.formats {
		target := exportPath(file.Path, format)
		if err := regulatory.WriteFile(target, res, format); err != nil {
			return exported, err
		}
		exported = append(exported, target)
		r.printf("\n[*] Results exported to: %s\n", filepath.Base(target))
	}

	r.printHighlights(res)

	r.printf("\n%s\n[SUCCESS] Successfully parsed %s\n%s\n", rule, file.Name, rule)
	return exported, nil
}

func (r *Runner) printHighlights(res *regulatory.ExtractionResult) {
	rule := strings.Repeat("=", ruleWidth)
	r.printf("\n%s\nKEY FINANCIAL HIGHLIGHTS\n%s\n", rule, rule)

	md := res.Metadata
	if !md.IsEmpty() {
		r.printf("\n[*] Insurer: %s\n", orNA(md.InsurerName))
		r.printf("[*] Registration No: %s\n", orNA(md.RegistrationNumber))
		r.printf("[*] Period: %s\n", orNA(md.ReportingPeriod))
	}

	sum := res.Summary
	if !sum.IsEmpty() {
		r.printf("\n[*] Total Premium: Rs. %s Lakhs\n", regulatory.FormatNumber(valueOrZero(sum.TotalPremiumLakhs)))
		r.printf("[*] Total Claims Paid: Rs. %s Lakhs\n", regulatory.FormatNumber(valueOrZero(sum.TotalClaimsPaidLakhs)))
		if sum.LossRatioPercent != nil {
			r.printf("[*] Loss Ratio: %s%%\n", strconv.FormatFloat(*sum.LossRatioPercent, 'f', -1, 64))
		}
	}

	r.printf("\n[*] Fields Extracted by Category:\n")
	for _, key := range highlightLists {
		if count := len(res.List(key)); count > 0 {
			r.printf("   - %s: %d fields\n", regulatory.TitleKey(key), count)
		}
	}
}

func (r *Runner) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

// exportPath replaces the filing's extension with the format's
func exportPath(path string, format regulatory.Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + format.Extension()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

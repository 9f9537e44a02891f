// Package pdftest builds small text-only PDF filings for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// WriteTextPDF writes a minimal PDF with one Helvetica text line per entry of
// each page. Every line is its own text object so extraction yields one line each.
func WriteTextPDF(t testing.TB, path string, pages ...[]string) {
	t.Helper()

	var objects []string
	pageRefs := make([]string, 0, len(pages))

	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")
	objects = append(objects, "") // pages tree, filled in below
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for _, lines := range pages {
		var content strings.Builder
		for i, line := range lines {
			fmt.Fprintf(&content, "BT /F1 10 Tf 40 %d Td (%s) Tj ET\n", 760-12*i, escapePDFString(line))
		}

		pageNum := len(objects) + 1
		contentNum := pageNum + 1
		pageRefs = append(pageRefs, fmt.Sprintf("%d 0 R", pageNum))
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentNum))
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()))
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(pageRefs, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write test PDF: %v", err)
	}
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)
	return r.Replace(s)
}

// FilingPages is a two-page filing with business returns and claims data.
// It parses to a total premium of 22400, claims paid of 4500 and a loss
// ratio of 20.09.
var FilingPages = [][]string{
	{
		"FORM NL-35 QUARTERLY BUSINESS RETURNS ACROSS LINE OF BUSINESS",
		"Name of the Insurer: Sample General Insurance Company Limited",
		"Registration No. 144",
		"Fire 12,500 340",
		"Health 9,900 2,300",
	},
	{
		"FORM NL-37 CLAIMS DATA FOR NON-LIFE",
		"Claims paid during the period Total 4,500",
	},
}

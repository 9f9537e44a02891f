package pdf

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	pdferrors "github.com/a3tai/irdai-parser/internal/pdf/errors"
	"github.com/a3tai/irdai-parser/internal/regulatory"
)

// Reader turns a filing on disk into page texts using ledongthuc/pdf
type Reader struct {
	maxFileSize int64
	logger      *zap.Logger
}

// NewReader creates a new PDF reader with the specified constraints
func NewReader(maxFileSize int64, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// ExtractText reads every page of the PDF at path. Pages without a content
// dictionary yield empty text; any other page failure aborts the read.
func (r *Reader) ExtractText(path string) (doc *regulatory.Document, err error) {
	if _, err := statPDF(path, r.maxFileSize); err != nil {
		return nil, err
	}

	// ledongthuc/pdf panics on some malformed inputs
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = pdferrors.Wrap(pdferrors.ErrorTypeInvalidPDF, "PDF library panic",
				fmt.Errorf("%v", rec)).WithFile(path)
		}
	}()

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, pdferrors.Wrap(pdferrors.ErrorTypeInvalidPDF, "failed to open PDF", err).WithFile(path)
	}
	defer f.Close()

	numPages := pdfReader.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			return nil, pdferrors.Wrap(pdferrors.ErrorTypeExtractionFailed, "failed to extract page text", err).
				WithFile(path).
				WithPage(pageNum)
		}
		pages = append(pages, content)
	}

	if !hasText(pages) {
		return nil, pdferrors.New(pdferrors.ErrorTypeNoTextContent,
			"no text content could be extracted from PDF").WithFile(path)
	}
	doc = regulatory.NewDocument(path, pages)

	r.logger.Debug("extracted filing text",
		zap.String("path", path),
		zap.Int("pages", numPages),
		zap.Int("chars", len(doc.Text)))

	return doc, nil
}

func hasText(pages []string) bool {
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}

func isPDFName(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}

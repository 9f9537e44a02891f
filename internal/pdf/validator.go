package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	pdferrors "github.com/a3tai/irdai-parser/internal/pdf/errors"
)

// Validator performs a structural pre-flight check of a filing with pdfcpu
// before text extraction is attempted
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a new PDF validator with the specified constraints
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{
		maxFileSize: maxFileSize,
	}
}

// ValidateFile checks that path is a readable PDF and returns its page count
func (v *Validator) ValidateFile(path string) (pageCount int, err error) {
	if err := v.ValidateFileInfo(path); err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, pdferrors.Wrap(pdferrors.ErrorTypeInvalidPath, "cannot open file", err).WithFile(path)
	}
	defer f.Close()

	defer func() {
		if rec := recover(); rec != nil {
			pageCount = 0
			err = pdferrors.Wrap(pdferrors.ErrorTypeInvalidPDF, "pdfcpu panic", fmt.Errorf("%v", rec)).WithFile(path)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return 0, pdferrors.Wrap(pdferrors.ErrorTypeInvalidPDF, "failed to read PDF structure", err).WithFile(path)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, pdferrors.Wrap(pdferrors.ErrorTypeInvalidPDF, "failed to determine page count", err).WithFile(path)
	}

	return ctx.PageCount, nil
}

// IsValidPDF performs a quick check to see if a file is a valid PDF
func (v *Validator) IsValidPDF(path string) bool {
	_, err := v.ValidateFile(path)
	return err == nil
}

// ValidateFileInfo performs basic validation on a path without opening the PDF
func (v *Validator) ValidateFileInfo(path string) error {
	_, err := statPDF(path, v.maxFileSize)
	return err
}

// statPDF checks existence, type, extension and size of a candidate filing
func statPDF(path string, maxFileSize int64) (os.FileInfo, error) {
	if path == "" {
		return nil, pdferrors.New(pdferrors.ErrorTypeInvalidPath, "path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, pdferrors.Wrap(pdferrors.ErrorTypeFileNotFound, "file does not exist", err).WithFile(path)
	}
	if err != nil {
		return nil, pdferrors.Wrap(pdferrors.ErrorTypeInvalidPath, "cannot access file", err).WithFile(path)
	}

	if fileInfo.IsDir() {
		return nil, pdferrors.New(pdferrors.ErrorTypeInvalidPath, "path is a directory, not a file").WithFile(path)
	}
	if !isPDFName(path) {
		return nil, pdferrors.New(pdferrors.ErrorTypeNotAPDF, "file is not a PDF").WithFile(path)
	}
	if fileInfo.Size() == 0 {
		return nil, pdferrors.New(pdferrors.ErrorTypeEmptyFile, "file is empty").WithFile(path)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, pdferrors.New(pdferrors.ErrorTypeFileTooLarge,
			fmt.Sprintf("file too large: %d bytes (max: %d bytes)", fileInfo.Size(), maxFileSize)).WithFile(path)
	}

	return fileInfo, nil
}

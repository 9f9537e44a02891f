package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	pdferrors "github.com/a3tai/irdai-parser/internal/pdf/errors"
	"github.com/a3tai/irdai-parser/internal/pdf/pdftest"
)

func TestValidator_ValidateFile(t *testing.T) {
	tempDir := t.TempDir()

	filingPath := filepath.Join(tempDir, "filing.pdf")
	pdftest.WriteTextPDF(t, filingPath, pdftest.FilingPages...)

	corruptPath := filepath.Join(tempDir, "corrupt.pdf")
	if err := os.WriteFile(corruptPath, []byte(strings.Repeat("garbage ", 64)), 0644); err != nil {
		t.Fatalf("Failed to create corrupt file: %v", err)
	}

	validator := NewValidator(1024 * 1024)

	pages, err := validator.ValidateFile(filingPath)
	if err != nil {
		t.Fatalf("ValidateFile() unexpected error = %v", err)
	}
	if pages != 2 {
		t.Errorf("ValidateFile() pages = %d, want 2", pages)
	}
	if !validator.IsValidPDF(filingPath) {
		t.Error("IsValidPDF() = false for a well-formed filing")
	}

	_, err = validator.ValidateFile(corruptPath)
	if got := pdferrors.TypeOf(err); got != pdferrors.ErrorTypeInvalidPDF {
		t.Errorf("ValidateFile(corrupt) error type = %v, want %v", got, pdferrors.ErrorTypeInvalidPDF)
	}
	if validator.IsValidPDF(corruptPath) {
		t.Error("IsValidPDF() = true for a corrupt file")
	}
}

func TestValidator_ValidateFileInfo(t *testing.T) {
	tempDir := t.TempDir()

	okPath := filepath.Join(tempDir, "ok.PDF")
	if err := os.WriteFile(okPath, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	bigPath := filepath.Join(tempDir, "big.pdf")
	if err := os.WriteFile(bigPath, make([]byte, 200), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	validator := NewValidator(100)

	tests := []struct {
		name     string
		path     string
		wantErr  bool
		wantType pdferrors.ErrorType
	}{
		{name: "upper-case extension", path: okPath},
		{name: "too large", path: bigPath, wantErr: true, wantType: pdferrors.ErrorTypeFileTooLarge},
		{name: "missing", path: filepath.Join(tempDir, "none.pdf"), wantErr: true, wantType: pdferrors.ErrorTypeFileNotFound},
		{name: "directory", path: tempDir, wantErr: true, wantType: pdferrors.ErrorTypeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateFileInfo(tt.path)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("ValidateFileInfo() unexpected error = %v", err)
				}
				return
			}
			if got := pdferrors.TypeOf(err); got != tt.wantType {
				t.Errorf("ValidateFileInfo() error type = %v, want %v", got, tt.wantType)
			}
		})
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the category of a structural failure while reading a filing
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeInvalidPath
	ErrorTypeFileNotFound
	ErrorTypeNotAPDF
	ErrorTypeFileTooLarge
	ErrorTypeEmptyFile
	ErrorTypeInvalidPDF
	ErrorTypeNoTextContent
	ErrorTypeExtractionFailed
	ErrorTypeSecurityRestriction
)

// String returns a string representation of the ErrorType
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeInvalidPath:
		return "INVALID_PATH"
	case ErrorTypeFileNotFound:
		return "FILE_NOT_FOUND"
	case ErrorTypeNotAPDF:
		return "NOT_A_PDF"
	case ErrorTypeFileTooLarge:
		return "FILE_TOO_LARGE"
	case ErrorTypeEmptyFile:
		return "EMPTY_FILE"
	case ErrorTypeInvalidPDF:
		return "INVALID_PDF"
	case ErrorTypeNoTextContent:
		return "NO_TEXT_CONTENT"
	case ErrorTypeExtractionFailed:
		return "EXTRACTION_FAILED"
	case ErrorTypeSecurityRestriction:
		return "SECURITY_RESTRICTION"
	default:
		return "UNKNOWN"
	}
}

// ParseError is a fatal failure to turn a file into text. Extraction misses
// inside a readable filing are never reported this way.
type ParseError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	FilePath   string    `json:"file_path,omitempty"`
	PageNumber int       `json:"page_number,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
	if e.FilePath != "" {
		msg += ": " + e.FilePath
	}
	if e.PageNumber > 0 {
		msg += fmt.Sprintf(" (page %d)", e.PageNumber)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// New creates a ParseError without an underlying cause
func New(errorType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap creates a ParseError carrying err as its cause
func Wrap(errorType ErrorType, message string, err error) *ParseError {
	return &ParseError{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// WithFile adds file path information to an existing ParseError
func (e *ParseError) WithFile(filePath string) *ParseError {
	e.FilePath = filePath
	return e
}

// WithPage adds page number information to an existing ParseError
func (e *ParseError) WithPage(pageNumber int) *ParseError {
	e.PageNumber = pageNumber
	return e
}

// TypeOf returns the ErrorType of the first ParseError in err's chain
func TypeOf(err error) ErrorType {
	var pe *ParseError
	if stderrors.As(err, &pe) {
		return pe.Type
	}
	return ErrorTypeUnknown
}

// IsType reports whether err's chain contains a ParseError of the given type
func IsType(err error, errorType ErrorType) bool {
	return err != nil && TypeOf(err) == errorType
}

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paiphyo4f20/Subtitles/pkg/log"
)

type ErrorType int

const (
	ErrFileNotFound ErrorType = iota
	ErrFileRead
	ErrFileWrite
	ErrMalformedDocument
	ErrCorruptStore
	ErrProvider
	ErrConfig
	ErrValidation
	ErrUnknown
)

// TransError is the application error type: a taxonomy tag plus optional
// key-value context and a wrapped cause.
type TransError struct {
	Type    ErrorType
	Message string
	Context map[string]any
	Cause   error
}

func NewError(errorType ErrorType, message string) *TransError {
	return &TransError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
	}
}

func NewErrorWithCause(errorType ErrorType, message string, cause error) *TransError {
	return &TransError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
		Cause:   cause,
	}
}

func (e *TransError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s] %s", e.Type.String(), e.Message))

	if len(e.Context) > 0 {
		var ctxParts []string
		for k, v := range e.Context {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("context: %s", strings.Join(ctxParts, ", ")))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %v", e.Cause))
	}

	return strings.Join(parts, " | ")
}

func (e *TransError) Unwrap() error {
	return e.Cause
}

func (e *TransError) WithContext(key string, value any) *TransError {
	e.Context[key] = value
	return e
}

func (t ErrorType) String() string {
	switch t {
	case ErrFileNotFound:
		return "FileNotFound"
	case ErrFileRead:
		return "FileRead"
	case ErrFileWrite:
		return "FileWrite"
	case ErrMalformedDocument:
		return "MalformedDocument"
	case ErrCorruptStore:
		return "CorruptStore"
	case ErrProvider:
		return "Provider"
	case ErrConfig:
		return "Config"
	case ErrValidation:
		return "Validation"
	default:
		return "Unknown"
	}
}

// Handle logs the error together with recovery advice. Returns true when
// the error carried a known type.
func Handle(err error) bool {
	var transErr *TransError
	if !errors.As(err, &transErr) {
		log.Error("Unknown Error: %v", err)
		return false
	}

	log.Error("Error Detail: %v\n advice: %s", err, GetAdvice(transErr))
	return true
}

// GetAdvice returns error handling advice for the given error.
func GetAdvice(err *TransError) string {
	switch err.Type {
	case ErrFileNotFound:
		return "Please check that the file path is correct and ensure the file exists with read permissions"
	case ErrFileRead:
		return "Please check file permissions to ensure read access and verify the file is not corrupted"
	case ErrFileWrite:
		return "Please ensure the output directory exists and has write permissions"
	case ErrMalformedDocument:
		return "Please verify the subtitle file is valid SRT: every block needs an integer sequence id line"
	case ErrCorruptStore:
		return "The translation memory file could not be decoded; fix or remove it and retry"
	case ErrProvider:
		return "Please check the API key, network connectivity, and the provider service status"
	case ErrConfig:
		return "Please check that configuration files or environment variables are set correctly"
	case ErrValidation:
		return "Please verify input parameters are correct; file paths cannot be empty"
	default:
		return "Please review detailed error information and check relevant configuration and files"
	}
}

func IsErrorType(err error, errorType ErrorType) bool {
	var transErr *TransError
	if errors.As(err, &transErr) {
		return transErr.Type == errorType
	}
	return false
}

func WrapError(err error, errorType ErrorType, message string) *TransError {
	return NewErrorWithCause(errorType, message, err)
}

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransErrorFormatting(t *testing.T) {
	cause := fmt.Errorf("open failed")
	err := NewErrorWithCause(ErrFileRead, "failed to read subtitle file", cause).
		WithContext("path", "/tmp/input.srt")

	msg := err.Error()
	assert.Contains(t, msg, "[FileRead]")
	assert.Contains(t, msg, "failed to read subtitle file")
	assert.Contains(t, msg, "path=/tmp/input.srt")
	assert.Contains(t, msg, "open failed")
	assert.ErrorIs(t, err, cause)
}

func TestIsErrorType(t *testing.T) {
	err := NewError(ErrCorruptStore, "bad store")
	assert.True(t, IsErrorType(err, ErrCorruptStore))
	assert.False(t, IsErrorType(err, ErrProvider))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorType(wrapped, ErrCorruptStore))

	assert.False(t, IsErrorType(errors.New("plain"), ErrCorruptStore))
}

func TestGetAdviceCoversTaxonomy(t *testing.T) {
	types := []ErrorType{
		ErrFileNotFound, ErrFileRead, ErrFileWrite,
		ErrMalformedDocument, ErrCorruptStore, ErrProvider,
		ErrConfig, ErrValidation, ErrUnknown,
	}
	for _, errorType := range types {
		advice := GetAdvice(NewError(errorType, "x"))
		assert.NotEmpty(t, advice, errorType.String())
	}
}

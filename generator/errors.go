package generator

import (
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
)

// EmptyDescriptionError is returned when the website description is blank.
type EmptyDescriptionError struct{}

func (*EmptyDescriptionError) Error() string {
	return "please provide a description of your website"
}

// InvalidPageTypeError names the rejected value and the valid set.
type InvalidPageTypeError struct {
	Value string
}

func (e *InvalidPageTypeError) Error() string {
	return fmt.Sprintf("invalid page type %q; please select from: %s", e.Value, pageTypeList())
}

// InvalidWordCountError is returned when the requested word count is out of range.
type InvalidWordCountError struct {
	WordCount int
}

func (e *InvalidWordCountError) Error() string {
	return fmt.Sprintf("word count %d out of range [%d, %d]", e.WordCount, MinWordCount, MaxWordCount)
}

// GenerationServiceError wraps a failed backend call.
type GenerationServiceError struct {
	Model      string
	StatusCode int
	Err        error
}

func (e *GenerationServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation failed (model %s, status %d): %v", e.Model, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("generation failed (model %s): %v", e.Model, e.Err)
}

func (e *GenerationServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(model string, err error) *GenerationServiceError {
	se := &GenerationServiceError{Model: model, Err: err}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		se.StatusCode = apiErr.StatusCode
	}
	return se
}

// WordLimitParseError is returned when a prompt carries no "around N words" phrase.
type WordLimitParseError struct {
	Prompt string
}

func (e *WordLimitParseError) Error() string {
	p := e.Prompt
	if r := []rune(p); len(r) > 60 {
		p = string(r[:60]) + "..."
	}
	return fmt.Sprintf("no \"around N words\" phrase in prompt %q", p)
}

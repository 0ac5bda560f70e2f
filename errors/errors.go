package errors

import (
	"fmt"
	"strings"
)

var (
	ErrUnknownModel            = fmt.Errorf("unknown model")
	ErrUnknownTemplate         = fmt.Errorf("unknown template")
	ErrMissingTemplateVariable = fmt.Errorf("missing template variable")
	ErrAdapterPanic            = fmt.Errorf("adapter panic")
	ErrNoPatterns              = fmt.Errorf("no patterns have been found")
	ErrNotText                 = fmt.Errorf("input is not a text file")
	ErrEmptyPrompt             = fmt.Errorf("prompt is empty")
	ErrInvalidRequest          = fmt.Errorf("invalid request")
)

// MissingVariableError names the first required variable that has no value.
type MissingVariableError struct {
	Variable string
	Required []string
}

func (e MissingVariableError) Error() string {
	return fmt.Sprintf("필수 변수 '%s'가 누락되었습니다. 필요한 변수: [%s]",
		e.Variable, strings.Join(e.Required, ", "))
}

func (e MissingVariableError) Unwrap() error {
	return ErrMissingTemplateVariable
}

package services

import (
	"fmt"
	"prompt-lab/domain"
	"prompt-lab/errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	defaultMaxTokens = 4096
	tokensPerWord    = 1.3
	tokenHeadroom    = 0.8
	minPromptLength  = 10
)

var validate = validator.New()

type validationRequest struct {
	Prompt string `validate:"required"`
}

// ValidatePrompt runs cheap heuristics on a finished prompt.
// Models that are not registered are checked against a default token limit.
func (o *Optimizer) ValidatePrompt(prompt, modelID string) (domain.Validation, error) {
	prompt = strings.TrimSpace(prompt)
	if err := validate.Struct(validationRequest{Prompt: prompt}); err != nil {
		return domain.Validation{}, errors.ErrEmptyPrompt
	}

	maxTokens := defaultMaxTokens
	if info, err := o.ModelInfo(modelID); err == nil && info.MaxTokens > 0 {
		maxTokens = info.MaxTokens
	}
	words := len(strings.Fields(prompt))
	estimated := float64(words) * tokensPerWord

	v := domain.Validation{
		IsValid:         true,
		Length:          utf8.RuneCountInString(prompt),
		WordCount:       words,
		EstimatedTokens: int(estimated),
		Warnings:        []string{},
		Suggestions:     []string{},
	}
	if estimated > float64(maxTokens)*tokenHeadroom {
		v.Warnings = append(v.Warnings,
			fmt.Sprintf("프롬프트가 너무 길 수 있습니다. (추정: %d 토큰, 한계: %d)", int(estimated), maxTokens))
	}
	if v.Length < minPromptLength {
		v.Warnings = append(v.Warnings, "프롬프트가 너무 짧습니다.")
	}
	if !strings.ContainsAny(prompt, ".!?") {
		v.Suggestions = append(v.Suggestions, "명확한 문장 구조를 위해 구두점을 추가하세요.")
	}
	if isUpper(prompt) {
		v.Suggestions = append(v.Suggestions, "모든 대문자보다는 일반적인 대소문자 사용을 권장합니다.")
	}
	return v, nil
}

// isUpper reports whether the text has cased letters and none of them is lower case.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

package services

import (
	"prompt-lab/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimizer_ValidatePrompt(t *testing.T) {
	req := require.New(t)
	optimizer := newTestOptimizer(nil)

	tests := []struct {
		description     string
		prompt          string
		modelID         string
		wantWarnings    int
		wantSuggestions int
	}{
		{"Should accept a well formed prompt", "Write a blog post about Go generics.", "gpt-4o", 0, 0},
		{"Should warn about a short prompt without punctuation", "hi", "gpt-4o", 1, 1},
		{"Should suggest lower case for shouting", "WRITE A BLOG POST NOW!", "gpt-4o", 0, 1},
		{"Should warn when the token estimate is too high", strings.Repeat("word ", 700) + ".", "suno", 1, 0},
		{"Should use the default limit for unknown models", strings.Repeat("word ", 700) + ".", "nope", 0, 0},
	}

	for _, tt := range tests {
		v, err := optimizer.ValidatePrompt(tt.prompt, tt.modelID)
		req.NoError(err, tt.description)
		req.True(v.IsValid)
		req.Len(v.Warnings, tt.wantWarnings, tt.description)
		req.Len(v.Suggestions, tt.wantSuggestions, tt.description)
	}
}

func TestOptimizer_ValidatePrompt_Counts(t *testing.T) {
	req := require.New(t)
	optimizer := newTestOptimizer(nil)

	v, err := optimizer.ValidatePrompt("  한국어 프롬프트 입니다.  ", "gpt-4o")

	req.NoError(err)
	req.Equal(13, v.Length)
	req.Equal(3, v.WordCount)
	req.Equal(3, v.EstimatedTokens)
}

func TestOptimizer_ValidatePrompt_Empty(t *testing.T) {
	req := require.New(t)

	_, err := newTestOptimizer(nil).ValidatePrompt("   ", "gpt-4o")

	req.ErrorIs(err, errors.ErrEmptyPrompt)
}

func TestIsUpper(t *testing.T) {
	req := require.New(t)

	req.True(isUpper("ABC 123"))
	req.False(isUpper("Abc"))
	req.False(isUpper("한국어"))
	req.False(isUpper("123"))
}

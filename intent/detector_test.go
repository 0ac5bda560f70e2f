package intent

import (
	"prompt-lab/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDetector_Constant(t *testing.T) {
	req := require.New(t)
	d := DefaultDetector{}

	record := d.Detect("anything at all")

	req.Equal(domain.Intent{Label: "generate_content", Confidence: 0.8}, record.Primary)
	req.False(record.IsCreative)
	req.False(record.IsTechnical)
	req.Equal("medium", record.Urgency)
	req.Equal(record, d.Detect(""))
}

func TestKeywordDetector_Detect(t *testing.T) {
	req := require.New(t)
	d := NewKeywordDetector()

	tests := []struct {
		description string
		input       string
		label       string
		check       func(r domain.IntentRecord)
	}{
		{
			description: "Generation keyword",
			input:       "Write a short poem about the sea",
			label:       "generation",
			check:       func(r domain.IntentRecord) { req.True(r.IsCreative) },
		},
		{
			description: "Summarization keyword",
			input:       "tl;dr of this report please",
			label:       "summarization",
		},
		{
			description: "Explanation with a phrase",
			input:       "How does a hash map work?",
			label:       "explanation",
		},
		{
			description: "Korean translation request",
			input:       "이 코드 주석을 영어로 번역",
			label:       "translation",
			check:       func(r domain.IntentRecord) { req.True(r.IsCoding) },
		},
		{
			description: "Urgent math problem",
			input:       "solve this equation asap",
			label:       "unknown",
			check: func(r domain.IntentRecord) {
				req.True(r.IsMathProblem)
				req.Equal("high", r.Urgency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			record := d.Detect(tt.input)
			req.Equal(tt.label, record.Primary.Label)
			req.Equal(keywordConfidence, record.Primary.Confidence)
			if tt.check != nil {
				tt.check(record)
			}
		})
	}
}

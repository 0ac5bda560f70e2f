package matcher

import (
	"prompt-lab/domain"
	"prompt-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

var fruits = []Rule{
	{Label: "citrus", Keywords: []string{"orange", "lemon", "lime", "yuzu"}},
	{Label: "berry", Keywords: []string{"strawberry", "blueberry"}},
	{Label: "korean", Keywords: []string{"사과", "배"}},
}

func TestMatcher_Score(t *testing.T) {
	req := require.New(t)
	m, err := New(fruits)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected []domain.ScoredLabel
	}{
		{
			name:     "Score is normalized by keyword list length",
			input:    "An ORANGE and a lemon",
			expected: []domain.ScoredLabel{{Label: "citrus", Score: 0.5}},
		},
		{
			name:  "Labels are sorted by descending score",
			input: "blueberry with lime",
			expected: []domain.ScoredLabel{
				{Label: "berry", Score: 0.5},
				{Label: "citrus", Score: 0.25},
			},
		},
		{
			name:  "Ties keep the declaration order",
			input: "strawberry, lemon, lime and 사과",
			expected: []domain.ScoredLabel{
				{Label: "citrus", Score: 0.5},
				{Label: "berry", Score: 0.5},
				{Label: "korean", Score: 0.5},
			},
		},
		{
			name:     "Repeated keywords count once",
			input:    "lime lime lime",
			expected: []domain.ScoredLabel{{Label: "citrus", Score: 0.25}},
		},
		{
			name:     "Substring matches count like a contains check",
			input:    "배추를 샀다",
			expected: []domain.ScoredLabel{{Label: "korean", Score: 0.5}},
		},
		{
			name:     "Nothing found",
			input:    "a plain sentence",
			expected: nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, m.Score(tt.input), "input=%s", tt.input)
		})
	}
}

func TestMatcher_ScoreOrDefault_Never_Empty(t *testing.T) {
	req := require.New(t)
	m := MustNew(fruits)

	req.Equal([]domain.ScoredLabel{{Label: "general", Score: 1.0}}, m.ScoreOrDefault("nothing here", "general"))
	req.Equal("general", m.Best("", "general"))
	req.Equal("berry", m.Best("strawberry", "general"))
}

func TestMatcher_First_Uses_Declaration_Order(t *testing.T) {
	req := require.New(t)
	m := MustNew(fruits)

	// Given a text that hits the last rule harder than the first one
	label, ok := m.First("사과 배 yuzu")

	// Then the first declared rule wins
	req.True(ok)
	req.Equal("citrus", label)

	_, ok = m.First("nothing")
	req.False(ok)
}

func TestMatcher_Decomposed_Hangul(t *testing.T) {
	req := require.New(t)
	m := MustNew(fruits)

	// Given an input typed in decomposed jamo form
	input := norm.NFD.String("사과")
	req.NotEqual("사과", input)

	// Then it still matches the composed keyword
	req.Equal("korean", m.Best(input, "none"))
}

func TestMatcher_Counts(t *testing.T) {
	req := require.New(t)
	m := MustNew(fruits)

	req.Equal(map[string]int{"citrus": 2, "korean": 1}, m.Counts("lemon lime 배"))
}

func TestMatcher_CornerCases(t *testing.T) {
	req := require.New(t)

	// Given only empty keywords
	_, err := New([]Rule{{Label: "empty", Keywords: []string{"", ""}}})
	req.ErrorIs(err, errors.ErrNoPatterns)

	// Given duplicated keywords across rules
	m, err := New([]Rule{
		{Label: "a", Keywords: []string{"shared", "only-a"}},
		{Label: "b", Keywords: []string{"shared", ""}},
	})
	req.NoError(err)

	// Then both rules receive the hit
	req.Equal([]domain.ScoredLabel{
		{Label: "a", Score: 0.5},
		{Label: "b", Score: 0.5},
	}, m.Score("a shared word"))
	req.Equal([]string{"a", "b"}, m.Labels())
}

func BenchmarkMatcher_Score(b *testing.B) {
	m := MustNew(fruits)
	input := "A long request mentioning lemon, blueberry and 사과 among many other words"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Score(input)
	}
}

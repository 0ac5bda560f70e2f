package analyzer

import (
	"log/slog"
	"prompt-lab/domain"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestAnalyzer_Default_Labels_When_No_Signal(t *testing.T) {
	req := require.New(t)
	a := newTestAnalyzer()

	// Given a text without any task or style keyword
	record := a.Analyze("hello world", "gpt-4o")

	// Then exactly one default entry with a full score is returned
	req.Equal([]domain.ScoredLabel{{Label: domain.DefaultTaskType, Score: 1.0}}, record.TaskTypes)
	req.Equal([]domain.ScoredLabel{{Label: domain.DefaultStyle, Score: 1.0}}, record.Styles)
}

func TestAnalyzer_Empty_Input_Degrades(t *testing.T) {
	req := require.New(t)
	a := newTestAnalyzer()

	record := a.Analyze("", "")

	req.Equal(domain.TextCategory, record.ModelCategory)
	req.Empty(record.Keywords)
	req.Empty(record.Entities)
	req.Equal(domain.LowComplexity, record.Complexity)
	req.Equal(domain.DefaultTaskType, record.TopTask())
	req.Equal(domain.DefaultStyle, record.TopStyle())
	req.Empty(record.Constraints.Include)
	req.Empty(record.Constraints.Exclude)
	req.Empty(record.Language)
}

func TestAnalyzer_Complexity_Word_Count_Thresholds(t *testing.T) {
	req := require.New(t)
	a := newTestAnalyzer()

	tests := []struct {
		words    int
		expected domain.Complexity
	}{
		{1, domain.LowComplexity},
		{20, domain.LowComplexity},
		{21, domain.MediumComplexity},
		{50, domain.MediumComplexity},
		{51, domain.HighComplexity},
		{120, domain.HighComplexity},
	}

	for _, tt := range tests {
		text := strings.TrimSpace(strings.Repeat("word ", tt.words))
		req.Equal(tt.expected, a.Analyze(text, "gpt-4o").Complexity, "words=%d", tt.words)
	}
}

func TestAnalyzer_Complexity_Indicators_Win_Over_Word_Count(t *testing.T) {
	req := require.New(t)
	a := newTestAnalyzer()

	long := strings.Repeat("word ", 60)

	req.Equal(domain.LowComplexity, a.Analyze(long+"간단하게", "gpt-4o").Complexity)
	req.Equal(domain.HighComplexity, a.Analyze("상세하고 복잡한 설명", "gpt-4o").Complexity)
	// Equal hit counts resolve to the first tier
	req.Equal(domain.HighComplexity, a.Analyze("고급 내용을 쉬운 말로", "gpt-4o").Complexity)
}

func TestAnalyzer_Task_And_Style_Ranking(t *testing.T) {
	req := require.New(t)
	a := newTestAnalyzer()

	record := a.Analyze("창의적이고 예술적인 광고 카피와 슬로건 작성", "gpt-4o")

	req.Equal("marketing", record.TopTask())
	req.InDelta(0.5, record.TaskTypes[0].Score, 1e-9)
	req.True(record.HasTask("creative_writing"))
	req.Equal("creative", record.TopStyle())
	req.InDelta(0.5, record.Styles[0].Score, 1e-9)
}

func TestAnalyzer_Portrait_Request(t *testing.T) {
	req := require.New(t)
	a := newTestAnalyzer()

	record := a.Analyze("웃는 여성의 초상화", "imagen-3")

	req.Equal("visual_creation", record.TopTask())
	req.Equal(domain.ImageCategory, record.ModelCategory)
	req.Equal("ko", record.Language)
}

func TestExtractKeywords(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Sorted by frequency then first seen",
			input:    "Go 코드 코드 작성 작성 작성 그 a",
			expected: []string{"작성", "코드", "go"},
		},
		{
			name:     "Case folded",
			input:    "Paris paris PARIS london",
			expected: []string{"paris", "london"},
		},
		{
			name:     "Top ten only",
			input:    "aa bb cc dd ee ff gg hh ii jj kk ll",
			expected: []string{"aa", "bb", "cc", "dd", "ee", "ff", "gg", "hh", "ii", "jj"},
		},
		{
			name:     "Only stop words",
			input:    "그 이 저 것",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, ExtractKeywords(tt.input))
		})
	}
}

func TestExtractEntities(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{"Alice", "Bob", "Paris"}, ExtractEntities("Alice met Bob and Alice in Paris. NASA is ignored"))
	req.Empty(ExtractEntities("서울에서 만난 사람"))
}

func TestExtractStructureHints(t *testing.T) {
	req := require.New(t)

	hints := ExtractStructureHints("3개 섹션으로 된 목록, 500 words 정도, 짧은 글로 10 문장")

	req.Equal("list", hints.Format)
	req.Equal([]string{"Section 1", "Section 2", "Section 3"}, hints.Sections)
	req.Equal("short", hints.Length)
	req.NotNil(hints.WordCount)
	req.Equal(500, *hints.WordCount)
	req.NotNil(hints.SentenceCount)
	req.Equal(10, *hints.SentenceCount)

	capped := ExtractStructureHints("chapter 40")
	req.Len(capped.Sections, maxSections)

	none := ExtractStructureHints("hello")
	req.Empty(none.Format)
	req.Empty(none.Sections)
	req.Empty(none.Length)
	req.Nil(none.WordCount)
	req.Nil(none.SentenceCount)
}

func TestExtractConstraints(t *testing.T) {
	req := require.New(t)

	c := ExtractConstraints("반드시 가격 정보. Avoid jargon! 전문가 대상으로 30분 이내, 포함하지 마세요: 광고 문구.")

	req.Equal([]string{"가격 정보"}, c.Include)
	req.Equal([]string{"광고 문구", "jargon"}, c.Exclude)
	req.Equal("expert", c.Audience)
	req.Equal("30 minutes", c.Time)
	req.Empty(c.Tone)

	c = ExtractConstraints("friendly tone for kids, 2 hours")
	req.Equal("friendly", c.Tone)
	req.Equal("children", c.Audience)
	req.Equal("2 hours", c.Time)
}

func TestModelCategory(t *testing.T) {
	req := require.New(t)

	tests := map[string]domain.Category{
		"gpt-4o":         domain.TextCategory,
		"gemini-2.5-pro": domain.TextCategory,
		"dalle-3":        domain.ImageCategory,
		"imagen-3":       domain.ImageCategory,
		"midjourney-v6":  domain.ImageCategory,
		"sora":           domain.VideoCategory,
		"google-veo-3":   domain.VideoCategory,
		"pika":           domain.VideoCategory,
		"suno":           domain.MusicCategory,
		"does-not-exist": domain.TextCategory,
	}
	for id, expected := range tests {
		req.Equal(expected, ModelCategory(id), id)
	}
}

//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=../mocks/mock_detector.go -package=mocks
package intent

import (
	"prompt-lab/domain"
	"prompt-lab/matcher"
)

// IDetector builds the secondary intent signal handed to adapters.
type IDetector interface {
	Detect(text string) domain.IntentRecord
}

// DefaultDetector returns the same constant record for every input.
type DefaultDetector struct{}

func (DefaultDetector) Detect(string) domain.IntentRecord {
	return domain.NewDefaultIntent()
}

const keywordConfidence = 0.1

var intentRules = []matcher.Rule{
	{Label: "generation", Keywords: []string{"generate", "create", "write", "생성", "만들어", "작성"}},
	{Label: "summarization", Keywords: []string{"summarize", "tl;dr", "요약"}},
	{Label: "explanation", Keywords: []string{"explain", "what is", "how does", "설명"}},
	{Label: "translation", Keywords: []string{"translate", "번역"}},
}

var flagRules = []matcher.Rule{
	{Label: "creative", Keywords: []string{"story", "poem", "novel", "소설", "시나리오", "창작", "이야기"}},
	{Label: "technical", Keywords: []string{"technical", "architecture", "기술", "설계", "문서"}},
	{Label: "coding", Keywords: []string{"code", "function", "program", "코드", "함수", "프로그램"}},
	{Label: "math", Keywords: []string{"math", "equation", "proof", "수학", "방정식", "증명"}},
	{Label: "urgent", Keywords: []string{"urgent", "asap", "긴급", "급히", "빨리"}},
}

// KeywordDetector is a coarse keyword classifier. Its confidence stays low on purpose
// so adapters keep treating the record as a hint.
type KeywordDetector struct {
	intents *matcher.Matcher
	flags   *matcher.Matcher
}

func NewKeywordDetector() *KeywordDetector {
	return &KeywordDetector{
		intents: matcher.MustNew(intentRules),
		flags:   matcher.MustNew(flagRules),
	}
}

func (d *KeywordDetector) Detect(text string) domain.IntentRecord {
	label, ok := d.intents.First(text)
	if !ok {
		label = "unknown"
	}
	flags := d.flags.Counts(text)
	record := domain.IntentRecord{
		Primary:       domain.Intent{Label: label, Confidence: keywordConfidence},
		IsCreative:    flags["creative"] > 0,
		IsTechnical:   flags["technical"] > 0,
		IsCoding:      flags["coding"] > 0,
		IsMathProblem: flags["math"] > 0,
		Urgency:       domain.DefaultUrgency,
	}
	if flags["urgent"] > 0 {
		record.Urgency = "high"
	}
	return record
}

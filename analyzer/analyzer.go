//go:generate go run go.uber.org/mock/mockgen -source=analyzer.go -destination=../mocks/mock_analyzer.go -package=mocks
package analyzer

import (
	"fmt"
	"log/slog"
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

type IAnalyzer interface {
	Analyze(text, modelID string) domain.FeatureRecord
}

// Analyzer derives a FeatureRecord from raw text with rule tables only.
// It holds no per-request state, one instance serves every caller.
type Analyzer struct {
	log        *slog.Logger
	tasks      *matcher.Matcher
	styles     *matcher.Matcher
	complexity *matcher.Matcher
}

func NewAnalyzer(log *slog.Logger) *Analyzer {
	return &Analyzer{
		log:        log,
		tasks:      matcher.MustNew(taskRules),
		styles:     matcher.MustNew(styleRules),
		complexity: matcher.MustNew(complexityRules),
	}
}

// Analyze never fails: every sub-step degrades to its documented default.
func (a *Analyzer) Analyze(text, modelID string) domain.FeatureRecord {
	record := domain.FeatureRecord{
		RawText:        text,
		ModelID:        modelID,
		ModelCategory:  ModelCategory(modelID),
		Language:       detectLanguage(text),
		Keywords:       ExtractKeywords(text),
		TaskTypes:      a.tasks.ScoreOrDefault(text, domain.DefaultTaskType),
		Styles:         a.styles.ScoreOrDefault(text, domain.DefaultStyle),
		Complexity:     a.assessComplexity(text),
		Entities:       ExtractEntities(text),
		StructureHints: ExtractStructureHints(text),
		Constraints:    ExtractConstraints(text),
	}
	a.log.Debug("Input analyzed",
		"model_id", modelID,
		"category", record.ModelCategory,
		"task", record.TopTask(),
		"style", record.TopStyle(),
		"complexity", record.Complexity)
	return record
}

// ModelCategory buckets a model identifier, unknown identifiers are text models.
func ModelCategory(modelID string) domain.Category {
	id := strings.ToLower(modelID)
	for _, bucket := range categoryBuckets {
		for _, needle := range bucket.Needles {
			if strings.Contains(id, needle) {
				return bucket.Category
			}
		}
	}
	return domain.TextCategory
}

// assessComplexity prefers indicator keywords and falls back to the word count.
func (a *Analyzer) assessComplexity(text string) domain.Complexity {
	counts := a.complexity.Counts(text)
	best, bestCount := "", 0
	for _, tier := range a.complexity.Labels() {
		if counts[tier] > bestCount {
			best, bestCount = tier, counts[tier]
		}
	}
	if bestCount > 0 {
		return domain.Complexity(best)
	}
	return ComplexityFromWordCount(len(strings.Fields(text)))
}

func ComplexityFromWordCount(words int) domain.Complexity {
	switch {
	case words > 50:
		return domain.HighComplexity
	case words > 20:
		return domain.MediumComplexity
	default:
		return domain.LowComplexity
	}
}

// ExtractKeywords returns the ten most frequent tokens, ties in first-seen order.
func ExtractKeywords(text string) []string {
	counts := make(map[string]int)
	var order []string
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(token) <= 1 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return lo.Ternary(order == nil, []string{}, order)
}

// ExtractEntities is a Latin-script heuristic: capitalized words, deduplicated.
func ExtractEntities(text string) []string {
	return lo.Uniq(append([]string{}, entityPattern.FindAllString(text, -1)...))
}

func ExtractStructureHints(text string) domain.StructureHints {
	var hints domain.StructureHints
	hints.Format = firstLabel(formatRules, text)
	hints.Length = firstLabel(lengthRules, text)

	if sectionPattern.MatchString(text) {
		if n, ok := firstNumber(numberPattern, text); ok && n > 0 {
			n = min(n, maxSections)
			for i := 1; i <= n; i++ {
				hints.Sections = append(hints.Sections, fmt.Sprintf("Section %d", i))
			}
		}
	}
	if n, ok := firstNumber(wordCountPattern, text); ok {
		hints.WordCount = lo.ToPtr(n)
	}
	if n, ok := firstNumber(sentenceCountPattern, text); ok {
		hints.SentenceCount = lo.ToPtr(n)
	}
	return hints
}

func ExtractConstraints(text string) domain.Constraints {
	constraints := domain.Constraints{
		Include:  captureAll(includePatterns, text),
		Exclude:  captureAll(excludePatterns, text),
		Tone:     firstLabel(toneRules, text),
		Audience: firstLabel(audienceRules, text),
	}
	if m := timePattern.FindStringSubmatch(text); m != nil {
		unit := strings.ToLower(m[2])
		if unit == "분" || strings.HasPrefix(unit, "minute") {
			constraints.Time = m[1] + " minutes"
		} else {
			constraints.Time = m[1] + " hours"
		}
	}
	return constraints
}

func detectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}

func firstLabel(rules []patternRule, text string) string {
	for _, rule := range rules {
		if rule.Pattern.MatchString(text) {
			return rule.Label
		}
	}
	return ""
}

// firstNumber reads the first capture group, or the whole match when the pattern has none.
func firstNumber(pattern *regexp.Regexp, text string) (int, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	raw := m[0]
	if len(m) > 1 {
		raw = m[1]
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}

func captureAll(patterns []*regexp.Regexp, text string) []string {
	out := make([]string, 0)
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if v := strings.TrimSpace(m[1]); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

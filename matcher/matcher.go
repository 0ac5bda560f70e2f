package matcher

import (
	"prompt-lab/domain"
	"prompt-lab/errors"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Rule binds a label to the keywords voting for it.
type Rule struct {
	Label    string
	Keywords []string
}

// Matcher scores labels against a text with a single Aho-Corasick pass.
// It is read-only after construction and safe for concurrent use.
type Matcher struct {
	machine *goahocorasick.Machine
	rules   []Rule
}

// New normalizes every keyword of the rules and builds one automaton over the distinct patterns.
// Rule order is kept, it breaks score ties.
func New(rules []Rule) (*Matcher, error) {
	normalized := make([]Rule, len(rules))
	var words []string
	for i, rule := range rules {
		keywords := lo.Map(rule.Keywords, func(k string, _ int) string { return Normalize(k) })
		normalized[i] = Rule{Label: rule.Label, Keywords: keywords}
		words = append(words, keywords...)
	}

	words = lo.Uniq(lo.Filter(words, func(w string, _ int) bool { return w != "" }))
	if len(words) == 0 {
		return nil, errors.ErrNoPatterns
	}
	// The double-array trie behind the machine expects its keys in order
	sort.Strings(words)
	patterns := lo.Map(words, func(w string, _ int) []rune { return []rune(w) })

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Matcher{machine: m, rules: normalized}, nil
}

// MustNew is New for static rule tables declared at package level.
func MustNew(rules []Rule) *Matcher {
	m, err := New(rules)
	if err != nil {
		panic(err)
	}
	return m
}

// Hits returns the set of distinct keywords found anywhere in the text.
func (m *Matcher) Hits(text string) map[string]struct{} {
	hits := make(map[string]struct{})
	content := []rune(Normalize(text))
	if len(content) == 0 {
		return hits
	}
	for _, term := range m.machine.MultiPatternSearch(content, false) {
		hits[string(term.Word)] = struct{}{}
	}
	return hits
}

// Counts returns, for every rule with at least one hit, how many of its keywords were found.
func (m *Matcher) Counts(text string) map[string]int {
	hits := m.Hits(text)
	counts := make(map[string]int)
	for _, rule := range m.rules {
		n := countHits(rule, hits)
		if n > 0 {
			counts[rule.Label] += n
		}
	}
	return counts
}

// Score ranks the labels by the share of their keywords present in the text.
// Labels without a hit are dropped, ties keep the rule order.
func (m *Matcher) Score(text string) []domain.ScoredLabel {
	hits := m.Hits(text)
	var scored []domain.ScoredLabel
	for _, rule := range m.rules {
		if len(rule.Keywords) == 0 {
			continue
		}
		n := countHits(rule, hits)
		if n == 0 {
			continue
		}
		scored = append(scored, domain.ScoredLabel{
			Label: rule.Label,
			Score: float64(n) / float64(len(rule.Keywords)),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored
}

// ScoreOrDefault never returns an empty list: no signal yields the fallback with score 1.0.
func (m *Matcher) ScoreOrDefault(text, fallback string) []domain.ScoredLabel {
	scored := m.Score(text)
	if len(scored) == 0 {
		return []domain.ScoredLabel{{Label: fallback, Score: 1.0}}
	}
	return scored
}

// Best returns the top label or the fallback.
func (m *Matcher) Best(text, fallback string) string {
	return m.ScoreOrDefault(text, fallback)[0].Label
}

// First returns the first rule, in declaration order, with any hit.
func (m *Matcher) First(text string) (string, bool) {
	hits := m.Hits(text)
	for _, rule := range m.rules {
		if countHits(rule, hits) > 0 {
			return rule.Label, true
		}
	}
	return "", false
}

func (m *Matcher) Labels() []string {
	return lo.Map(m.rules, func(r Rule, _ int) string { return r.Label })
}

// Normalize puts the text in composed form and lower case so keyword lists match
// regardless of how the input was typed.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

func countHits(rule Rule, hits map[string]struct{}) int {
	n := 0
	for _, k := range rule.Keywords {
		if _, ok := hits[k]; ok {
			n++
		}
	}
	return n
}

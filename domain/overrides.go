package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Overrides are caller supplied values merged into a FeatureRecord.
// Known keys replace the extracted field, every key stays readable by adapters.
type Overrides map[string]any

// String returns the override as a trimmed string. Empty values count as absent.
func (o Overrides) String(key string) (string, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", false
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	case []string, []any:
		s = strings.Join(o.Strings(key), ", ")
	default:
		s = fmt.Sprint(t)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Strings returns a list override. A plain string is split on commas.
func (o Overrides) Strings(key string) []string {
	v, ok := o[key]
	if !ok || v == nil {
		return nil
	}
	var out []string
	switch t := v.(type) {
	case []string:
		out = t
	case []any:
		out = lo.Map(t, func(item any, _ int) string { return fmt.Sprint(item) })
	case string:
		out = strings.Split(t, ",")
	default:
		out = []string{fmt.Sprint(t)}
	}
	out = lo.Map(out, func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Filter(out, func(s string, _ int) bool { return s != "" })
}

func (o Overrides) Int(key string) (int, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	return 0, false
}

// Merge returns a copy of f where overrides win over extracted values.
func (f FeatureRecord) Merge(o Overrides) FeatureRecord {
	if len(o) == 0 {
		return f
	}
	merged := f
	merged.Overrides = make(Overrides, len(f.Overrides)+len(o))
	for k, v := range f.Overrides {
		merged.Overrides[k] = v
	}
	for k, v := range o {
		merged.Overrides[k] = v
	}

	if c, ok := o.String("complexity"); ok {
		switch Complexity(c) {
		case LowComplexity, MediumComplexity, HighComplexity:
			merged.Complexity = Complexity(c)
		}
	}
	if c, ok := o.String("model_category"); ok {
		merged.ModelCategory = Category(c)
	}
	if kw := o.Strings("keywords"); len(kw) > 0 {
		merged.Keywords = kw
	}
	if e := o.Strings("entities"); len(e) > 0 {
		merged.Entities = e
	}
	if t := o.Strings("task_types"); len(t) > 0 {
		merged.TaskTypes = fullScore(t)
	}
	if s := o.Strings("styles"); len(s) > 0 {
		merged.Styles = fullScore(s)
	}

	hints := f.StructureHints
	if v, ok := o.String("format"); ok {
		hints.Format = v
	}
	if v, ok := o.String("length"); ok {
		hints.Length = v
	}
	if v := o.Strings("sections"); len(v) > 0 {
		hints.Sections = v
	}
	if n, ok := o.Int("word_count"); ok {
		hints.WordCount = lo.ToPtr(n)
	}
	if n, ok := o.Int("sentence_count"); ok {
		hints.SentenceCount = lo.ToPtr(n)
	}
	merged.StructureHints = hints

	constraints := f.Constraints
	if v := o.Strings("include"); len(v) > 0 {
		constraints.Include = v
	}
	if v := o.Strings("exclude"); len(v) > 0 {
		constraints.Exclude = v
	}
	if v, ok := o.String("tone"); ok {
		constraints.Tone = v
	}
	if v, ok := o.String("audience"); ok {
		constraints.Audience = v
	}
	if v, ok := o.String("time"); ok {
		constraints.Time = v
	}
	merged.Constraints = constraints
	return merged
}

func fullScore(labels []string) []ScoredLabel {
	return lo.Map(labels, func(l string, _ int) ScoredLabel { return ScoredLabel{Label: l, Score: 1.0} })
}

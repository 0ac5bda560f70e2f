package adapter

import (
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"regexp"
	"strconv"
	"strings"
)

const (
	commaJoin = ", "
	blankJoin = "\n\n"
	spaceJoin = " "
	lineJoin  = "\n"
)

var (
	placeholderPattern = regexp.MustCompile(`\{([^{}]*)\}`)
	sentinelPattern    = regexp.MustCompile("\x00([^\x00]*)\x00")
	repeatedComma      = regexp.MustCompile(`\s*,(?:\s*,)+`)
	spaceBeforeComma   = regexp.MustCompile(`[ \t]+,`)
	colonComma         = regexp.MustCompile(`:\s*,`)
	repeatedSpaces     = regexp.MustCompile(`[ \t]{2,}`)
	edgeSeparators     = regexp.MustCompile(`^[\s,]+|[\s,:]+$`)
)

// Subtypes classifies the input into an adapter-local category with the same
// scored keyword matching used for task types.
type Subtypes struct {
	matcher     *matcher.Matcher
	overrideKey string
	fallback    string
}

// NewSubtypes builds a classifier whose result can be forced with the given override key.
func NewSubtypes(overrideKey string, rules []matcher.Rule, fallback string) Subtypes {
	return Subtypes{matcher: matcher.MustNew(rules), overrideKey: overrideKey, fallback: fallback}
}

// Detect honours a known override before looking at the text.
func (s Subtypes) Detect(f domain.FeatureRecord) string {
	if forced, ok := f.Overrides.String(s.overrideKey); ok {
		for _, label := range s.matcher.Labels() {
			if label == forced {
				return forced
			}
		}
	}
	return s.matcher.Best(f.RawText, s.fallback)
}

// Slot is an ordered list of literals: the first one contained in the text fills the slot.
type Slot struct {
	Name   string
	Values []string
}

// ExtractSlots fills every slot from the text. The description slot holds the sanitized text.
func ExtractSlots(text string, slots []Slot) map[string]string {
	normalized := matcher.Normalize(text)
	values := map[string]string{"description": Sanitize(text)}
	for _, slot := range slots {
		for _, literal := range slot.Values {
			if strings.Contains(normalized, matcher.Normalize(literal)) {
				values[slot.Name] = literal
				break
			}
		}
	}
	return values
}

// Fill substitutes each {slot} with its cleaned value and drops placeholders without one.
// The skeleton is cleaned before values go in, so a value can not inject new slots.
func Fill(template string, values map[string]string) string {
	cleaned := make(map[string]string, len(values))
	for name, v := range values {
		cleaned[name] = Cleanup(strings.ReplaceAll(v, "\x00", ""))
	}
	skeleton := placeholderPattern.ReplaceAllStringFunc(template, func(ph string) string {
		name := ph[1 : len(ph)-1]
		if cleaned[name] == "" {
			return ""
		}
		return "\x00" + name + "\x00"
	})
	skeleton = Cleanup(skeleton)
	return sentinelPattern.ReplaceAllStringFunc(skeleton, func(s string) string {
		return cleaned[s[1:len(s)-1]]
	})
}

// Sanitize scrubs user text line by line with Cleanup, keeping its line breaks.
func Sanitize(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\x00", ""), "\n")
	for i, line := range lines {
		lines[i] = Cleanup(line)
	}
	return strings.TrimSpace(blankLinesPattern.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

// taskLine prefixes the sanitized input, or is empty when nothing is left of it.
func taskLine(prefix, sep, text string) string {
	body := Sanitize(text)
	if body == "" {
		return ""
	}
	return prefix + sep + body
}

// Cleanup removes leftover template syntax from a single-line section.
// Nested braces are removed until none is left.
func Cleanup(s string) string {
	for placeholderPattern.MatchString(s) {
		s = placeholderPattern.ReplaceAllString(s, "")
	}
	s = spaceBeforeComma.ReplaceAllString(s, ",")
	s = repeatedComma.ReplaceAllString(s, ",")
	s = colonComma.ReplaceAllString(s, ":")
	s = repeatedSpaces.ReplaceAllString(s, " ")
	return edgeSeparators.ReplaceAllString(s, "")
}

// Join assembles the non-empty sections with the adapter joiner.
// Comma joined sections are trimmed of their own edge commas first.
func Join(sep string, sections ...string) string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		s = strings.TrimSpace(s)
		if strings.HasPrefix(sep, ",") {
			s = strings.Trim(s, " ,")
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, sep)
}

// bulleted renders a titled list, or nothing when the list is empty.
func bulleted(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return title + "\n- " + strings.Join(items, "\n- ")
}

func numbered(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(title)
	for i, item := range items {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(item)
	}
	return b.String()
}

// styleOf returns the explicit style: an override, else the detected one unless it is the neutral default.
func styleOf(f domain.FeatureRecord) string {
	if s, ok := f.Overrides.String("style"); ok {
		return s
	}
	if top := f.TopStyle(); top != domain.DefaultStyle {
		return top
	}
	return ""
}

// lookup returns table[key] or the fallback.
func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

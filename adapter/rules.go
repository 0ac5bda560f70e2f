package adapter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

var (
	blankLinesPattern     = regexp.MustCompile(`\n{3,}`)
	trailingPeriodPattern = regexp.MustCompile(`\.+$`)
)

// Rules is the final pass applied to every rendered prompt.
// Truncation only kicks in when the prompt is longer than MaxLength runes
// and has more than MinLines lines. It keeps a head, a middle and a tail window.
type Rules struct {
	MaxLength            int
	MinLines             int
	Head                 int
	Middle               int
	Tail                 int
	KeepTrailingPeriods  bool
	StepByStepReminder   string
	StepByStepIndicators []string
}

var DefaultRules = Rules{
	MaxLength: 4000,
	MinLines:  50,
	Head:      10,
	Middle:    30,
	Tail:      10,
}

func (r Rules) Apply(prompt string) string {
	prompt = blankLinesPattern.ReplaceAllString(prompt, "\n\n")
	prompt = strings.TrimSpace(prompt)
	if !r.KeepTrailingPeriods {
		prompt = strings.TrimRightFunc(trailingPeriodPattern.ReplaceAllString(prompt, ""), isBlank)
	}
	if r.StepByStepReminder != "" && !containsAny(strings.ToLower(prompt), r.StepByStepIndicators) {
		prompt += r.StepByStepReminder
	}
	return r.truncate(prompt)
}

func (r Rules) truncate(prompt string) string {
	if r.MaxLength <= 0 || utf8.RuneCountInString(prompt) <= r.MaxLength {
		return prompt
	}
	lines := strings.Split(prompt, "\n")
	n := len(lines)
	if n <= r.MinLines || n <= r.Head+r.Middle+r.Tail {
		return prompt
	}
	midStart, midEnd := n/2-r.Middle/2, n/2+r.Middle/2
	kept := make([]string, 0, r.Head+r.Middle+r.Tail+2)
	kept = append(kept, lines[:r.Head]...)
	kept = append(kept, ellipsis)
	kept = append(kept, lines[midStart:midEnd]...)
	kept = append(kept, ellipsis)
	kept = append(kept, lines[n-r.Tail:]...)
	return strings.Join(kept, "\n")
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

package main

import (
	"fmt"
	"prompt-lab/domain"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// pairs collects repeated key=value flags.
type pairs map[string]string

func (p pairs) String() string {
	keys := lo.Keys(p)
	slices.Sort(keys)
	return strings.Join(lo.Map(keys, func(k string, _ int) string { return k + "=" + p[k] }), ",")
}

func (p pairs) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	p[key] = value
	return nil
}

func (p pairs) overrides() domain.Overrides {
	if len(p) == 0 {
		return nil
	}
	return lo.MapValues(p, func(v string, _ string) any { return v })
}

// splitList reads a comma separated flag, ignoring blanks.
func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

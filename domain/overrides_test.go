package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeatureRecord_Merge_Override_Wins(t *testing.T) {
	req := require.New(t)

	// Given an extracted record
	record := FeatureRecord{
		RawText:    "산 풍경",
		Complexity: LowComplexity,
		TaskTypes:  []ScoredLabel{{Label: "visual_creation", Score: 0.14}},
		Styles:     []ScoredLabel{{Label: DefaultStyle, Score: 1.0}},
		Constraints: Constraints{
			Include: []string{"나무"},
		},
	}

	// When the caller overrides some fields
	merged := record.Merge(Overrides{
		"complexity": "high",
		"styles":     []string{"artistic"},
		"include":    "호수, 구름",
		"colors":     []any{"blue", "gold"},
		"word_count": 300,
	})

	// Then overrides replace the extracted values
	req.Equal(HighComplexity, merged.Complexity)
	req.Equal([]ScoredLabel{{Label: "artistic", Score: 1.0}}, merged.Styles)
	req.Equal([]string{"호수", "구름"}, merged.Constraints.Include)
	req.Equal(300, *merged.StructureHints.WordCount)
	req.Equal([]string{"blue", "gold"}, merged.Overrides.Strings("colors"))

	// And the original record is untouched
	req.Equal(LowComplexity, record.Complexity)
	req.Equal([]string{"나무"}, record.Constraints.Include)
	req.Nil(record.Overrides)
}

func TestFeatureRecord_Merge_Ignores_Invalid_Complexity(t *testing.T) {
	req := require.New(t)
	record := FeatureRecord{Complexity: MediumComplexity}

	merged := record.Merge(Overrides{"complexity": "extreme"})

	req.Equal(MediumComplexity, merged.Complexity)
	v, ok := merged.Overrides.String("complexity")
	req.True(ok)
	req.Equal("extreme", v)
}

func TestOverrides_Accessors(t *testing.T) {
	req := require.New(t)
	o := Overrides{"empty": "  ", "n": "12", "f": 3.0, "nil": nil}

	_, ok := o.String("empty")
	req.False(ok)
	_, ok = o.String("nil")
	req.False(ok)
	_, ok = o.String("missing")
	req.False(ok)

	n, ok := o.Int("n")
	req.True(ok)
	req.Equal(12, n)
	n, ok = o.Int("f")
	req.True(ok)
	req.Equal(3, n)

	req.Empty(o.Strings("missing"))
}

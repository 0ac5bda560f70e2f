// Package domain contains the core concepts of the prompt pipeline.
// This file defines the feature record extracted from a raw request.
// A record is created once per request and never mutated afterwards.
package domain

type Category string

const (
	TextCategory  Category = "text"
	ImageCategory Category = "image"
	VideoCategory Category = "video"
	MusicCategory Category = "music"
)

type Complexity string

const (
	LowComplexity    Complexity = "low"
	MediumComplexity Complexity = "medium"
	HighComplexity   Complexity = "high"
)

const (
	DefaultTaskType = "general"
	DefaultStyle    = "neutral"
)

// ScoredLabel is a classification label with its normalized keyword score in (0,1].
type ScoredLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type StructureHints struct {
	Format        string   `json:"format,omitempty"`
	Sections      []string `json:"sections,omitempty"`
	Length        string   `json:"length,omitempty"`
	WordCount     *int     `json:"word_count,omitempty"`
	SentenceCount *int     `json:"sentence_count,omitempty"`
}

type Constraints struct {
	Include  []string `json:"include"`
	Exclude  []string `json:"exclude"`
	Tone     string   `json:"tone,omitempty"`
	Audience string   `json:"audience,omitempty"`
	Time     string   `json:"time,omitempty"`
}

// FeatureRecord is the structured view of one raw request.
// TaskTypes and Styles always hold at least one entry.
type FeatureRecord struct {
	RawText        string         `json:"raw_text"`
	ModelID        string         `json:"model_id"`
	ModelCategory  Category       `json:"model_category"`
	Language       string         `json:"language,omitempty"`
	Keywords       []string       `json:"keywords"`
	TaskTypes      []ScoredLabel  `json:"task_types"`
	Styles         []ScoredLabel  `json:"styles"`
	Complexity     Complexity     `json:"complexity"`
	Entities       []string       `json:"entities"`
	StructureHints StructureHints `json:"structure_hints"`
	Constraints    Constraints    `json:"constraints"`
	Overrides      Overrides      `json:"overrides,omitempty"`
}

// TopTask returns the best scored task type.
func (f FeatureRecord) TopTask() string {
	if len(f.TaskTypes) == 0 {
		return DefaultTaskType
	}
	return f.TaskTypes[0].Label
}

func (f FeatureRecord) TopStyle() string {
	if len(f.Styles) == 0 {
		return DefaultStyle
	}
	return f.Styles[0].Label
}

func (f FeatureRecord) HasTask(label string) bool {
	for _, t := range f.TaskTypes {
		if t.Label == label {
			return true
		}
	}
	return false
}

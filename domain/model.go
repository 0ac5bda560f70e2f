package domain

// ModelInfo is the static metadata an adapter declares about its target model.
type ModelInfo struct {
	ModelID            string   `json:"model_id"`
	ModelName          string   `json:"model_name"`
	Provider           string   `json:"provider"`
	Category           Category `json:"category"`
	Capabilities       []string `json:"capabilities"`
	MaxTokens          int      `json:"max_tokens"`
	SupportsMultimodal bool     `json:"supports_multimodal"`
	BestPractices      []string `json:"best_practices"`
}

// PromptStructure describes the sections an adapter composes.
// It is documentation only and is not enforced at render time.
type PromptStructure struct {
	Components         []string `json:"components"`
	RecommendedOrder   []string `json:"recommended_order"`
	OptionalComponents []string `json:"optional_components"`
}

type ModelSummary struct {
	ModelID            string   `json:"model_id"`
	ModelName          string   `json:"model_name"`
	Provider           string   `json:"provider"`
	Capabilities       []string `json:"capabilities"`
	SupportsMultimodal bool     `json:"supports_multimodal"`
}

func (m ModelInfo) Summary() ModelSummary {
	return ModelSummary{
		ModelID:            m.ModelID,
		ModelName:          m.ModelName,
		Provider:           m.Provider,
		Capabilities:       m.Capabilities,
		SupportsMultimodal: m.SupportsMultimodal,
	}
}

type Comparison struct {
	Models            []ModelSummary      `json:"models"`
	Capabilities      map[string][]string `json:"capabilities"`
	Providers         map[string][]string `json:"providers"`
	MultimodalSupport map[string][]string `json:"multimodal_support"`
}

package domain

import "github.com/google/uuid"

// PromptResult is what the orchestrator hands back for one request.
// A failed call only carries Success, Error and, for unknown models, AvailableModels.
type PromptResult struct {
	RequestID        uuid.UUID        `json:"request_id"`
	Success          bool             `json:"success"`
	Error            string           `json:"error,omitempty"`
	AvailableModels  []string         `json:"available_models,omitempty"`
	OriginalInput    string           `json:"original_input,omitempty"`
	OptimizedPrompt  string           `json:"optimized_prompt,omitempty"`
	ModelID          string           `json:"model_id,omitempty"`
	ModelInfo        *ModelInfo       `json:"model_info,omitempty"`
	PromptStructure  *PromptStructure `json:"prompt_structure,omitempty"`
	GenerationParams map[string]any   `json:"generation_params"`
	Analysis         *FeatureRecord   `json:"analysis_result,omitempty"`
	Intent           *IntentRecord    `json:"intent_result,omitempty"`
}

type Validation struct {
	IsValid         bool     `json:"is_valid"`
	Length          int      `json:"length"`
	WordCount       int      `json:"word_count"`
	EstimatedTokens int      `json:"estimated_tokens"`
	Warnings        []string `json:"warnings"`
	Suggestions     []string `json:"suggestions"`
}

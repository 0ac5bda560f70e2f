//go:generate go run go.uber.org/mock/mockgen -source=adapter.go -destination=../mocks/mock_adapter.go -package=mocks
package adapter

import (
	"prompt-lab/domain"
	"slices"
)

// IAdapter is the rendering contract every target model implements.
// Adapters are stateless after construction: all request data flows through the arguments.
type IAdapter interface {
	Info() domain.ModelInfo
	PromptStructure() domain.PromptStructure
	OptimizePrompt(features domain.FeatureRecord, intent domain.IntentRecord) string
	CapabilityTips(capability string) []string
}

// IParameterized is implemented by image, video and music adapters only.
type IParameterized interface {
	GenerationParameters(features domain.FeatureRecord, intent domain.IntentRecord) map[string]any
}

// Base carries the static metadata shared by every adapter.
type Base struct {
	info         domain.ModelInfo
	structure    domain.PromptStructure
	tips         map[string][]string
	fallbackTips []string
	rules        Rules
}

func (b Base) Info() domain.ModelInfo {
	info := b.info
	info.Capabilities = slices.Clone(b.info.Capabilities)
	info.BestPractices = slices.Clone(b.info.BestPractices)
	return info
}

func (b Base) PromptStructure() domain.PromptStructure {
	return domain.PromptStructure{
		Components:         slices.Clone(b.structure.Components),
		RecommendedOrder:   slices.Clone(b.structure.RecommendedOrder),
		OptionalComponents: slices.Clone(b.structure.OptionalComponents),
	}
}

// CapabilityTips never fails: unknown capabilities get the adapter fallback, possibly empty.
func (b Base) CapabilityTips(capability string) []string {
	if tips, ok := b.tips[capability]; ok {
		return slices.Clone(tips)
	}
	if b.fallbackTips == nil {
		return []string{}
	}
	return slices.Clone(b.fallbackTips)
}

// finish applies the adapter's common-rules pass.
func (b Base) finish(prompt string) string {
	return b.rules.Apply(prompt)
}

// sameOrder is the structure of adapters whose recommended order is their component list.
func sameOrder(components []string, optional ...string) domain.PromptStructure {
	return domain.PromptStructure{
		Components:         components,
		RecommendedOrder:   components,
		OptionalComponents: optional,
	}
}

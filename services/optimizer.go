package services

import (
	"fmt"
	"log/slog"
	"prompt-lab/adapter"
	"prompt-lab/analyzer"
	"prompt-lab/domain"
	"prompt-lab/errors"
	"prompt-lab/intent"
	"prompt-lab/registry"
	"prompt-lab/repositories"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const previewLength = 50

type IOptimizer interface {
	OptimizePrompt(text, modelID string, overrides domain.Overrides) domain.PromptResult
	BatchOptimize(text string, modelIDs []string, overrides domain.Overrides) ([]domain.PromptResult, error)
	AvailableModels(modelType string) []domain.ModelInfo
	ModelInfo(modelID string) (domain.ModelInfo, error)
	Tips(modelID, capability string) ([]string, error)
	Structure(modelID string) (domain.PromptStructure, error)
	Compare(modelIDs []string) domain.Comparison
	ValidatePrompt(prompt, modelID string) (domain.Validation, error)
	UsageStats() (domain.UsageStats, error)
}

// Optimizer is the single entry point of the pipeline.
// It never returns an error for one optimization: failures come back as a PromptResult.
type Optimizer struct {
	log         *slog.Logger
	registry    *registry.Registry
	analyzer    analyzer.IAnalyzer
	detector    intent.IDetector
	usage       repositories.IUsageRepository
	recentLimit int
}

// NewOptimizer wires the pipeline. detector defaults to the constant detector and usage may be nil.
func NewOptimizer(log *slog.Logger, reg *registry.Registry, extractor analyzer.IAnalyzer,
	detector intent.IDetector, usage repositories.IUsageRepository, recentLimit int) *Optimizer {
	if detector == nil {
		detector = intent.DefaultDetector{}
	}
	return &Optimizer{
		log:         log,
		registry:    reg,
		analyzer:    extractor,
		detector:    detector,
		usage:       usage,
		recentLimit: recentLimit,
	}
}

// OptimizePrompt runs analysis, intent detection and rendering for one model.
// A panic raised by any of them is recovered and reported as a failed result.
func (o *Optimizer) OptimizePrompt(text, modelID string, overrides domain.Overrides) (result domain.PromptResult) {
	requestID := uuid.New()
	a, err := o.registry.Get(modelID)
	if err != nil {
		o.log.Warn("Prompt optimization rejected", "request_id", requestID, "error", err)
		return domain.PromptResult{
			RequestID:       requestID,
			Error:           fmt.Sprintf("지원하지 않는 모델 ID: %s", modelID),
			AvailableModels: o.registry.SortedIDs(),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", errors.ErrAdapterPanic, r)
			o.log.Warn("Prompt optimization failed", "request_id", requestID, "model_id", modelID, "error", err)
			o.record(modelID, analyzer.ModelCategory(modelID), text, false)
			result = domain.PromptResult{
				RequestID:     requestID,
				Error:         fmt.Sprintf("프롬프트 최적화 중 오류 발생: %v", r),
				OriginalInput: text,
				ModelID:       modelID,
			}
		}
	}()

	features := o.analyzer.Analyze(text, modelID).Merge(overrides)
	in := o.detector.Detect(text)
	prompt := a.OptimizePrompt(features, in)

	params := map[string]any{}
	if p, ok := a.(adapter.IParameterized); ok {
		params = p.GenerationParameters(features, in)
	}
	info := a.Info()
	structure := a.PromptStructure()

	o.record(modelID, info.Category, text, true)
	o.log.Debug("Prompt optimized", "request_id", requestID, "model_id", modelID, "length", utf8.RuneCountInString(prompt))
	return domain.PromptResult{
		RequestID:        requestID,
		Success:          true,
		OriginalInput:    text,
		OptimizedPrompt:  prompt,
		ModelID:          modelID,
		ModelInfo:        &info,
		PromptStructure:  &structure,
		GenerationParams: params,
		Analysis:         &features,
		Intent:           &in,
	}
}

type batchRequest struct {
	ModelIDs []string `validate:"required,min=1,dive,required"`
}

// BatchOptimize returns one result per requested model, in request order.
func (o *Optimizer) BatchOptimize(text string, modelIDs []string, overrides domain.Overrides) ([]domain.PromptResult, error) {
	if err := validate.Struct(batchRequest{ModelIDs: modelIDs}); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return lo.Map(modelIDs, func(id string, _ int) domain.PromptResult {
		return o.OptimizePrompt(text, id, overrides)
	}), nil
}

// AvailableModels lists adapter metadata, filtered by category when modelType is not empty.
func (o *Optimizer) AvailableModels(modelType string) []domain.ModelInfo {
	infos := lo.Map(o.registry.All(), func(a adapter.IAdapter, _ int) domain.ModelInfo { return a.Info() })
	if modelType == "" {
		return infos
	}
	return lo.Filter(infos, func(info domain.ModelInfo, _ int) bool {
		return string(info.Category) == modelType
	})
}

func (o *Optimizer) ModelInfo(modelID string) (domain.ModelInfo, error) {
	a, err := o.registry.Get(modelID)
	if err != nil {
		return domain.ModelInfo{}, err
	}
	return a.Info(), nil
}

// Tips defaults to the first declared capability of the model.
func (o *Optimizer) Tips(modelID, capability string) ([]string, error) {
	a, err := o.registry.Get(modelID)
	if err != nil {
		return nil, err
	}
	if capability == "" {
		if caps := a.Info().Capabilities; len(caps) > 0 {
			capability = caps[0]
		}
	}
	return a.CapabilityTips(capability), nil
}

func (o *Optimizer) Structure(modelID string) (domain.PromptStructure, error) {
	a, err := o.registry.Get(modelID)
	if err != nil {
		return domain.PromptStructure{}, err
	}
	return a.PromptStructure(), nil
}

// Compare groups the known models of the request by capability, provider and multimodal support.
// Unknown identifiers are skipped.
func (o *Optimizer) Compare(modelIDs []string) domain.Comparison {
	comparison := domain.Comparison{
		Models:            []domain.ModelSummary{},
		Capabilities:      map[string][]string{},
		Providers:         map[string][]string{},
		MultimodalSupport: map[string][]string{},
	}
	for _, id := range modelIDs {
		a, err := o.registry.Get(id)
		if err != nil {
			o.log.Debug("Model skipped from comparison", "model_id", id)
			continue
		}
		info := a.Info()
		comparison.Models = append(comparison.Models, info.Summary())
		for _, c := range info.Capabilities {
			comparison.Capabilities[c] = append(comparison.Capabilities[c], id)
		}
		comparison.Providers[info.Provider] = append(comparison.Providers[info.Provider], id)
		support := lo.Ternary(info.SupportsMultimodal, "supported", "not_supported")
		comparison.MultimodalSupport[support] = append(comparison.MultimodalSupport[support], id)
	}
	return comparison
}

func (o *Optimizer) UsageStats() (domain.UsageStats, error) {
	if o.usage == nil {
		return domain.NewUsageStats(), nil
	}
	return o.usage.Stats(o.recentLimit)
}

// record never fails the request, a store error is only logged.
func (o *Optimizer) record(modelID string, category domain.Category, text string, success bool) {
	if o.usage == nil {
		return
	}
	event := domain.UsageEvent{
		ID:          uuid.New(),
		ModelID:     modelID,
		Category:    string(category),
		TaskPreview: preview(text),
		Success:     success,
		At:          time.Now().UTC(),
	}
	if err := o.usage.Record(event); err != nil {
		o.log.Warn("Usage not recorded", "model_id", modelID, "error", err)
	}
}

// preview is stored as a proto string, so invalid UTF-8 is replaced first.
func preview(text string) string {
	text = strings.ToValidUTF8(text, "\uFFFD")
	if utf8.RuneCountInString(text) <= previewLength {
		return text
	}
	return string([]rune(text)[:previewLength]) + "..."
}

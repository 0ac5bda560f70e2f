package adapter

import (
	"prompt-lab/domain"
)

// V0 favours a direct prompt: the task comes first and there is no role section.
type V0 struct {
	Base
}

var v0Formats = map[string]string{
	"conversational":        "자연스러운 대화 형식으로 응답해주세요. 친근하고 도움이 되는 톤을 유지하세요.",
	"structured":            geminiFormats["structured"],
	"code_with_explanation": geminiFormats["code_with_explanation"],
	"step_by_step":          geminiFormats["step_by_step"],
	"creative":              geminiFormats["creative"],
}

var v0FormatByTask = map[string]string{
	"creative_writing":  "creative",
	"technical_writing": "structured",
	"code_generation":   "code_with_explanation",
	"reasoning":         "step_by_step",
	"conversational":    "conversational",
}

func NewV0() *V0 {
	return &V0{Base: Base{
		info: domain.ModelInfo{
			ModelID:   "vercel-v0",
			ModelName: "Vercel v0",
			Provider:  "Vercel",
			Category:  domain.TextCategory,
			Capabilities: []string{
				"text_generation", "code_generation", "reasoning",
				"knowledge_retrieval", "creative_writing", "conversational",
			},
			MaxTokens: 128000,
			BestPractices: []string{
				"명확한 지시와 맥락 제공",
				"단계별 지시로 복잡한 작업 분해",
				"코드 생성 시 구체적인 요구사항 명시",
				"출력 형식 명확히 지정",
				"간결하고 직접적인 프롬프트 작성",
			},
		},
		structure: sameOrder([]string{
			"task_description", "specific_instructions", "context_setting",
			"output_format", "examples", "constraints",
		}, "context_setting", "examples", "constraints"),
		tips: map[string][]string{
			"text_generation": {
				"명확한 출력 형식을 지정하면 더 일관된 결과를 얻을 수 있습니다.",
				"간결하고 직접적인 지시를 사용하세요.",
				"단계별 지시를 사용하면 복잡한 작업을 더 잘 처리할 수 있습니다.",
			},
			"code_generation":     codeGenerationTips,
			"reasoning":           reasoningTips,
			"knowledge_retrieval": knowledgeTips,
			"creative_writing":    creativeWritingTips,
			"conversational": {
				"대화의 맥락과 목적을 명확히 설정하세요.",
				"원하는 대화 스타일이나 톤을 지정하세요.",
				"특정 페르소나나 역할을 부여하면 더 특화된 대화를 이끌어낼 수 있습니다.",
				"대화의 흐름을 유도하는 질문이나 지시를 포함하세요.",
			},
		},
		fallbackTips: []string{"Vercel v0는 다양한 작업에 활용할 수 있는 범용 모델입니다."},
		rules:        DefaultRules,
	}}
}

func (m *V0) OptimizePrompt(f domain.FeatureRecord, in domain.IntentRecord) string {
	task := f.TopTask()
	var example string
	if task == "code_generation" {
		example = geminiExamples[task]
	}
	return m.finish(Join(blankJoin,
		taskLine(lookup(contentTaskPrefixes, in.Primary.Label, "작업:"), "\n", f.RawText),
		bulleted("지시사항:", detailInstructions(f)),
		contextLine(f),
		"출력 형식: "+v0Formats[lookup(v0FormatByTask, task, "structured")],
		example,
		bulleted("제약 조건:", nonEmpty(toneInstruction(f), timeInstruction(f), urgencyInstruction(in))),
	))
}

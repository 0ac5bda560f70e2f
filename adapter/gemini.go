package adapter

import (
	"prompt-lab/domain"
)

type Gemini struct {
	Base
}

var geminiRoles = map[string]string{
	"creative_writing":    "당신은 창의적인 작가로서 독창적이고 매력적인 콘텐츠를 생성하는 전문가입니다.",
	"technical_writing":   "당신은 기술 문서 작성자로서 복잡한 개념을 명확하고 정확하게 설명하는 전문가입니다.",
	"code_generation":     "당신은 소프트웨어 개발자로서 효율적이고 잘 구조화된 코드를 작성하는 전문가입니다.",
	"multimodal_analysis": "당신은 이미지와 텍스트를 함께 분석하여 통찰력 있는 결론을 도출하는 전문가입니다.",
	"reasoning":           "당신은 복잡한 문제를 논리적으로 분석하고 해결하는 전문가입니다.",
	"general":             "당신은 지식이 풍부하고 도움이 되는 AI 어시스턴트입니다.",
}

var geminiFormats = map[string]string{
	"creative":              "자유롭고 창의적인 형식으로 응답해주세요. 독창적인 표현과 구조를 활용하세요.",
	"structured":            "다음과 같은 구조로 응답해주세요:\n## 주요 포인트\n[핵심 내용]\n\n## 세부 내용\n[상세 설명]\n\n## 결론\n[요약 및 결론]",
	"code_with_explanation": "다음 형식으로 코드와 설명을 제공해주세요:\n```[언어]\n[코드]\n```\n\n코드 설명:\n- [주요 부분 설명]\n- [알고리즘 설명]\n- [사용된 기법 설명]",
	"step_by_step":          "다음과 같이 단계별로 응답해주세요:\n1. 첫 번째 단계\n2. 두 번째 단계\n3. 세 번째 단계\n...",
	"multimodal_analysis":   "다음 구조로 멀티모달 분석을 제공해주세요:\n## 시각적 요소 분석\n[이미지 내용 분석]\n\n## 텍스트 요소 분석\n[텍스트 내용 분석]\n\n## 통합 분석\n[시각 및 텍스트 정보 통합 분석]\n\n## 결론\n[최종 결론]",
}

// geminiFormatByTask picks the answer layout from the top task type.
var geminiFormatByTask = map[string]string{
	"creative_writing":    "creative",
	"technical_writing":   "structured",
	"code_generation":     "code_with_explanation",
	"reasoning":           "step_by_step",
	"multimodal_analysis": "multimodal_analysis",
}

var geminiExamples = map[string]string{
	"creative_writing": "예시:\n제목: 잊혀진 숲의 비밀\n\n깊은 숲속, 오래된 나무들 사이로 햇빛이 스며들었다. 이곳은 수백 년간 인간의 발길이 닿지 않은 곳으로, 자연의 신비로움이 고스란히 보존되어 있었다...",
	"code_generation":  "예시:\n```python\ndef fibonacci(n):\n    \"\"\"피보나치 수열의 n번째 항을 반환합니다.\"\"\"\n    if n <= 0:\n        return 0\n    elif n == 1:\n        return 1\n    else:\n        return fibonacci(n-1) + fibonacci(n-2)\n```\n\n이 함수는 재귀적으로 피보나치 수열을 계산합니다. 시간 복잡도는 O(2^n)으로 비효율적이지만, 개념을 명확히 보여줍니다.",
}

func NewGemini() *Gemini {
	return &Gemini{Base: Base{
		info: domain.ModelInfo{
			ModelID:   "gemini-2.5-pro",
			ModelName: "Gemini 2.5 Pro",
			Provider:  "Google",
			Category:  domain.TextCategory,
			Capabilities: []string{
				"text_generation", "creative_writing", "multimodal_understanding",
				"code_generation", "reasoning", "knowledge_retrieval",
			},
			MaxTokens:          100000,
			SupportsMultimodal: true,
			BestPractices: []string{
				"명확한 지시와 맥락 제공",
				"멀티모달 입력 활용",
				"단계별 지시로 복잡한 작업 분해",
				"출력 형식 명확히 지정",
				"구체적인 예시 제공",
			},
		},
		structure: sameOrder([]string{
			"role_definition", "context_setting", "task_description",
			"specific_instructions", "output_format", "examples", "constraints",
		}, "examples", "constraints"),
		tips: map[string][]string{
			"text_generation":          textGenerationTips,
			"creative_writing":         creativeWritingTips,
			"multimodal_understanding": multimodalTips,
			"code_generation":          codeGenerationTips,
			"reasoning":                reasoningTips,
			"knowledge_retrieval":      knowledgeTips,
		},
		rules: DefaultRules,
	}}
}

func (m *Gemini) OptimizePrompt(f domain.FeatureRecord, in domain.IntentRecord) string {
	task := f.TopTask()
	return m.finish(Join(blankJoin,
		m.role(f, in),
		contextLine(f),
		taskLine(lookup(contentTaskPrefixes, in.Primary.Label, "작업:"), "\n\n", f.RawText),
		bulleted("지시사항:", detailInstructions(f)),
		"출력 형식: "+geminiFormats[lookup(geminiFormatByTask, task, "structured")],
		geminiExamples[task],
		bulleted("제약 조건:", nonEmpty(toneInstruction(f), timeInstruction(f), urgencyInstruction(in))),
	))
}

func (m *Gemini) role(f domain.FeatureRecord, in domain.IntentRecord) string {
	switch {
	case in.IsCreative:
		return geminiRoles["creative_writing"]
	case in.IsTechnical:
		return geminiRoles["technical_writing"]
	case in.IsCoding:
		return geminiRoles["code_generation"]
	}
	return lookup(geminiRoles, f.TopTask(), geminiRoles["general"])
}

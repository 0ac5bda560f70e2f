package adapter

import (
	"prompt-lab/domain"
)

type GPT4o struct {
	Base
}

var gpt4oRoles = map[string]string{
	"creative_writing":  "당신은 창의적인 작가로서 독창적이고 매력적인 콘텐츠를 생성하는 전문가입니다.",
	"technical_writing": "당신은 기술 문서 작성자로서 복잡한 개념을 명확하고 정확하게 설명하는 전문가입니다.",
	"marketing":         "당신은 마케팅 전문가로서 설득력 있고 매력적인 카피를 작성하는 능력을 갖추고 있습니다.",
	"data_analysis":     "당신은 데이터 분석가로서 정보를 체계적으로 분석하고 통찰력 있는 결론을 도출하는 전문가입니다.",
	"code_generation":   "당신은 소프트웨어 개발자로서 효율적이고 잘 구조화된 코드를 작성하는 전문가입니다.",
	"academic":          "당신은 학자로서 철저한 연구와 논리적 분석을 바탕으로 학술적 콘텐츠를 생성합니다.",
	"general":           "당신은 지식이 풍부하고 도움이 되는 AI 어시스턴트입니다.",
}

var contentTaskPrefixes = map[string]string{
	"generate_content": "다음 내용을 생성해주세요:",
	"analyze":          "다음 내용을 분석해주세요:",
	"summarize":        "다음 내용을 요약해주세요:",
	"explain":          "다음 내용을 설명해주세요:",
	"translate":        "다음 내용을 번역해주세요:",
	"compare":          "다음 내용을 비교해주세요:",
	"improve":          "다음 내용을 개선해주세요:",
	"brainstorm":       "다음 주제에 대한 아이디어를 제시해주세요:",
	"question":         "다음 질문에 답변해주세요:",
}

var gpt4oFormats = map[string]string{
	"list":         "다음 형식으로 응답해주세요:\n- 항목 1\n- 항목 2\n- 항목 3\n...",
	"table":        "다음과 같은 표 형식으로 응답해주세요:\n| 열1 | 열2 | 열3 |\n|-----|-----|-----|\n| 값1 | 값2 | 값3 |",
	"json":         "다음 JSON 형식으로 응답해주세요:\n```json\n{\n  \"key1\": \"value1\",\n  \"key2\": \"value2\"\n}\n```",
	"markdown":     "마크다운 형식으로 응답해주세요. 제목, 부제목, 목록, 강조 등의 마크다운 요소를 적절히 활용하세요.",
	"step_by_step": "다음과 같이 단계별로 응답해주세요:\n1. 첫 번째 단계\n2. 두 번째 단계\n3. 세 번째 단계\n...",
}

func NewGPT4o() *GPT4o {
	return &GPT4o{Base: Base{
		info: domain.ModelInfo{
			ModelID:   "gpt-4o",
			ModelName: "GPT-4o",
			Provider:  "OpenAI",
			Category:  domain.TextCategory,
			Capabilities: []string{
				"text_generation", "code_generation", "creative_writing",
				"analytical_reasoning", "multimodal_understanding", "tool_use",
			},
			MaxTokens:          128000,
			SupportsMultimodal: true,
			BestPractices: []string{
				"명확한 지시와 맥락 제공",
				"역할 부여를 통한 전문성 유도",
				"단계별 지시로 복잡한 작업 분해",
				"출력 형식 명확히 지정",
				"멀티모달 입력 활용",
			},
		},
		structure: sameOrder([]string{
			"role_definition", "context_setting", "task_description",
			"specific_instructions", "output_format", "examples", "constraints",
		}, "examples", "constraints"),
		tips: map[string][]string{
			"text_generation":  textGenerationTips,
			"code_generation":  codeGenerationTips,
			"creative_writing": creativeWritingTips,
			"analytical_reasoning": {
				"분석해야 할 데이터나 문제를 명확히 정의하세요.",
				"원하는 분석 방법이나 프레임워크를 지정하세요.",
				"결론이나 통찰을 어떤 형태로 제시할지 명시하세요.",
			},
			"multimodal_understanding": multimodalTips,
			"tool_use": {
				"GPT-4o가 사용할 수 있는 도구의 기능과 제한사항을 명확히 설명하세요.",
				"도구 사용의 목적과 원하는 결과를 구체적으로 지정하세요.",
				"여러 도구를 순차적으로 사용해야 하는 경우, 각 단계를 명확히 설명하세요.",
			},
		},
		fallbackTips: []string{"GPT-4o는 다양한 작업에 활용할 수 있는 범용 모델입니다."},
		rules:        DefaultRules,
	}}
}

func (m *GPT4o) OptimizePrompt(f domain.FeatureRecord, in domain.IntentRecord) string {
	return m.finish(Join(blankJoin,
		m.role(f, in),
		contextLine(f),
		taskLine(lookup(contentTaskPrefixes, in.Primary.Label, "작업:"), " ", f.RawText),
		bulleted("지시사항:", detailInstructions(f)),
		m.outputFormat(f, in),
		bulleted("제약 조건:", nonEmpty(toneInstruction(f), timeInstruction(f), urgencyInstruction(in))),
	))
}

// role follows the top task type, creative then technical intent flags take precedence.
func (m *GPT4o) role(f domain.FeatureRecord, in domain.IntentRecord) string {
	switch {
	case in.IsCreative:
		return gpt4oRoles["creative_writing"]
	case in.IsTechnical:
		return gpt4oRoles["technical_writing"]
	}
	return lookup(gpt4oRoles, f.TopTask(), gpt4oRoles["general"])
}

func (m *GPT4o) outputFormat(f domain.FeatureRecord, in domain.IntentRecord) string {
	if format, ok := gpt4oFormats[outputFormatOf(f, in)]; ok {
		return "출력 형식: " + format
	}
	return ""
}

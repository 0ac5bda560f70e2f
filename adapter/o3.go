package adapter

import (
	"prompt-lab/domain"
	"strings"
)

type O3 struct {
	Base
}

var o3Roles = map[string]string{
	"reasoning":            "당신은 복잡한 추론 문제를 단계별로 해결하는 전문가입니다.",
	"math_problem_solving": "당신은 수학 문제를 체계적으로 분석하고 해결하는 전문가입니다.",
	"code_generation":      "당신은 효율적이고 잘 구조화된 코드를 작성하는 소프트웨어 개발 전문가입니다.",
	"technical_writing":    "당신은 복잡한 기술적 개념을 명확하고 정확하게 설명하는 기술 문서 작성 전문가입니다.",
	"multimodal_analysis":  "당신은 텍스트와 이미지 정보를 통합하여 분석하는 멀티모달 분석 전문가입니다.",
	"general":              "당신은 추론 능력이 뛰어난 AI 어시스턴트입니다.",
}

var o3ProblemPrefixes = map[string]string{
	"solve_problem": "다음 문제를 해결해주세요:",
	"analyze":       "다음 내용을 분석해주세요:",
	"explain":       "다음 개념을 설명해주세요:",
	"code":          "다음 코드 작업을 수행해주세요:",
	"math":          "다음 수학 문제를 풀어주세요:",
	"reason":        "다음 상황에 대해 추론해주세요:",
}

var o3Approaches = map[string]string{
	"reasoning":            "이 문제를 해결하기 위해 단계별 추론 접근법을 사용해주세요.",
	"math_problem_solving": "이 수학 문제를 해결하기 위해 체계적인 접근법을 사용하고, 각 단계에서의 수식과 계산을 명확히 보여주세요.",
	"code_generation":      "이 코딩 작업을 위해 먼저 문제를 분석하고, 알고리즘을 설계한 후, 효율적인 코드를 작성해주세요.",
}

var o3Steps = map[string][]string{
	"reasoning": {
		"문제를 명확히 정의하세요.",
		"관련된 개념과 원칙을 식별하세요.",
		"단계별로 추론 과정을 전개하세요.",
		"각 단계에서 중간 결론을 도출하세요.",
		"최종 결론에 도달하세요.",
	},
	"math_problem_solving": {
		"문제에서 주어진 조건과 구해야 할 것을 명확히 하세요.",
		"적용할 수학적 개념이나 공식을 선택하세요.",
		"단계별로 수식을 전개하고 계산하세요.",
		"중간 결과를 검증하세요.",
		"최종 답을 도출하고 단위를 명시하세요.",
	},
	"code_generation": {
		"문제 요구사항을 분석하세요.",
		"적절한 알고리즘과 자료구조를 선택하세요.",
		"의사코드로 로직을 먼저 설계하세요.",
		"실제 코드를 작성하고 주석을 추가하세요.",
		"코드의 시간 및 공간 복잡도를 분석하세요.",
	},
}

var o3Formats = map[string]string{
	"step_by_step":          "다음과 같이 단계별로 추론 과정을 보여주세요:\n1. 첫 번째 단계: [추론]\n2. 두 번째 단계: [추론]\n...\n최종 결론: [결론]",
	"math_solution":         "다음 형식으로 수학 문제 풀이를 제시해주세요:\n문제 이해: [문제 분석]\n접근 방법: [해결 전략]\n풀이 과정:\n[단계별 수식 및 설명]\n최종 답: [결과]",
	"code_with_explanation": "다음 형식으로 코드와 설명을 제공해주세요:\n```[언어]\n[코드]\n```\n\n코드 설명:\n- [주요 부분 설명]\n- [알고리즘 설명]\n- [사용된 기법 설명]",
	"technical_document":    "다음 구조로 기술 문서를 작성해주세요:\n## 개요\n[간략한 설명]\n\n## 주요 개념\n[핵심 개념 설명]\n\n## 세부 내용\n[상세 설명]\n\n## 결론\n[요약 및 결론]",
	"multimodal_analysis":   "다음 구조로 멀티모달 분석을 제공해주세요:\n## 시각적 요소 분석\n[이미지 내용 분석]\n\n## 텍스트 요소 분석\n[텍스트 내용 분석]\n\n## 통합 분석\n[시각 및 텍스트 정보 통합 분석]\n\n## 결론\n[최종 결론]",
}

var o3FormatByTask = map[string]string{
	"reasoning":            "step_by_step",
	"math_problem_solving": "math_solution",
	"code_generation":      "code_with_explanation",
	"technical_writing":    "technical_document",
	"multimodal_analysis":  "multimodal_analysis",
}

var o3Intermediate = map[string]string{
	"reasoning":            "각 추론 단계에서 중간 결과를 명확히 보여주고, 다음 단계로 넘어가기 전에 현재까지의 결론을 요약해주세요.",
	"math_problem_solving": "각 추론 단계에서 중간 결과를 명확히 보여주고, 다음 단계로 넘어가기 전에 현재까지의 결론을 요약해주세요.",
	"code_generation":      "코드의 주요 부분마다 의도와 동작 방식을 설명하고, 함수나 모듈이 완성될 때마다 그 기능을 요약해주세요.",
}

func NewO3() *O3 {
	return &O3{Base: Base{
		info: domain.ModelInfo{
			ModelID:   "gpt-o3",
			ModelName: "GPT-o3",
			Provider:  "OpenAI",
			Category:  domain.TextCategory,
			Capabilities: []string{
				"reasoning", "math_problem_solving", "code_generation",
				"technical_writing", "multimodal_understanding", "tool_use",
			},
			MaxTokens:          200000,
			SupportsMultimodal: true,
			BestPractices: []string{
				"다단계 추론 문제에 최적화된 프롬프트 작성",
				"멀티모달 입력 활용",
				"기술적 글쓰기 및 코딩 작업에 적합한 구조화",
				"긴 컨텍스트 효과적 활용",
				"도구 사용 기능 최적화",
			},
		},
		structure: sameOrder([]string{
			"role_definition", "problem_statement", "reasoning_approach",
			"step_by_step_instructions", "output_format", "intermediate_results_request",
			"examples", "constraints",
		}, "examples", "constraints"),
		tips: map[string][]string{
			"reasoning": {
				"문제를 여러 하위 문제로 분해하여 단계별로 접근하세요.",
				"각 추론 단계에서 중간 결과를 명시적으로 요청하세요.",
				"추론 과정에서 사용하는 가정이나 원칙을 명확히 언급하세요.",
				"복잡한 추론 체인에서는 '단계별로 생각해보세요'라는 지시어를 포함하세요.",
			},
			"math_problem_solving": {
				"수학 문제의 조건과 구해야 할 것을 명확히 구분하여 제시하세요.",
				"적용해야 할 수학적 개념이나 공식을 언급하세요.",
				"계산 과정을 단계별로 보여달라고 요청하세요.",
				"최종 답변 뿐만 아니라 중간 계산 결과도 확인하세요.",
			},
			"code_generation": {
				"원하는 프로그래밍 언어와 버전을 명시하세요.",
				"코드의 목적과 기능 요구사항을 상세히 설명하세요.",
				"예상 입출력 예제를 제공하세요.",
				"코드 설명과 주석을 요청하세요.",
				"시간 및 공간 복잡도 분석을 요청하세요.",
			},
			"technical_writing": {
				"대상 독자의 전문성 수준을 명시하세요.",
				"포함해야 할 주요 섹션이나 주제를 나열하세요.",
				"기술 문서의 목적(설명, 지침, 참조 등)을 명확히 하세요.",
				"원하는 형식이나 스타일 가이드를 언급하세요.",
			},
			"multimodal_understanding": {
				"이미지와 텍스트를 함께 제공할 때는 이미지에 대한 질문이나 분석 요점을 구체적으로 작성하세요.",
				"이미지의 특정 부분에 대해 언급할 때는 위치나 특징을 명확히 설명하세요.",
				"이미지와 텍스트 정보를 어떻게 통합하여 분석해야 하는지 지시하세요.",
				"시각적 요소와 텍스트적 요소를 별도로 분석한 후 통합 분석을 요청하세요.",
			},
			"tool_use": {
				"사용할 도구의 기능과 제한사항을 명확히 설명하세요.",
				"도구 사용의 목적과 원하는 결과를 구체적으로 지정하세요.",
				"여러 도구를 순차적으로 사용해야 하는 경우, 각 단계를 명확히 설명하세요.",
				"도구 사용 결과를 어떻게 분석하고 활용해야 하는지 지시하세요.",
			},
		},
		fallbackTips: []string{"GPT-o3는 복잡한 추론 문제 해결에 특화된 모델입니다."},
		rules: Rules{
			MaxLength:            8000,
			MinLines:             100,
			Head:                 20,
			Middle:               60,
			Tail:                 20,
			KeepTrailingPeriods:  true,
			StepByStepReminder:   "\n\n단계별로 생각해보세요.",
			StepByStepIndicators: []string{"단계별", "step by step"},
		},
	}}
}

func (m *O3) OptimizePrompt(f domain.FeatureRecord, in domain.IntentRecord) string {
	kind := m.problemKind(f, in)
	return m.finish(Join(blankJoin,
		m.role(f, in),
		taskLine(lookup(o3ProblemPrefixes, in.Primary.Label, "문제:"), "\n\n", f.RawText),
		m.approach(kind, f.Complexity),
		numbered("지시사항:", o3Steps[kind]),
		"출력 형식: "+o3Formats[lookup(o3FormatByTask, kind, "step_by_step")],
		o3Intermediate[kind],
		bulleted("제약 조건:", m.constraints(f)),
	))
}

// problemKind lets the math and coding intent flags refine the detected task.
func (m *O3) problemKind(f domain.FeatureRecord, in domain.IntentRecord) string {
	switch {
	case in.IsMathProblem:
		return "math_problem_solving"
	case in.IsCoding:
		return "code_generation"
	}
	return f.TopTask()
}

func (m *O3) role(f domain.FeatureRecord, in domain.IntentRecord) string {
	switch {
	case in.IsMathProblem:
		return o3Roles["math_problem_solving"]
	case in.IsTechnical:
		return o3Roles["technical_writing"]
	case in.IsCoding:
		return o3Roles["code_generation"]
	}
	return lookup(o3Roles, f.TopTask(), o3Roles["general"])
}

func (m *O3) approach(kind string, complexity domain.Complexity) string {
	parts := nonEmpty(o3Approaches[kind])
	if complexity == domain.HighComplexity {
		parts = append(parts, "이 복잡한 문제는 여러 하위 문제로 나누어 접근하는 것이 효과적입니다.")
	}
	if len(parts) == 0 {
		return "이 문제를 해결하기 위해 단계별로 생각해보세요."
	}
	return "접근법: " + strings.Join(parts, " ")
}

func (m *O3) constraints(f domain.FeatureRecord) []string {
	var out []string
	if accuracy, _ := f.Overrides.String("accuracy"); accuracy == "high" {
		out = append(out, "모든 계산과 추론 과정에서 높은 정확도를 유지해주세요.")
	}
	switch f.Complexity {
	case domain.HighComplexity:
		out = append(out, "복잡한 문제이므로 충분한 세부 사항과 설명을 제공해주세요.")
	case domain.LowComplexity:
		out = append(out, "간결하고 핵심적인 해결 과정만 제시해주세요.")
	}
	return out
}

package adapter

import (
	"fmt"
	"prompt-lab/domain"
	"strings"
)

// Tables shared by the text adapters. Each adapter decides which section uses them.

var audienceText = map[string]string{
	"general":  "일반 대중",
	"expert":   "해당 분야 전문가",
	"beginner": "입문자나 초보자",
	"children": "어린이",
	"teenager": "청소년",
	"adult":    "성인",
}

var styleText = map[string]string{
	"formal":      "격식적이고 전문적인",
	"casual":      "친근하고 일상적인",
	"creative":    "창의적이고 독창적인",
	"technical":   "기술적이고 정확한",
	"persuasive":  "설득력 있는",
	"informative": "정보 제공에 중점을 둔",
	"humorous":    "유머러스한",
	"minimalist":  "간결하고 핵심적인",
}

var toneText = map[string]string{
	"professional": "전문적이고 격식 있는",
	"friendly":     "친근하고 우호적인",
	"formal":       "공식적이고 격식 있는",
	"informal":     "비격식적이고 편안한",
	"enthusiastic": "열정적이고 활기찬",
	"serious":      "진지하고 엄숙한",
	"humorous":     "유머러스하고 재미있는",
}

var lengthText = map[string]string{
	"short":  "짧고 간결하게",
	"medium": "적절한 길이로",
	"long":   "상세하고 포괄적으로",
}

// contextLine renders the audience and style context, empty when neither is known.
func contextLine(f domain.FeatureRecord) string {
	var parts []string
	if a := f.Constraints.Audience; a != "" {
		parts = append(parts, fmt.Sprintf("대상 독자는 %s입니다.", lookup(audienceText, a, a)))
	}
	if s := styleOf(f); s != "" {
		parts = append(parts, fmt.Sprintf("스타일은 %s 톤으로 작성해주세요.", lookup(styleText, s, s)))
	}
	if len(parts) == 0 {
		return ""
	}
	return "맥락: " + strings.Join(parts, " ")
}

// lengthInstruction prefers an explicit word count, then a sentence count, then a length tag.
func lengthInstruction(h domain.StructureHints) string {
	switch {
	case h.WordCount != nil:
		return fmt.Sprintf("약 %d단어 내외로 작성해주세요.", *h.WordCount)
	case h.SentenceCount != nil:
		return fmt.Sprintf("약 %d문장 내외로 작성해주세요.", *h.SentenceCount)
	case h.Length != "":
		if text, ok := lengthText[h.Length]; ok {
			return text + " 작성해주세요."
		}
	}
	return ""
}

// contentInstructions lists the sections, includes and excludes asked by the user.
func contentInstructions(f domain.FeatureRecord) []string {
	var out []string
	if s := f.StructureHints.Sections; len(s) > 0 {
		out = append(out, "다음 섹션을 포함해주세요: "+strings.Join(s, ", "))
	}
	if inc := f.Constraints.Include; len(inc) > 0 {
		out = append(out, "다음 요소를 반드시 포함해주세요: "+strings.Join(inc, ", "))
	}
	if exc := f.Constraints.Exclude; len(exc) > 0 {
		out = append(out, "다음 요소는 제외해주세요: "+strings.Join(exc, ", "))
	}
	return out
}

func toneInstruction(f domain.FeatureRecord) string {
	if t := f.Constraints.Tone; t != "" {
		return lookup(toneText, t, t) + " 톤을 유지해주세요."
	}
	return ""
}

func timeInstruction(f domain.FeatureRecord) string {
	if t := f.Constraints.Time; t != "" {
		return fmt.Sprintf("이 작업은 %s 내에 완료되어야 합니다.", t)
	}
	return ""
}

func urgencyInstruction(in domain.IntentRecord) string {
	switch in.Urgency {
	case "high":
		return "이 작업은 매우 긴급합니다. 가능한 빨리 핵심적인 정보를 제공해주세요."
	case "medium":
		return "이 작업은 적당히 긴급합니다. 불필요한 세부사항은 생략해주세요."
	}
	return ""
}

// outputFormatOf prefers the format hint of the text over the intent one.
func outputFormatOf(f domain.FeatureRecord, in domain.IntentRecord) string {
	if f.StructureHints.Format != "" {
		return f.StructureHints.Format
	}
	return in.OutputFormat
}

func nonEmpty(items ...string) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		if i != "" {
			out = append(out, i)
		}
	}
	return out
}

// Capability tips reused by several text adapters.
var (
	textGenerationTips = []string{
		"명확한 출력 형식을 지정하면 더 일관된 결과를 얻을 수 있습니다.",
		"역할 부여를 통해 특정 전문성을 가진 응답을 유도할 수 있습니다.",
		"단계별 지시를 사용하면 복잡한 작업을 더 잘 처리할 수 있습니다.",
	}
	codeGenerationTips = []string{
		"원하는 프로그래밍 언어를 명시적으로 지정하세요.",
		"코드의 목적과 기능을 상세히 설명하세요.",
		"예상 입출력 예제를 제공하면 더 정확한 코드를 생성할 수 있습니다.",
		"코드 스타일이나 특정 패턴에 대한 요구사항을 명시하세요.",
	}
	creativeWritingTips = []string{
		"원하는 글의 분위기, 톤, 스타일을 구체적으로 지정하세요.",
		"캐릭터, 설정, 플롯 등의 요소를 상세히 설명하세요.",
		"특정 장르나 작가의 스타일을 참조하면 더 특화된 결과를 얻을 수 있습니다.",
	}
	multimodalTips = []string{
		"이미지와 텍스트를 함께 제공할 때는 이미지에 대한 질문이나 지시를 구체적으로 작성하세요.",
		"이미지의 특정 부분에 대해 언급할 때는 위치나 특징을 명확히 설명하세요.",
		"이미지와 텍스트 간의 관계를 명확히 설명하면 더 정확한 이해를 유도할 수 있습니다.",
	}
)

// detailInstructions covers complexity, length and content requests.
func detailInstructions(f domain.FeatureRecord) []string {
	var items []string
	switch f.Complexity {
	case domain.HighComplexity:
		items = append(items, "상세하고 포괄적인 내용을 제공해주세요.")
	case domain.LowComplexity:
		items = append(items, "간결하고 핵심적인 내용만 제공해주세요.")
	}
	items = append(items, nonEmpty(lengthInstruction(f.StructureHints))...)
	return append(items, contentInstructions(f)...)
}

var (
	reasoningTips = []string{
		"문제를 여러 하위 문제로 분해하여 단계별로 접근하세요.",
		"각 추론 단계에서 중간 결과를 명시적으로 요청하세요.",
		"추론 과정에서 사용하는 가정이나 원칙을 명확히 언급하세요.",
	}
	knowledgeTips = []string{
		"질문을 명확하고 구체적으로 작성하세요.",
		"원하는 정보의 깊이와 범위를 지정하세요.",
		"특정 출처나 관점에서의 정보를 원한다면 명시하세요.",
		"정보의 최신성이 중요하다면 언급하세요.",
	}
)

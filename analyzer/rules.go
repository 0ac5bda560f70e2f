package analyzer

import (
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"regexp"
)

const maxKeywords = 10
const maxSections = 10

var taskRules = []matcher.Rule{
	{Label: "creative_writing", Keywords: []string{"글", "시", "소설", "이야기", "스토리", "작성", "창작", "스크립트", "대본"}},
	{Label: "technical_writing", Keywords: []string{"기술", "문서", "보고서", "논문", "설명", "매뉴얼", "가이드"}},
	{Label: "marketing", Keywords: []string{"마케팅", "광고", "카피", "홍보", "슬로건", "캠페인"}},
	{Label: "visual_creation", Keywords: []string{"이미지", "그림", "사진", "디자인", "로고", "일러스트", "시각화", "초상화"}},
	{Label: "video_creation", Keywords: []string{"비디오", "영상", "동영상", "애니메이션", "모션"}},
	{Label: "code_generation", Keywords: []string{"코드", "프로그래밍", "함수", "알고리즘", "개발"}},
	{Label: "data_analysis", Keywords: []string{"데이터", "분석", "통계", "차트", "그래프", "시각화"}},
	{Label: "translation", Keywords: []string{"번역", "통역", "언어 변환"}},
	{Label: "summarization", Keywords: []string{"요약", "축약", "핵심", "중요 포인트"}},
	{Label: "question_answering", Keywords: []string{"질문", "답변", "해결", "문제"}},
}

var styleRules = []matcher.Rule{
	{Label: "formal", Keywords: []string{"공식적", "격식", "전문적", "학술적", "비즈니스"}},
	{Label: "casual", Keywords: []string{"캐주얼", "비격식", "친근한", "일상적"}},
	{Label: "creative", Keywords: []string{"창의적", "독창적", "혁신적", "예술적"}},
	{Label: "technical", Keywords: []string{"기술적", "전문적", "상세한", "정확한"}},
	{Label: "persuasive", Keywords: []string{"설득력", "영향력", "호소력"}},
	{Label: "informative", Keywords: []string{"정보", "교육적", "설명적"}},
	{Label: "humorous", Keywords: []string{"유머", "재미", "위트", "코믹"}},
	{Label: "minimalist", Keywords: []string{"간결", "최소한", "심플", "깔끔"}},
}

// Tier order matters: on equal hit counts the first tier wins.
var complexityRules = []matcher.Rule{
	{Label: string(domain.HighComplexity), Keywords: []string{"상세", "복잡", "심층", "포괄적", "전문적", "고급"}},
	{Label: string(domain.MediumComplexity), Keywords: []string{"중간", "균형", "적절한"}},
	{Label: string(domain.LowComplexity), Keywords: []string{"간단", "기본", "쉬운", "초보적"}},
}

var stopWords = map[string]struct{}{
	"그": {}, "이": {}, "저": {}, "것": {}, "수": {}, "를": {}, "에": {}, "의": {},
	"가": {}, "은": {}, "는": {}, "이다": {}, "있다": {}, "하다": {},
}

// patternRule is an ordered regex classification: the first matching rule wins.
type patternRule struct {
	Label   string
	Pattern *regexp.Regexp
}

var formatRules = []patternRule{
	{Label: "list", Pattern: regexp.MustCompile(`(?i)목록|리스트|항목|bullet|list`)},
	{Label: "table", Pattern: regexp.MustCompile(`(?i)표|테이블|table`)},
	{Label: "essay", Pattern: regexp.MustCompile(`(?i)에세이|논설|essay`)},
	{Label: "code", Pattern: regexp.MustCompile(`(?i)코드|프로그램|함수|code|function`)},
	{Label: "json", Pattern: regexp.MustCompile(`(?i)json|제이슨`)},
	{Label: "markdown", Pattern: regexp.MustCompile(`(?i)마크다운|markdown|\bmd\b`)},
}

var lengthRules = []patternRule{
	{Label: "short", Pattern: regexp.MustCompile(`(?i)짧은|간단한|short|brief`)},
	{Label: "medium", Pattern: regexp.MustCompile(`(?i)중간|medium`)},
	{Label: "long", Pattern: regexp.MustCompile(`(?i)긴|상세한|포괄적인|long|detailed|comprehensive`)},
}

var toneRules = []patternRule{
	{Label: "professional", Pattern: regexp.MustCompile(`(?i)전문적|프로페셔널|professional`)},
	{Label: "friendly", Pattern: regexp.MustCompile(`(?i)친근한|우호적|friendly`)},
	{Label: "formal", Pattern: regexp.MustCompile(`(?i)격식|공식적|formal`)},
	{Label: "informal", Pattern: regexp.MustCompile(`(?i)비격식|informal|casual`)},
	{Label: "enthusiastic", Pattern: regexp.MustCompile(`(?i)열정적|enthusiastic`)},
	{Label: "serious", Pattern: regexp.MustCompile(`(?i)진지한|serious`)},
	{Label: "humorous", Pattern: regexp.MustCompile(`(?i)유머러스|재미있는|humorous|funny`)},
}

var audienceRules = []patternRule{
	{Label: "general", Pattern: regexp.MustCompile(`(?i)일반|대중|general|public`)},
	{Label: "expert", Pattern: regexp.MustCompile(`(?i)전문가|expert|specialist`)},
	{Label: "beginner", Pattern: regexp.MustCompile(`(?i)초보자|입문자|beginner|novice`)},
	{Label: "children", Pattern: regexp.MustCompile(`(?i)어린이|아동|children|kids`)},
	{Label: "teenager", Pattern: regexp.MustCompile(`(?i)청소년|teenager|adolescent`)},
	{Label: "adult", Pattern: regexp.MustCompile(`(?i)성인|adult`)},
}

var (
	tokenPattern         = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	entityPattern        = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	sectionPattern       = regexp.MustCompile(`(?i)섹션|부분|챕터|section|part|chapter`)
	numberPattern        = regexp.MustCompile(`\d+`)
	wordCountPattern     = regexp.MustCompile(`(?i)(\d+)\s*(?:단어|words)`)
	sentenceCountPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:문장|sentences)`)
	timePattern          = regexp.MustCompile(`(?i)(\d+)\s*(분|시간|hours?|minutes?)`)
)

var includePatterns = []*regexp.Regexp{
	regexp.MustCompile(`포함해야?\s*(?:함|합니다|할?|하세요)[\s\.:]*([^.!?]*)`),
	regexp.MustCompile(`반드시\s*([^.!?]*)`),
	regexp.MustCompile(`(?i)include\s*([^.!?]*)`),
}

var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`제외해야?\s*(?:함|합니다|할?|하세요)[\s\.:]*([^.!?]*)`),
	regexp.MustCompile(`포함하지?\s*(?:말아야|마세요|않음|않습니다)[\s\.:]*([^.!?]*)`),
	regexp.MustCompile(`(?i)exclude\s*([^.!?]*)`),
	regexp.MustCompile(`(?i)avoid\s*([^.!?]*)`),
}

// categoryBuckets classifies model identifiers by substring, checked in order.
var categoryBuckets = []struct {
	Category domain.Category
	Needles  []string
}{
	{domain.ImageCategory, []string{"dall-e", "dalle", "imagen", "midjourney", "stable-diffusion"}},
	{domain.VideoCategory, []string{"sora", "veo", "pika", "runway"}},
	{domain.MusicCategory, []string{"suno"}},
	{domain.TextCategory, []string{"gpt", "claude", "llama", "gemini", "vercel-v0"}},
}

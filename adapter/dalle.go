package adapter

import (
	"fmt"
	"prompt-lab/domain"
	"slices"
)

// DALLE3 renders a single comma-joined description without negative prompt.
type DALLE3 struct {
	Base
}

var dalleSubjectTemplates = map[string]string{
	"landscape":    "{description}의 풍경, {time_of_day}, {weather}, {perspective}",
	"portrait":     "{description}의 인물 사진, {pose}, {expression}, {lighting}, {background}",
	"product":      "{description} 제품 사진, {background}, {angle}",
	"concept_art":  "{description}의 컨셉 아트, {mood}",
	"abstract":     "{description}을(를) 주제로 한 추상 이미지, {texture}",
	"architecture": "{description} 건축물, {architectural_style}, {time_of_day}",
	"food":         "{description} 음식 사진, {presentation}, {background}",
}

var dalleStyles = map[string]string{
	"photorealistic": "포토리얼리스틱한 스타일, 고해상도, 세밀한 디테일, 사실적인 조명과 그림자",
	"cinematic":      "영화적인 스타일, 시네마틱한 구도, 드라마틱한 조명, 영화 장면 같은 분위기",
	"anime":          "애니메이션 스타일, 선명한 윤곽선, 밝은 색상, 만화적 표현",
	"digital_art":    "디지털 아트 스타일, 세밀한 디테일, 풍부한 색감, 컴퓨터 그래픽",
	"oil_painting":   "유화 스타일, 두꺼운 붓 터치, 질감이 느껴지는 캔버스, 고전적인 유화 기법",
	"watercolor":     "수채화 스타일, 투명한 색감, 부드러운 경계, 물감이 번지는 효과",
	"3d_render":      "3D 렌더링 스타일, 정교한 모델링, 사실적인 텍스처, 볼륨감 있는 조명",
	"pixel_art":      "픽셀 아트 스타일, 레트로 게임 그래픽, 제한된 색 팔레트, 픽셀화된 디테일",
	"minimalist":     "미니멀리스트 스타일, 단순한 형태, 제한된 색상, 깔끔한 구성",
	"fantasy":        "판타지 스타일, 마법적인 요소, 초현실적인 풍경, 신비로운 분위기",
}

var dalleCompositions = map[string]string{
	"wide_shot":      "와이드 샷, 넓은 시야, 전체 장면 포착",
	"close_up":       "클로즈업, 세부 디테일 강조, 근접 촬영",
	"aerial_view":    "조감도, 위에서 내려다보는 시점, 드론 시점",
	"dutch_angle":    "더치 앵글, 기울어진 구도, 역동적인 느낌",
	"symmetrical":    "대칭 구도, 균형 잡힌 배치, 중앙 정렬",
	"rule_of_thirds": "삼분할 구도, 주요 요소가 교차점에 위치",
	"golden_ratio":   "황금비율 구도, 자연스러운 흐름, 조화로운 배치",
	"leading_lines":  "유도선 구도, 시선을 이끄는 선, 깊이감 있는 구성",
	"framing":        "프레이밍 구도, 자연적 프레임 활용, 액자 효과",
}

var dalleLightings = map[string]string{
	"natural":     "자연광, 부드러운 햇빛, 균일한 조명",
	"golden_hour": "황금빛 시간, 따뜻한 주황색 조명, 긴 그림자",
	"blue_hour":   "블루 아워, 푸른 톤, 황혼, 차분한 분위기",
	"dramatic":    "드라마틱한 조명, 강한 대비, 선명한 그림자",
	"studio":      "스튜디오 조명, 균일한 빛, 전문적인 설정",
	"backlight":   "역광, 실루엣 효과, 빛나는 윤곽선",
	"neon":        "네온 조명, 선명한 색상의 인공 조명, 도시적 분위기",
	"candlelight": "촛불 조명, 따뜻한 주황색 빛, 부드러운 그림자",
	"moonlight":   "달빛, 푸른 색조, 부드러운 그림자, 신비로운 분위기",
}

// dalleSizes are the three frames the API accepts.
var dalleSizes = map[string]struct{ Size, AspectRatio string }{
	"portrait":  {Size: "1024x1792", AspectRatio: "9:16"},
	"landscape": {Size: "1792x1024", AspectRatio: "16:9"},
}

func NewDALLE3() *DALLE3 {
	tips, fallback := imageTips("DALL-E 3")
	return &DALLE3{Base: Base{
		info: domain.ModelInfo{
			ModelID:            "dalle-3",
			ModelName:          "DALL-E 3",
			Provider:           "OpenAI",
			Category:           domain.ImageCategory,
			Capabilities:       slices.Clone(imageCapabilities),
			MaxTokens:          1000,
			SupportsMultimodal: false,
			BestPractices: []string{
				"상세하고 구체적인 설명 제공",
				"시각적 요소 명확히 설명",
				"구도와 시점 지정",
				"스타일과 분위기 명시",
				"참조 아티스트나 스타일 언급",
				"간결하고 명확한 문장 사용",
			},
		},
		structure:    sameOrder(slices.Clone(imageStructure), "color_palette", "mood_atmosphere", "technical_specifications"),
		tips:         tips,
		fallbackTips: fallback,
		rules:        DefaultRules,
	}}
}

func (m *DALLE3) OptimizePrompt(f domain.FeatureRecord, _ domain.IntentRecord) string {
	subject := imageSubjects.Detect(f)
	style := imageStyleOf(f)
	composition, lighting := compositionOf(f, subject), lightingOf(f, subject)
	return m.finish(Join(commaJoin,
		Fill(dalleSubjectTemplates[subject], ExtractSlots(f.RawText, imageSlots[subject])),
		lookup(dalleStyles, style, style),
		lookup(dalleCompositions, composition, composition),
		lookup(dalleLightings, lighting, lighting),
		colorPalette(f),
		m.mood(f),
		m.technical(f, subject, style),
	))
}

// mood is only rendered when asked for.
func (m *DALLE3) mood(f domain.FeatureRecord) string {
	if mood, ok := f.Overrides.String("mood"); ok {
		return lookup(moodText, mood, mood)
	}
	return ""
}

func (m *DALLE3) technical(f domain.FeatureRecord, subject, style string) string {
	p := m.settings(f, subject, style)
	return fmt.Sprintf("해상도: %s, 품질: %s", p["size"], p["quality"])
}

func (m *DALLE3) settings(f domain.FeatureRecord, subject, style string) map[string]any {
	params := map[string]any{
		"size":         "1024x1024",
		"aspect_ratio": "1:1",
		"quality":      "standard",
		"style":        "vivid",
		"n":            1,
	}
	if s, ok := dalleSizes[subject]; ok {
		params["size"], params["aspect_ratio"] = s.Size, s.AspectRatio
	}
	if f.Complexity == domain.HighComplexity {
		params["quality"] = "hd"
	}
	if q, ok := f.Overrides.String("quality"); ok && (q == "standard" || q == "hd") {
		params["quality"] = q
	}
	if style == "photorealistic" || style == "minimalist" {
		params["style"] = "natural"
	}
	return params
}

func (m *DALLE3) GenerationParameters(f domain.FeatureRecord, _ domain.IntentRecord) map[string]any {
	return m.settings(f, imageSubjects.Detect(f), imageStyleOf(f))
}

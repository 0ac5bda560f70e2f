package adapter

import (
	"prompt-lab/domain"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Imagen3 is the canonical negative-prompt image adapter.
type Imagen3 struct {
	Base
}

var imagenSubjectTemplates = map[string]string{
	"landscape":    "자연 풍경: {description}, {time_of_day}, {weather}, {perspective}",
	"portrait":     "인물 사진: {description}, {pose}, {expression}, {lighting}, {background}",
	"product":      "제품 사진: {description}, {background}, {angle}",
	"concept_art":  "컨셉 아트: {description}, {mood}",
	"abstract":     "추상 이미지: {description}, {texture}",
	"architecture": "건축물: {description}, {architectural_style}, {time_of_day}",
	"food":         "음식 사진: {description}, {presentation}, {background}",
}

var imagenStyles = map[string]string{
	"photorealistic": "포토리얼리스틱, 고해상도, 세밀한 디테일, 사실적인 조명과 그림자, 자연스러운 색감",
	"cinematic":      "영화적인, 시네마틱, 드라마틱한 조명, 영화 장면 같은, 시네마토그래피, 영화 스틸컷",
	"anime":          "애니메이션 스타일, 일본 애니메이션, 선명한 윤곽선, 밝은 색상, 만화적 표현",
	"digital_art":    "디지털 아트, 디지털 페인팅, 세밀한 디테일, 풍부한 색감, 컴퓨터 그래픽",
	"oil_painting":   "유화 스타일, 두꺼운 붓 터치, 질감이 느껴지는, 캔버스 위의 페인팅, 고전적인 유화 기법",
	"watercolor":     "수채화 스타일, 투명한 색감, 부드러운 경계, 물감이 번지는 효과, 가벼운 터치",
	"3d_render":      "3D 렌더링, 컴퓨터 그래픽, 정교한 모델링, 사실적인 텍스처, 볼륨감 있는 조명",
	"pixel_art":      "픽셀 아트, 레트로 게임 스타일, 제한된 색 팔레트, 픽셀화된 디테일, 8비트/16비트 스타일",
	"minimalist":     "미니멀리스트, 단순한 형태, 제한된 색상, 깔끔한 구성, 불필요한 요소 제거",
	"fantasy":        "판타지 스타일, 마법적인 요소, 초현실적인 풍경, 신비로운 분위기, 환상적인 생물",
}

var imagenCompositions = map[string]string{
	"wide_shot":      "와이드 샷, 넓은 시야, 전체 장면 포착, 풍경 중심",
	"close_up":       "클로즈업, 세부 디테일 강조, 근접 촬영, 주제에 집중",
	"aerial_view":    "조감도, 위에서 내려다보는 시점, 드론 시점, 전체 조망",
	"dutch_angle":    "더치 앵글, 기울어진 구도, 역동적인 느낌, 불안정한 분위기",
	"symmetrical":    "대칭 구도, 균형 잡힌 배치, 중앙 정렬, 정돈된 느낌",
	"rule_of_thirds": "삼분할 구도, 주요 요소가 교차점에 위치, 균형 잡힌 배치",
	"golden_ratio":   "황금비율 구도, 자연스러운 흐름, 조화로운 배치",
	"leading_lines":  "유도선 구도, 시선을 이끄는 선, 깊이감 있는 구성",
	"framing":        "프레이밍 구도, 자연적 프레임 활용, 액자 효과, 주제 강조",
}

var imagenLightings = map[string]string{
	"natural":     "자연광, 부드러운 햇빛, 균일한 조명, 자연스러운 그림자",
	"golden_hour": "황금빛 시간, 따뜻한 주황색 조명, 긴 그림자, 로맨틱한 분위기",
	"blue_hour":   "블루 아워, 푸른 톤, 황혼, 차분한 분위기",
	"dramatic":    "드라마틱한 조명, 강한 대비, 선명한 그림자, 집중 조명",
	"studio":      "스튜디오 조명, 균일한 빛, 전문적인 설정, 깔끔한 배경",
	"backlight":   "역광, 실루엣 효과, 빛나는 윤곽선, 신비로운 분위기",
	"neon":        "네온 조명, 선명한 색상의 인공 조명, 도시적 분위기, 사이버펑크",
	"candlelight": "촛불 조명, 따뜻한 주황색 빛, 부드러운 그림자, 아늑한 분위기",
	"moonlight":   "달빛, 푸른 색조, 부드러운 그림자, 신비로운 분위기",
}

var imagenMoods = map[string]string{
	"landscape": "평화롭고 고요한 분위기",
	"portrait":  "자연스럽고 친근한 분위기",
	"product":   "전문적이고 깔끔한 분위기",
}

var imagenNegatives = map[string]string{
	"general":   "저품질, 흐릿함, 왜곡된 비율, 기형적인 특징, 비현실적인 색상, 불균형한 구도",
	"portrait":  "왜곡된 얼굴, 비현실적인 피부, 기형적인 신체 비율, 흐릿한 얼굴 특징, 부자연스러운 포즈",
	"landscape": "흐릿한 배경, 불균형한 지평선, 부자연스러운 색상, 왜곡된 원근법, 비현실적인 조명",
	"product":   "저품질 제품 이미지, 흐릿한 디테일, 왜곡된 제품 형태, 부자연스러운 그림자, 비현실적인 반사",
	"text":      "텍스트, 글자, 워터마크, 서명, 로고, 잘못된 글자, 흐릿한 텍스트",
}

var imagenTechnical = map[domain.Complexity][]string{
	domain.HighComplexity:   {"8K 해상도", "초고해상도", "세밀한 디테일", "고품질 렌더링", "전문가 수준의 품질"},
	domain.MediumComplexity: {"고해상도", "상세한 묘사", "전문적인 품질"},
	domain.LowComplexity:    {"표준 해상도", "깔끔한 이미지"},
}

func NewImagen3() *Imagen3 {
	tips, fallback := imageTips("Imagen 3")
	return &Imagen3{Base: Base{
		info: domain.ModelInfo{
			ModelID:            "imagen-3",
			ModelName:          "Imagen 3",
			Provider:           "Google",
			Category:           domain.ImageCategory,
			Capabilities:       slices.Clone(imageCapabilities),
			MaxTokens:          1000,
			SupportsMultimodal: false,
			BestPractices: []string{
				"상세한 시각적 설명 제공",
				"구체적인 스타일과 분위기 명시",
				"구도와 시점 지정",
				"색상 팔레트 설명",
				"참조 아티스트나 스타일 언급",
				"부정적 프롬프트 활용",
			},
		},
		structure: sameOrder(append(slices.Clone(imageStructure), "negative_prompt"),
			"color_palette", "mood_atmosphere", "technical_specifications", "negative_prompt"),
		tips:         tips,
		fallbackTips: fallback,
		rules:        DefaultRules,
	}}
}

// OptimizePrompt renders "Prompt: ...\nNegative prompt: ...". The common rules apply to the positive part only.
func (m *Imagen3) OptimizePrompt(f domain.FeatureRecord, _ domain.IntentRecord) string {
	subject := imageSubjects.Detect(f)
	style := imageStyleOf(f)
	positive := m.finish(Join(commaJoin,
		Fill(imagenSubjectTemplates[subject], ExtractSlots(f.RawText, imageSlots[subject])),
		lookup(imagenStyles, style, style),
		lookup(imagenCompositions, compositionOf(f, subject), compositionOf(f, subject)),
		lookup(imagenLightings, lightingOf(f, subject), lightingOf(f, subject)),
		colorPalette(f),
		m.mood(f, subject),
		m.technical(f, style),
	))
	return "Prompt: " + positive + "\nNegative prompt: " + m.negative(f, subject)
}

func (m *Imagen3) mood(f domain.FeatureRecord, subject string) string {
	if mood, ok := f.Overrides.String("mood"); ok {
		return "분위기: " + lookup(moodText, mood, mood)
	}
	return lookup(imagenMoods, subject, "균형 잡힌 분위기")
}

func (m *Imagen3) technical(f domain.FeatureRecord, style string) string {
	specs := slices.Clone(imagenTechnical[f.Complexity])
	if style == "photorealistic" {
		specs = append(specs, "사진 사실적 렌더링")
	}
	specs = append(specs, "Imagen 3 품질", "정확한 텍스트 렌더링", "자연스러운 색상 재현")
	return strings.Join(specs, ", ")
}

// negative always starts with the general list and keeps a stable order.
func (m *Imagen3) negative(f domain.FeatureRecord, subject string) string {
	parts := []string{imagenNegatives["general"]}
	if n, ok := imagenNegatives[subject]; ok {
		parts = append(parts, n)
	}
	switch f.Complexity {
	case domain.HighComplexity:
		parts = append(parts, "단순한 구성, 낮은 품질, 부정확한 묘사")
	case domain.LowComplexity:
		parts = append(parts, "과도하게 복잡한 구성, 불필요한 세부 사항")
	}
	if lo.ContainsBy(f.Constraints.Exclude, func(e string) bool { return strings.Contains(e, "텍스트") }) {
		parts = append(parts, imagenNegatives["text"])
	}
	return strings.Join(lo.Uniq(parts), ", ")
}

func (m *Imagen3) GenerationParameters(f domain.FeatureRecord, _ domain.IntentRecord) map[string]any {
	params := map[string]any{
		"width":               1024,
		"height":              1024,
		"num_inference_steps": 50,
		"guidance_scale":      7.5,
		"quality":             "standard",
		"format":              "png",
	}
	subject := imageSubjects.Detect(f)
	if size, ok := imageSizes[subject]; ok {
		params["width"], params["height"], params["aspect_ratio"] = size.Width, size.Height, size.AspectRatio
	}
	if subject == "product" {
		params["background_removal"] = true
	}
	switch f.Complexity {
	case domain.HighComplexity:
		params["width"], params["height"] = 1280, 1280
		params["num_inference_steps"] = 75
		params["guidance_scale"] = 8.0
		params["quality"] = "premium"
		params["detail_enhancement"] = true
	case domain.LowComplexity:
		params["num_inference_steps"] = 30
		params["guidance_scale"] = 6.0
		params["quality"] = "fast"
	}
	switch style := imageStyleOf(f); {
	case style == "photorealistic":
		params["sampler"] = "DPM++ 2M Karras"
		params["guidance_scale"] = 7.0
		params["realism_boost"] = true
	case style == "anime":
		params["sampler"] = "DPM++ SDE Karras"
		params["guidance_scale"] = 9.0
		params["anime_style"] = true
	case artisticStyles[style]:
		params["sampler"] = "Euler a"
		params["guidance_scale"] = 8.5
		params["artistic_enhancement"] = true
	}
	params["text_rendering"] = true
	params["safety_filter"] = true
	params["watermark"] = false
	params["enhance_details"] = true
	return params
}

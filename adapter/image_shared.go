package adapter

import (
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"strings"
)

// Subject classification shared by the image adapters.
var imageSubjects = NewSubtypes("subject", []matcher.Rule{
	{Label: "landscape", Keywords: []string{"풍경", "자연", "산", "바다", "호수", "숲", "하늘", "일몰", "일출"}},
	{Label: "portrait", Keywords: []string{"인물", "사람", "얼굴", "초상화", "셀카", "프로필"}},
	{Label: "product", Keywords: []string{"제품", "상품", "물건", "광고", "쇼핑", "판매"}},
	{Label: "concept_art", Keywords: []string{"컨셉", "아트", "판타지", "미래", "상상", "창의적"}},
	{Label: "abstract", Keywords: []string{"추상", "비현실적", "기하학적", "패턴", "형태"}},
	{Label: "architecture", Keywords: []string{"건물", "건축", "구조물", "도시", "인테리어", "외관"}},
	{Label: "food", Keywords: []string{"음식", "요리", "식사", "디저트", "음료", "맛있는"}},
}, "landscape")

var timeOfDaySlot = Slot{Name: "time_of_day", Values: []string{"아침", "낮", "저녁", "밤", "일출", "일몰", "황혼", "새벽"}}

var imageSlots = map[string][]Slot{
	"landscape": {
		timeOfDaySlot,
		{Name: "weather", Values: []string{"맑은", "흐린", "비", "눈", "안개", "폭풍", "구름"}},
		{Name: "perspective", Values: []string{"조감도", "항공", "드론", "위에서", "아래에서", "멀리서", "가까이서"}},
	},
	"portrait": {
		{Name: "pose", Values: []string{"서있는", "앉아있는", "누워있는", "걷는", "뛰는", "기대어 있는"}},
		{Name: "expression", Values: []string{"웃는", "미소", "진지한", "슬픈", "화난", "놀란", "평온한"}},
		{Name: "lighting", Values: []string{"자연광", "스튜디오", "백라이트", "측면광", "부드러운 조명", "강한 조명"}},
		{Name: "background", Values: []string{"실내", "실외", "자연", "도시", "단색", "흐린", "스튜디오"}},
	},
	"product": {
		{Name: "background", Values: []string{"흰색 배경", "단색", "스튜디오", "실내", "실외"}},
		{Name: "angle", Values: []string{"정면", "측면", "45도", "위에서", "클로즈업"}},
	},
	"concept_art": {
		{Name: "mood", Values: []string{"신비로운", "어두운", "밝은", "웅장한", "평화로운"}},
	},
	"abstract": {
		{Name: "texture", Values: []string{"부드러운", "거친", "매끄러운", "금속성", "유리"}},
	},
	"architecture": {
		{Name: "architectural_style", Values: []string{"모던", "고딕", "한옥", "미래적", "빈티지", "미니멀"}},
		timeOfDaySlot,
	},
	"food": {
		{Name: "presentation", Values: []string{"접시", "그릇", "도마", "테이블"}},
		{Name: "background", Values: []string{"나무 테이블", "대리석", "단색", "실내", "야외"}},
	},
}

// Visual style keywords, separate from the writing styles of the feature record.
var imageStyleMatcher = matcher.MustNew([]matcher.Rule{
	{Label: "photorealistic", Keywords: []string{"사실적", "실사", "포토리얼", "사진 같은", "photorealistic", "realistic"}},
	{Label: "cinematic", Keywords: []string{"영화", "시네마틱", "cinematic"}},
	{Label: "anime", Keywords: []string{"애니메이션", "애니", "만화", "anime", "manga"}},
	{Label: "digital_art", Keywords: []string{"디지털 아트", "디지털", "digital art"}},
	{Label: "oil_painting", Keywords: []string{"유화", "oil painting"}},
	{Label: "watercolor", Keywords: []string{"수채화", "watercolor"}},
	{Label: "3d_render", Keywords: []string{"3d", "렌더링", "render"}},
	{Label: "pixel_art", Keywords: []string{"픽셀", "pixel"}},
	{Label: "minimalist", Keywords: []string{"미니멀", "심플", "간결", "minimalist"}},
	{Label: "fantasy", Keywords: []string{"판타지", "마법", "fantasy"}},
})

const defaultImageStyle = "photorealistic"

// imageStyleOf returns the style override as is, else the visual style found in the text.
func imageStyleOf(f domain.FeatureRecord) string {
	if s, ok := f.Overrides.String("style"); ok {
		return s
	}
	return imageStyleMatcher.Best(f.RawText, defaultImageStyle)
}

// artisticStyles share the painterly sampler settings.
var artisticStyles = map[string]bool{
	"artistic":     true,
	"oil_painting": true,
	"watercolor":   true,
	"digital_art":  true,
	"fantasy":      true,
}

var defaultCompositions = map[string]string{
	"landscape": "wide_shot",
	"portrait":  "rule_of_thirds",
	"product":   "close_up",
}

var defaultLightings = map[string]string{
	"landscape": "golden_hour",
	"portrait":  "natural",
	"product":   "studio",
}

// compositionOf resolves the composition key: override first, then the subject default.
func compositionOf(f domain.FeatureRecord, subject string) string {
	if c, ok := f.Overrides.String("composition"); ok {
		return c
	}
	return lookup(defaultCompositions, subject, "rule_of_thirds")
}

func lightingOf(f domain.FeatureRecord, subject string) string {
	if l, ok := f.Overrides.String("lighting"); ok {
		return l
	}
	return lookup(defaultLightings, subject, "natural")
}

var paletteText = map[string]string{
	"warm":    "따뜻한 색상 팔레트, 주황색, 노란색, 빨간색 계열",
	"cool":    "차가운 색상 팔레트, 파란색, 보라색, 청록색 계열",
	"neutral": "중립적인 색상 팔레트, 베이지, 회색, 갈색 계열",
	"vibrant": "선명한 색상 팔레트, 강렬한 원색, 높은 채도",
	"pastel":  "파스텔 색상 팔레트, 부드러운 색조, 낮은 채도",
}

// colorPalette renders explicit colors, else a palette named by the palette or mood override.
func colorPalette(f domain.FeatureRecord) string {
	if colors := f.Overrides.Strings("colors"); len(colors) > 0 {
		return "색상 팔레트: " + strings.Join(colors, ", ")
	}
	for _, key := range []string{"palette", "mood"} {
		if name, ok := f.Overrides.String(key); ok {
			if text, ok := paletteText[name]; ok {
				return text
			}
		}
	}
	return ""
}

var moodText = map[string]string{
	"warm":       "따뜻한 분위기, 아늑한 느낌",
	"cool":       "차가운 분위기, 시원한 느낌",
	"peaceful":   "평화로운 분위기, 고요한 느낌",
	"dramatic":   "드라마틱한 분위기, 강렬한 느낌",
	"mysterious": "신비로운 분위기, 비밀스러운 느낌",
	"romantic":   "로맨틱한 분위기, 감성적인 느낌",
	"energetic":  "활기찬 분위기, 역동적인 느낌",
	"nostalgic":  "노스탤직한 분위기, 향수를 불러일으키는 느낌",
	"futuristic": "미래적인 분위기, 첨단 기술적인 느낌",
	"vintage":    "빈티지한 분위기, 클래식한 느낌",
}

// imageSize maps a subject to its frame shape.
type imageSize struct {
	Width, Height int
	AspectRatio   string
}

var imageSizes = map[string]imageSize{
	"portrait":  {Width: 768, Height: 1024, AspectRatio: "3:4"},
	"landscape": {Width: 1024, Height: 768, AspectRatio: "4:3"},
	"product":   {Width: 1024, Height: 1024, AspectRatio: "1:1"},
}

func imageTips(model string) (map[string][]string, []string) {
	return map[string][]string{
			"image_generation": {
				"주제와 배경을 구체적인 시각적 묘사로 설명하세요.",
				"원하는 스타일과 분위기를 명확히 지정하세요.",
				"구도와 시점을 함께 제시하면 의도한 장면에 가까워집니다.",
			},
			"photorealistic_rendering": {
				"카메라, 렌즈, 조명 조건 같은 사진 용어를 활용하세요.",
				"질감과 재질을 구체적으로 묘사하세요.",
			},
			"artistic_rendering": {
				"참조할 화풍이나 예술 사조를 명시하세요.",
				"붓 터치, 질감, 색감 같은 표현 기법을 설명하세요.",
			},
			"concept_visualization": {
				"추상적인 개념은 구체적인 사물이나 장면으로 바꾸어 설명하세요.",
				"상징적인 요소와 색상을 함께 제시하세요.",
			},
			"style_transfer": {
				"원본 대상과 적용할 스타일을 분리해서 설명하세요.",
				"스타일의 강도를 표현하는 수식어를 사용하세요.",
			},
		}, []string{
			model + "는 이미지 생성에 특화된 모델입니다. 시각적 요소를 구체적으로 설명하세요.",
		}
}

var imageStructure = []string{
	"subject_description", "style_specification", "composition_details",
	"lighting_details", "color_palette", "mood_atmosphere", "technical_specifications",
}

var imageCapabilities = []string{
	"image_generation", "photorealistic_rendering", "artistic_rendering",
	"concept_visualization", "style_transfer",
}

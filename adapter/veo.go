package adapter

import (
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"slices"
	"strings"
)

// Veo3 renders labeled sections separated by blank lines, including a native audio section.
type Veo3 struct {
	Base
	concepts Subtypes
}

var veoConceptTemplates = map[string]string{
	"nature":    "자연 풍경 영상: {description}, {location}, {time_of_day}, {weather}",
	"urban":     "도시 풍경 영상: {description}, {location}, {time_of_day}, {activity}",
	"character": "인물 중심 영상: {description}, {character}, {action}, {location}, {time_of_day}",
	"narrative": "이야기 영상: {description}, {setting}",
	"abstract":  "추상적 영상: {description}, {visual_elements}, {movement}",
	"product":   "제품 영상: {description}, {background}",
	"travel":    "여행 영상: {description}, {location}, {landmarks}, {activities}",
}

var veoStyles = map[string]string{
	"cinematic":   "영화적인 스타일, 시네마틱한 구도, 영화 같은 색감과 조명",
	"documentary": "다큐멘터리 스타일, 사실적인 표현, 자연스러운 조명",
	"animation":   "애니메이션 스타일, 생동감 있는 움직임, 선명한 색상",
	"vintage":     "빈티지 스타일, 필름 그레인, 레트로한 색감, 아날로그 느낌",
	"futuristic":  "미래적인 스타일, 첨단 기술적 요소, 세련된 디자인, 미래 도시 분위기",
	"dreamy":      "몽환적인 스타일, 부드러운 포커스, 환상적인 분위기, 꿈같은 색감",
	"aerial":      "항공 촬영 스타일, 드론 시점, 넓은 풍경, 부드러운 움직임",
	"timelapse":   "타임랩스 스타일, 시간의 흐름 압축, 빠른 움직임, 자연스러운 전환",
	"slowmotion":  "슬로우 모션 스타일, 느린 움직임, 세부 동작 강조, 드라마틱한 효과",
	"handheld":    "핸드헬드 스타일, 약간의 흔들림, 다큐멘터리 느낌, 현장감",
}

var veoTransitions = map[string]string{
	"cut":         "컷 전환, 즉각적인 장면 변화",
	"fade":        "페이드 전환, 점진적으로 어두워지거나 밝아짐",
	"dissolve":    "디졸브 전환, 장면이 서서히 겹쳐짐",
	"wipe":        "와이프 전환, 한 장면이 다른 장면을 밀어냄",
	"zoom":        "줌 전환, 확대/축소를 통한 장면 변화",
	"whip_pan":    "휩 팬 전환, 빠른 패닝을 통한 장면 변화",
	"morph":       "모프 전환, 한 형태가 다른 형태로 변형됨",
	"match_cut":   "매치 컷 전환, 유사한 구도나 동작으로 연결",
	"time_lapse":  "타임랩스 전환, 시간의 흐름을 압축",
	"slow_motion": "슬로우 모션 전환, 시간을 늘려 세부 동작 강조",
}

var veoDefaultTransitions = map[string][]string{
	"nature":    {"dissolve", "time_lapse"},
	"urban":     {"cut", "whip_pan"},
	"character": {"match_cut", "fade"},
	"narrative": {"fade", "match_cut"},
	"abstract":  {"morph", "dissolve"},
	"product":   {"cut", "zoom"},
	"travel":    {"whip_pan", "dissolve"},
}

var veoScenes = map[string][]string{
	"nature": {
		"장면 1: 넓은 풍경 샷으로 시작, 자연의 아름다움을 보여줌",
		"장면 2: 세부적인 자연 요소에 집중, 클로즈업 샷으로 디테일 강조",
		"장면 3: 시간의 흐름을 보여주는 타임랩스, 자연의 변화 표현",
	},
	"urban": {
		"장면 1: 도시 스카이라인을 보여주는 와이드 샷, 도시의 규모와 활기를 표현",
		"장면 2: 거리의 사람들과 활동에 집중, 도시 생활의 역동성 포착",
		"장면 3: 도시의 특징적인 랜드마크나 건축물 클로즈업, 도시의 정체성 강조",
	},
	"character": {
		"장면 1: 캐릭터 소개, 환경과 상황 설정",
		"장면 2: 캐릭터의 주요 활동이나 행동 표현",
		"장면 3: 캐릭터의 감정이나 반응에 집중한 클로즈업",
	},
	"narrative": {
		"장면 1: 이야기의 배경과 주요 인물 소개",
		"장면 2: 주요 사건이나 갈등 전개",
		"장면 3: 이야기의 절정이나 해결 과정",
		"장면 4: 갈등이 해소된 뒤의 여운",
		"장면 5: 이야기를 마무리하는 에필로그",
	},
	"product": {
		"장면 1: 제품 전체 모습을 보여주는 와이드 샷",
		"장면 2: 제품의 주요 기능이나 특징을 강조하는 클로즈업",
		"장면 3: 제품 사용 장면이나 효과를 보여주는 실용적 샷",
	},
}

var veoDefaultScenes = []string{
	"장면 1: 주제 소개와 전체적인 분위기 설정",
	"장면 2: 주요 요소나 활동에 집중",
	"장면 3: 마무리와 결론을 제시하는 장면",
}

var veoDefaultCamera = map[string]string{
	"nature":    "부드러운 패닝 샷으로 풍경을 보여주고, 중간에 드론 항공 샷을 통해 넓은 시야를 제공, 마지막에는 세부 요소에 대한 클로즈업 샷",
	"urban":     "도시 스카이라인을 보여주는 크레인 샷으로 시작, 트래킹 샷으로 거리의 활동을 따라가고, 스테디캠으로 부드럽게 움직이며 도시 생활 포착",
	"character": "캐릭터를 소개하는 미디엄 샷으로 시작, 캐릭터의 행동을 따라가는 트래킹 샷, 감정을 강조하는 클로즈업 샷",
	"narrative": "장면 설정을 위한 와이드 샷, 이야기 전개에 따른 다양한 카메라 움직임, 중요한 순간에는 슬로우 모션과 클로즈업 활용",
	"product":   "제품 전체 모습을 보여주는 와이드 샷, 제품의 주요 기능이나 특징을 강조하는 클로즈업, 제품 사용 장면이나 효과를 보여주는 실용적 샷",
}

var veoAudio = map[string]string{
	"nature":    "바람 소리, 새소리, 물 흐르는 소리 같은 자연의 앰비언트 사운드",
	"urban":     "차량 소음, 사람들의 대화, 도시의 활기찬 환경음",
	"character": "캐릭터의 대사와 발소리, 감정을 받쳐주는 배경 음악",
	"narrative": "장면 전개에 맞춰 고조되는 배경 음악과 효과음",
	"abstract":  "실험적인 전자음과 공간감 있는 사운드 디자인",
	"product":   "깔끔하고 세련된 배경 음악, 제품 동작 효과음",
	"travel":    "현지의 환경음과 경쾌한 여행 배경 음악",
}

const maxVeoScenes = 5

func NewVeo3() *Veo3 {
	tips, fallback := videoTips("Google Veo 3")
	tips["narrative_control"] = []string{
		"장면 수와 각 장면의 역할을 명시하세요.",
		"대사나 효과음이 필요하면 오디오 섹션에 따로 적으세요.",
	}
	return &Veo3{
		Base: Base{
			info: domain.ModelInfo{
				ModelID:            "google-veo-3",
				ModelName:          "Google Veo 3",
				Provider:           "Google",
				Category:           domain.VideoCategory,
				Capabilities:       append(slices.Clone(videoCapabilities), "narrative_control"),
				MaxTokens:          1500,
				SupportsMultimodal: false,
				BestPractices: []string{
					"명확한 장면 설명 제공",
					"카메라 움직임과 전환 명시",
					"시간적 흐름과 내러티브 구조화",
					"시각적 스타일과 분위기 설정",
					"캐릭터 동작과 상호작용 설명",
					"장면별 세부 사항 제공",
				},
			},
			structure: sameOrder([]string{
				"video_concept", "scene_descriptions", "camera_movements", "transitions",
				"visual_style", "audio_description", "narrative_flow", "technical_specifications",
			}, "audio_description", "narrative_flow", "technical_specifications"),
			tips:         tips,
			fallbackTips: fallback,
			rules:        DefaultRules,
		},
		concepts: NewSubtypes("scene", []matcher.Rule{
			natureScene, urbanScene, characterScene, narrativeScene, abstractScene, productScene,
			{Label: "travel", Keywords: []string{"여행", "관광", "탐험", "모험", "방문", "명소", "랜드마크"}},
		}, "narrative"),
	}
}

func (m *Veo3) OptimizePrompt(f domain.FeatureRecord, _ domain.IntentRecord) string {
	concept := m.concepts.Detect(f)
	slots := sceneSlots(f.RawText, concept)
	return m.finish(Join(blankJoin,
		labeled("비디오 컨셉", Fill(veoConceptTemplates[concept], slots)),
		labeled("장면 설명", strings.Join(m.scenes(f, concept), lineJoin)),
		labeled("카메라 움직임", m.camera(f, concept, slots)),
		labeled("전환", m.transitions(f, concept)),
		labeled("시각적 스타일", videoStyleText(f, veoStyles)),
		labeled("오디오", m.audio(f, concept)),
		labeled("내러티브", m.narrative(f, concept)),
		labeled("기술적 명세", videoTechnical(m.GenerationParameters(f, domain.IntentRecord{}))),
	))
}

// labeled prefixes a non-empty section with its title.
func labeled(title, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return title + ": " + body
}

// scenes returns the scene breakdown, three by default and at most five.
func (m *Veo3) scenes(f domain.FeatureRecord, concept string) []string {
	scenes, ok := veoScenes[concept]
	if !ok {
		scenes = veoDefaultScenes
	}
	n := 3
	if c, ok := f.Overrides.Int("scene_count"); ok && c > 0 {
		n = min(c, maxVeoScenes)
	}
	return scenes[:min(n, len(scenes))]
}

func (m *Veo3) camera(f domain.FeatureRecord, concept string, slots map[string]string) string {
	if moves := cameraMovements(f, slots, cameraText); moves != nil {
		return strings.Join(moves, ", ")
	}
	return lookup(veoDefaultCamera, concept, "주제 소개를 위한 와이드 샷, 주요 요소나 활동에 집중하는 클로즈업, 마무리를 위한 와이드 샷")
}

func (m *Veo3) transitions(f domain.FeatureRecord, concept string) string {
	labels := f.Overrides.Strings("transitions")
	if len(labels) == 0 {
		labels = veoDefaultTransitions[concept]
	}
	texts := make([]string, 0, len(labels))
	for _, l := range labels {
		texts = append(texts, lookup(veoTransitions, l, l))
	}
	return strings.Join(texts, ", ")
}

func (m *Veo3) audio(f domain.FeatureRecord, concept string) string {
	if a, ok := f.Overrides.String("audio"); ok {
		return a
	}
	return veoAudio[concept]
}

// narrative only applies to story-driven concepts or when the complexity asks for a full arc.
func (m *Veo3) narrative(f domain.FeatureRecord, concept string) string {
	switch {
	case concept == "narrative":
		return "도입, 전개, 절정, 결말의 구조로 이야기를 전개합니다"
	case f.Complexity == domain.HighComplexity:
		return "장면마다 분명한 목적을 두고 자연스럽게 이어지도록 구성합니다"
	}
	return ""
}

func (m *Veo3) GenerationParameters(f domain.FeatureRecord, _ domain.IntentRecord) map[string]any {
	params := map[string]any{
		"duration":       8,
		"resolution":     "1280x720",
		"fps":            24,
		"aspect_ratio":   "16:9",
		"generate_audio": true,
		"format":         "mp4",
	}
	switch f.Complexity {
	case domain.HighComplexity:
		params["resolution"] = "1920x1080"
		params["quality"] = "high"
	case domain.LowComplexity:
		params["quality"] = "fast"
	default:
		params["quality"] = "standard"
	}
	if videoStyleOf(f) == "slowmotion" {
		params["fps"] = 60
	}
	if a, ok := f.Overrides.String("aspect_ratio"); ok && (a == "16:9" || a == "9:16") {
		params["aspect_ratio"] = a
	}
	return params
}

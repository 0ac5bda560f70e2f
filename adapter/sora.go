package adapter

import (
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"slices"
	"strings"
)

// Sora renders one paragraph of space-joined sentences.
type Sora struct {
	Base
	scenes Subtypes
}

var soraSceneTemplates = map[string]string{
	"nature":    "자연 풍경: {description}, {location}, {time_of_day}, {weather}",
	"urban":     "도시 풍경: {description}, {location}, {time_of_day}, {activity}",
	"character": "인물 장면: {description}, {character}, {action}, {location}, {time_of_day}",
	"narrative": "이야기 영상: {description}, {setting}",
	"abstract":  "추상적 영상: {description}, {visual_elements}, {movement}",
	"physical":  "물리적 상호작용 장면: {description}, {objects}, {forces}, {movement}",
	"fantasy":   "환상적인 장면: {description}, {magical_elements}",
}

var soraStyles = map[string]string{
	"cinematic":      "영화적인 스타일, 시네마틱한 구도, 영화 같은 색감과 조명, 영화 품질의 비주얼",
	"documentary":    "다큐멘터리 스타일, 사실적인 표현, 자연스러운 조명, 관찰자적 시점",
	"animation":      "애니메이션 스타일, 생동감 있는 움직임, 선명한 색상, 과장된 표현",
	"vintage":        "빈티지 스타일, 필름 그레인, 레트로한 색감, 아날로그 느낌, 오래된 영화 분위기",
	"futuristic":     "미래적인 스타일, 첨단 기술적 요소, 세련된 디자인, 미래 도시 분위기, 하이테크 시각 효과",
	"dreamy":         "몽환적인 스타일, 부드러운 포커스, 환상적인 분위기, 꿈같은 색감, 초현실적 요소",
	"hyperrealistic": "초현실적 스타일, 극도로 세밀한 디테일, 완벽한 물리 시뮬레이션, 사실적인 질감과 조명",
	"photorealistic": "초현실적 스타일, 극도로 세밀한 디테일, 완벽한 물리 시뮬레이션, 사실적인 질감과 조명",
	"stylized":       "양식화된 스타일, 독특한 미학, 과장된 특징, 예술적 해석, 비사실적 표현",
	"minimalist":     "미니멀리스트 스타일, 단순한 형태, 제한된 색상 팔레트, 깔끔한 구성, 불필요한 요소 제거",
	"fantasy":        "판타지 스타일, 마법적인 요소, 초현실적인 풍경, 신비로운 분위기, 환상적인 생물과 현상",
}

var soraCameraText = map[string]string{
	"static":    "고정된 카메라, 움직임 없음, 안정적인 프레임",
	"pan":       "패닝 샷, 카메라가 수평으로 움직임, 풍경이나 환경을 보여주는 움직임",
	"tilt":      "틸트 샷, 카메라가 수직으로 움직임, 위아래로 시선 이동",
	"tracking":  "트래킹 샷, 카메라가 피사체를 따라 움직임, 일정한 거리 유지",
	"dolly":     "돌리 샷, 카메라가 앞뒤로 움직임, 피사체에 접근하거나 멀어짐",
	"zoom":      "줌 샷, 카메라가 확대/축소됨, 시점 변화 없이 시야 조정",
	"aerial":    "항공 샷, 위에서 내려다보는 시점, 넓은 풍경이나 환경 조망",
	"crane":     "크레인 샷, 카메라가 위아래로 움직임, 높은 곳에서 낮은 곳으로 이동",
	"steadicam": "스테디캠 샷, 부드럽게 움직이는 카메라, 자연스러운 시점 이동",
	"handheld":  "핸드헬드 샷, 약간 흔들리는 카메라, 현실감과 긴장감 부여",
}

var soraPhysicsText = map[string]string{
	"gravity":        "중력에 의한 자연스러운 낙하, 물체가 땅으로 떨어짐",
	"collision":      "물체 간의 충돌, 충격과 반동, 물리적 상호작용",
	"fluid":          "유체의 흐름과 움직임, 물, 연기, 안개 등의 자연스러운 시뮬레이션",
	"wind":           "바람에 의한 움직임, 나뭇잎, 머리카락, 옷 등이 바람에 흔들림",
	"deformation":    "물체의 변형, 구부러짐, 찌그러짐, 늘어남 등의 물리적 변화",
	"particle":       "입자 효과, 먼지, 불꽃, 빗방울 등의 미세한 입자 움직임",
	"soft_body":      "부드러운 물체의 움직임, 천, 젤리, 고무 등의 자연스러운 변형",
	"rigid_body":     "단단한 물체의 움직임, 돌, 금속, 나무 등의 물리적 상호작용",
	"chain_reaction": "연쇄 반응, 도미노 효과, 하나의 움직임이 다른 움직임을 유발",
}

var soraDefaultPhysics = map[string]string{
	"nature":   "자연스러운 물리적 상호작용: 나뭇잎이 바람에 흔들리고 물이 자연스럽게 흐르며 빛이 표면에 반사됩니다",
	"urban":    "도시 환경의 물리적 상호작용: 사람들의 자연스러운 움직임과 차량의 흐름, 빛이 건물 표면에 반사됩니다",
	"physical": "정확한 물리 시뮬레이션: 중력에 의한 자연스러운 낙하, 물체 간의 사실적인 충돌과 반응, 관성과 마찰력의 영향이 명확하게 표현됩니다",
}

var soraDefaultCamera = map[string]string{
	"nature":    "부드러운 패닝 샷으로 자연 풍경을 보여주고, 중간에 드론 항공 샷으로 넓은 시야를 제공합니다",
	"urban":     "도시 풍경을 보여주는 크레인 샷으로 시작하여, 트래킹 샷으로 거리의 활동을 따라갑니다",
	"character": "캐릭터를 따라가는 부드러운 트래킹 샷, 감정을 강조하는 클로즈업 샷이 포함됩니다",
	"physical":  "물리적 상호작용을 명확히 보여주는 최적의 각도, 중요한 순간에는 슬로우 모션으로 세부 사항을 강조합니다",
}

var soraTemporalText = map[domain.Complexity]string{
	domain.HighComplexity:   "시간적 흐름: 여러 장면이 자연스럽게 이어지며 도입, 전개, 절정, 마무리의 구조를 따릅니다",
	domain.MediumComplexity: "시간적 흐름: 도입에서 전개로 자연스럽게 이어지는 연속적인 장면",
	domain.LowComplexity:    "시간적 흐름: 하나의 연속된 장면",
}

var soraLightingText = map[string]string{
	"natural":     "자연광, 부드러운 햇빛",
	"golden_hour": "황금빛 시간의 따뜻한 조명과 긴 그림자",
	"blue_hour":   "블루 아워의 푸른 톤과 차분한 분위기",
	"dramatic":    "강한 대비의 드라마틱한 조명",
	"neon":        "네온 조명이 비추는 도시적 분위기",
	"moonlight":   "푸른 달빛과 부드러운 그림자",
}

func NewSora() *Sora {
	tips, fallback := videoTips("Sora")
	tips["physical_simulation"] = []string{
		"물체의 재질과 무게를 설명하면 물리적 상호작용이 더 사실적으로 표현됩니다.",
		"중력, 충돌, 유체 같은 물리 현상을 명시하세요.",
	}
	tips["narrative_control"] = []string{
		"장면의 시작, 전개, 결말을 순서대로 설명하세요.",
	}
	return &Sora{
		Base: Base{
			info: domain.ModelInfo{
				ModelID:            "sora",
				ModelName:          "Sora",
				Provider:           "OpenAI",
				Category:           domain.VideoCategory,
				Capabilities:       append(slices.Clone(videoCapabilities), "narrative_control", "physical_simulation"),
				MaxTokens:          1000,
				SupportsMultimodal: false,
				BestPractices: []string{
					"상세하고 구체적인 장면 설명 제공",
					"물리적 상호작용과 움직임 명시",
					"시각적 스타일과 분위기 설정",
					"카메라 움직임과 시점 지정",
					"시간적 흐름과 내러티브 구조화",
					"공간적 관계와 환경 설명",
				},
			},
			structure: sameOrder([]string{
				"scene_description", "physical_interactions", "camera_movements", "visual_style",
				"temporal_flow", "spatial_relationships", "lighting_atmosphere", "technical_specifications",
			}, "physical_interactions", "temporal_flow", "spatial_relationships", "lighting_atmosphere", "technical_specifications"),
			tips:         tips,
			fallbackTips: fallback,
			rules:        DefaultRules,
		},
		scenes: NewSubtypes("scene", []matcher.Rule{
			natureScene, urbanScene, characterScene, narrativeScene, abstractScene,
			{Label: "physical", Keywords: []string{"물리", "중력", "충돌", "폭발", "낙하", "물", "유체", "역학"}},
			{Label: "fantasy", Keywords: []string{"판타지", "마법", "초현실", "환상", "신비", "초자연적"}},
		}, "narrative"),
	}
}

func (m *Sora) OptimizePrompt(f domain.FeatureRecord, _ domain.IntentRecord) string {
	scene := m.scenes.Detect(f)
	slots := sceneSlots(f.RawText, scene)
	return m.finish(Join(spaceJoin,
		sentence(Fill(soraSceneTemplates[scene], slots)),
		sentence(m.physics(f, scene)),
		sentence(m.camera(f, scene, slots)),
		sentence(videoStyleText(f, soraStyles)),
		sentence(soraTemporalText[f.Complexity]),
		sentence(m.spatial(f)),
		sentence(m.lighting(f)),
		sentence("기술적 명세: "+videoTechnical(m.GenerationParameters(f, domain.IntentRecord{}))),
	))
}

func (m *Sora) physics(f domain.FeatureRecord, scene string) string {
	if requested := f.Overrides.Strings("physics"); len(requested) > 0 {
		texts := make([]string, 0, len(requested))
		for _, p := range requested {
			texts = append(texts, lookup(soraPhysicsText, p, p))
		}
		return "물리적 상호작용: " + strings.Join(texts, ", ")
	}
	return lookup(soraDefaultPhysics, scene, "사실적인 물리 법칙을 따르는 자연스러운 움직임과 상호작용")
}

func (m *Sora) camera(f domain.FeatureRecord, scene string, slots map[string]string) string {
	if moves := cameraMovements(f, slots, soraCameraText); moves != nil {
		return "카메라 움직임: " + strings.Join(moves, ", ")
	}
	return lookup(soraDefaultCamera, scene, "영상의 내용과 분위기에 맞는 자연스러운 카메라 움직임")
}

// spatial lists the include constraints as elements that must be placed in the scene.
func (m *Sora) spatial(f domain.FeatureRecord) string {
	if s, ok := f.Overrides.String("spatial"); ok {
		return "공간적 관계: " + s
	}
	if len(f.Constraints.Include) > 0 {
		return "화면에 포함될 요소: " + strings.Join(f.Constraints.Include, ", ")
	}
	return ""
}

func (m *Sora) lighting(f domain.FeatureRecord) string {
	if l, ok := f.Overrides.String("lighting"); ok {
		return "조명: " + lookup(soraLightingText, l, l)
	}
	return ""
}

func (m *Sora) GenerationParameters(f domain.FeatureRecord, _ domain.IntentRecord) map[string]any {
	params := map[string]any{
		"duration":   15,
		"resolution": "1024x576",
		"fps":        24,
		"quality":    "high",
		"format":     "mp4",
	}
	switch f.Complexity {
	case domain.HighComplexity:
		params["duration"] = 30
		params["resolution"] = "1280x720"
		params["quality"] = "ultra"
		params["camera_movements"] = []string{"pan", "zoom", "track"}
		params["scene_complexity"] = "high"
	case domain.LowComplexity:
		params["duration"] = 10
		params["resolution"] = "720x480"
		params["camera_movements"] = []string{"static"}
		params["scene_complexity"] = "simple"
	default:
		params["camera_movements"] = []string{"pan", "zoom"}
		params["scene_complexity"] = "medium"
	}
	switch videoStyleOf(f) {
	case "cinematic":
		params["fps"] = 30
		params["aspect_ratio"] = "16:9"
		params["color_grading"] = "cinematic"
	case "animation", "3d_animation":
		params["style"] = "animated"
		params["fps"] = 12
	case "photorealistic", "hyperrealistic":
		params["realism"] = "high"
		params["physics"] = "accurate"
	}
	if d, ok := f.Overrides.Int("duration"); ok && d > 0 {
		params["duration"] = d
	}
	params["temporal_consistency"] = true
	params["physics_simulation"] = true
	params["character_consistency"] = true
	params["scene_transitions"] = "smooth"
	return params
}

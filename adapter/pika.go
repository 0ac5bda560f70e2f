package adapter

import (
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"slices"
	"strings"
)

// Pika renders a short comma-joined prompt tuned for clips synced to music.
type Pika struct {
	Base
	scenes Subtypes
}

var pikaSceneTemplates = map[string]string{
	"nature":      "자연 풍경: {description}, {location}, {time_of_day}, {weather}",
	"urban":       "도시 풍경: {description}, {location}, {time_of_day}, {activity}",
	"character":   "인물 장면: {description}, {character}, {action}, {location}, {time_of_day}",
	"music_video": "뮤직비디오: {description}, {music_style}, {theme}, {visual_elements}",
	"abstract":    "추상적 영상: {description}, {visual_elements}, {movement}",
	"product":     "제품 영상: {description}, {background}",
	"animation":   "애니메이션: {description}, {animation_style}, {character}, {action}, {setting}",
}

var pikaStyles = map[string]string{
	"cinematic":      "영화적인 스타일, 시네마틱한 구도, 영화 같은 색감과 조명",
	"animation":      "애니메이션 스타일, 선명한 윤곽선, 생동감 있는 색상, 2D 애니메이션 느낌",
	"anime":          "애니메이션 스타일, 선명한 윤곽선, 생동감 있는 색상, 2D 애니메이션 느낌",
	"3d_animation":   "3D 애니메이션 스타일, 입체적인 모델링, 부드러운 텍스처, 컴퓨터 그래픽스",
	"vintage":        "빈티지 스타일, 필름 그레인, 레트로한 색감, 아날로그 느낌",
	"futuristic":     "미래적인 스타일, 첨단 기술적 요소, 세련된 디자인, 네온 색상, 홀로그램 효과",
	"dreamy":         "몽환적인 스타일, 부드러운 포커스, 환상적인 분위기, 꿈같은 색감",
	"stylized":       "양식화된 스타일, 독특한 미학, 과장된 특징, 예술적 해석",
	"photorealistic": "사진처럼 사실적인 스타일, 정확한 디테일, 자연스러운 조명, 현실적인 텍스처",
	"pixel_art":      "픽셀 아트 스타일, 레트로 게임 그래픽, 제한된 색상 팔레트, 픽셀화된 이미지",
	"watercolor":     "수채화 스타일, 부드러운 색상 혼합, 투명한 질감, 물감 효과",
}

var pikaDefaultStyles = map[string]string{
	"music_video": "stylized",
	"abstract":    "dreamy",
	"animation":   "3d_animation",
}

var pikaDefaultCamera = map[string]string{
	"nature":      "부드러운 패닝 샷, 자연 풍경을 넓게 보여주는 움직임",
	"urban":       "역동적인 트래킹 샷, 도시의 활기를 따라가는 움직임",
	"character":   "캐릭터를 따라가는 부드러운 트래킹 샷",
	"music_video": "음악의 리듬에 맞춘 역동적인 카메라 움직임, 비트에 맞는 전환",
	"animation":   "부드럽고 유동적인 카메라 움직임, 캐릭터의 동작을 강조하는 앵글",
}

var pikaMusicSync = map[string]string{
	"beat":       "음악의 비트에 맞춘 영상 전환과 움직임",
	"rhythm":     "리듬에 맞춘 시각적 요소의 변화와 움직임",
	"melody":     "멜로디 라인을 따라가는 부드러운 시각적 흐름",
	"drop":       "음악의 드롭(고조) 부분에서 극적인 시각적 변화",
	"tempo":      "음악의 템포에 맞춘 영상의 속도와 페이스",
	"mood":       "음악의 분위기와 조화를 이루는 시각적 톤과 색감",
	"lyrics":     "가사의 내용과 연결되는 시각적 내러티브",
	"instrument": "특정 악기 소리에 반응하는 시각적 요소",
}

var pikaDefaultSync = map[string]string{
	"nature":      "자연스러운 음악 동기화, 자연 풍경을 더욱 아름답게 표현",
	"urban":       "도시의 활기와 밝은 분위기에 맞춘 음악 동기화",
	"character":   "캐릭터의 감정과 행동에 맞춘 음악 동기화",
	"music_video": "뮤직비디오의 내용과 분위기에 맞춘 음악 동기화",
	"animation":   "애니메이션의 분위기와 캐릭터의 동작에 맞춘 음악 동기화",
}

var pikaEffects = map[string]string{
	"music_video": "네온 글로우, 빛 번짐, 비트에 맞춘 플래시 효과",
	"abstract":    "입자 효과, 색상 변화, 형태 변형",
	"animation":   "부드러운 모션 블러, 생동감 있는 색상 효과",
	"product":     "반사광 하이라이트, 깔끔한 배경 효과",
}

func NewPika() *Pika {
	tips, fallback := videoTips("Pika")
	tips["style_transfer"] = []string{
		"참조 이미지를 함께 제공하면 원하는 스타일을 더 정확히 반영할 수 있습니다.",
	}
	tips["music_sync"] = []string{
		"비트, 드롭, 템포 중 어떤 요소에 맞출지 명시하세요.",
		"음악 장르와 분위기를 함께 설명하세요.",
	}
	return &Pika{
		Base: Base{
			info: domain.ModelInfo{
				ModelID:            "pika",
				ModelName:          "Pika",
				Provider:           "Pika Labs",
				Category:           domain.VideoCategory,
				Capabilities:       append(slices.Clone(videoCapabilities), "style_transfer", "music_sync"),
				MaxTokens:          800,
				SupportsMultimodal: true,
				BestPractices: []string{
					"명확하고 구체적인 장면 설명 제공",
					"시각적 스타일과 참조 이미지 활용",
					"카메라 움직임과 전환 명시",
					"음악과 비디오 동기화 지정",
					"캐릭터 동작과 표현 설명",
					"시각적 효과와 분위기 설정",
				},
			},
			structure: sameOrder([]string{
				"visual_concept", "style_reference", "camera_movements", "music_sync",
				"visual_effects", "scene_transitions", "technical_specifications",
			}, "style_reference", "music_sync", "visual_effects", "scene_transitions", "technical_specifications"),
			tips:         tips,
			fallbackTips: fallback,
			rules:        DefaultRules,
		},
		scenes: NewSubtypes("scene", []matcher.Rule{
			natureScene, urbanScene, characterScene,
			{Label: "music_video", Keywords: []string{"뮤직비디오", "음악", "노래", "댄스", "춤", "공연", "콘서트"}},
			abstractScene, productScene,
			{Label: "animation", Keywords: []string{"애니메이션", "만화", "캐릭터", "3d", "2d", "애니"}},
		}, "character"),
	}
}

func (m *Pika) OptimizePrompt(f domain.FeatureRecord, _ domain.IntentRecord) string {
	scene := m.scenes.Detect(f)
	slots := sceneSlots(f.RawText, scene)
	return m.finish(Join(commaJoin,
		Fill(pikaSceneTemplates[scene], slots),
		m.style(f, scene),
		m.camera(f, scene, slots),
		m.musicSync(f, scene),
		m.effects(f, scene),
		m.transitions(f),
		videoTechnical(m.GenerationParameters(f, domain.IntentRecord{})),
	))
}

// style falls back to a scene default, with a reference-image note when images are supplied.
func (m *Pika) style(f domain.FeatureRecord, scene string) string {
	text := videoStyleText(f, pikaStyles)
	if text == "" {
		text = pikaStyles[lookup(pikaDefaultStyles, scene, "cinematic")]
	}
	if len(f.Overrides.Strings("reference_images")) > 0 {
		text += ", 참조 이미지 스타일"
	}
	return text
}

func (m *Pika) camera(f domain.FeatureRecord, scene string, slots map[string]string) string {
	if moves := cameraMovements(f, slots, cameraText); moves != nil {
		return strings.Join(moves, ", ")
	}
	return lookup(pikaDefaultCamera, scene, "영상의 내용과 분위기에 맞는 자연스러운 카메라 움직임")
}

func (m *Pika) musicSync(f domain.FeatureRecord, scene string) string {
	if requested := f.Overrides.Strings("music_sync"); len(requested) > 0 {
		texts := make([]string, 0, len(requested))
		for _, s := range requested {
			texts = append(texts, lookup(pikaMusicSync, s, s))
		}
		return strings.Join(texts, ", ")
	}
	return lookup(pikaDefaultSync, scene, "영상의 분위기에 맞춘 음악 동기화")
}

func (m *Pika) effects(f domain.FeatureRecord, scene string) string {
	if effects := f.Overrides.Strings("effects"); len(effects) > 0 {
		return strings.Join(effects, ", ")
	}
	return pikaEffects[scene]
}

func (m *Pika) transitions(f domain.FeatureRecord) string {
	if t := f.Overrides.Strings("transitions"); len(t) > 0 {
		return strings.Join(t, ", ") + " 전환"
	}
	return "부드러운 장면 전환"
}

// GenerationParameters keeps clips short: Pika renders a few seconds per generation.
func (m *Pika) GenerationParameters(f domain.FeatureRecord, _ domain.IntentRecord) map[string]any {
	params := map[string]any{
		"duration":        4,
		"resolution":      "1024x576",
		"fps":             24,
		"aspect_ratio":    "16:9",
		"motion_strength": 2,
		"guidance_scale":  12,
		"format":          "mp4",
	}
	switch f.Complexity {
	case domain.HighComplexity:
		params["resolution"] = "1280x720"
		params["motion_strength"] = 3
	case domain.LowComplexity:
		params["duration"] = 3
		params["motion_strength"] = 1
	}
	if m.scenes.Detect(f) == "music_video" || len(f.Overrides.Strings("music_sync")) > 0 {
		params["music_sync"] = true
	}
	if a, ok := f.Overrides.String("aspect_ratio"); ok {
		params["aspect_ratio"] = a
	}
	return params
}

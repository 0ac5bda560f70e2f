package adapter

import (
	"fmt"
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"strings"
)

// Scene keyword lists reused by the video adapters. Each adapter picks its own subset.
var (
	natureScene    = matcher.Rule{Label: "nature", Keywords: []string{"자연", "풍경", "산", "바다", "호수", "숲", "하늘", "일몰", "일출"}}
	urbanScene     = matcher.Rule{Label: "urban", Keywords: []string{"도시", "거리", "건물", "도로", "교통", "사람들", "번화가"}}
	characterScene = matcher.Rule{Label: "character", Keywords: []string{"인물", "사람", "캐릭터", "행동", "활동", "움직임"}}
	narrativeScene = matcher.Rule{Label: "narrative", Keywords: []string{"이야기", "스토리", "내러티브", "플롯", "사건", "전개"}}
	abstractScene  = matcher.Rule{Label: "abstract", Keywords: []string{"추상", "비현실적", "예술적", "실험적", "개념적"}}
	productScene   = matcher.Rule{Label: "product", Keywords: []string{"제품", "상품", "광고", "홍보", "마케팅", "브랜드"}}
)

var (
	videoTimeSlot     = Slot{Name: "time_of_day", Values: []string{"아침", "낮", "저녁", "밤", "일출", "일몰", "황혼", "새벽"}}
	videoCameraSlot   = Slot{Name: "camera", Values: []string{"패닝", "틸트", "줌", "트래킹", "고정", "항공", "드론", "돌리", "크레인", "핸드헬드", "스테디캠"}}
	videoLocationSlot = Slot{Name: "location", Values: []string{"산", "바다", "호수", "숲", "강", "계곡", "해변", "들판", "사막"}}
)

// videoSlots holds the slot lists per scene type. The camera slot is extracted for every scene.
var videoSlots = map[string][]Slot{
	"nature": {
		videoLocationSlot, videoTimeSlot,
		{Name: "weather", Values: []string{"맑은", "흐린", "비", "눈", "안개", "폭풍", "구름"}},
	},
	"urban": {
		{Name: "location", Values: []string{"번화가", "거리", "골목", "광장", "지하철", "시장"}},
		videoTimeSlot,
		{Name: "activity", Values: []string{"출퇴근", "쇼핑", "축제", "공연", "산책"}},
	},
	"character": {
		{Name: "character", Values: []string{"남자", "여자", "아이", "노인", "학생", "전문가", "운동선수", "예술가", "사람"}},
		{Name: "action", Values: []string{"걷는", "뛰는", "앉아있는", "서있는", "말하는", "웃는", "일하는", "놀고 있는"}},
		{Name: "location", Values: []string{"실내", "실외", "사무실", "집", "공원", "거리", "도시", "자연"}},
		videoTimeSlot,
	},
	"narrative": {
		{Name: "setting", Values: []string{"학교", "사무실", "집", "도시", "숲", "우주", "과거", "미래"}},
	},
	"abstract": {
		{Name: "visual_elements", Values: []string{"빛", "그림자", "색", "패턴", "입자", "선"}},
		{Name: "movement", Values: []string{"회전", "흐름", "진동", "확산", "변형"}},
	},
	"physical": {
		{Name: "objects", Values: []string{"공", "액체", "불", "연기", "돌", "나무", "금속", "유리", "물"}},
		{Name: "forces", Values: []string{"중력", "충돌", "폭발", "바람", "압력", "마찰", "탄성"}},
		{Name: "movement", Values: []string{"낙하", "회전", "진동", "흐름", "튕김"}},
	},
	"fantasy": {
		{Name: "magical_elements", Values: []string{"마법", "용", "요정", "포털", "성", "빛나는"}},
	},
	"product": {
		{Name: "background", Values: []string{"흰색 배경", "단색", "스튜디오", "실내", "실외"}},
	},
	"travel": {
		{Name: "location", Values: []string{"유럽", "아시아", "제주", "서울", "파리", "해변", "산"}},
		{Name: "landmarks", Values: []string{"랜드마크", "명소", "유적", "궁전", "타워"}},
		{Name: "activities", Values: []string{"관광", "하이킹", "쇼핑", "음식", "탐험"}},
	},
	"music_video": {
		{Name: "music_style", Values: []string{"팝", "록", "힙합", "재즈", "클래식", "EDM", "트로트", "발라드", "R&B"}},
		{Name: "theme", Values: []string{"사랑", "이별", "여행", "파티", "우정", "성장", "모험"}},
		{Name: "visual_elements", Values: []string{"네온", "빛", "그림자", "구름", "별", "춤"}},
	},
	"animation": {
		{Name: "animation_style", Values: []string{"2D", "3D", "픽셀", "스톱모션", "수채화", "일본식", "디즈니", "미니멀"}},
		{Name: "character", Values: []string{"동물", "로봇", "몬스터", "영웅", "요정", "외계인", "사람"}},
		{Name: "action", Values: []string{"달리는", "날아가는", "싸우는", "춤추는", "여행하는", "모험하는", "뛰는"}},
		{Name: "setting", Values: []string{"우주", "판타지", "도시", "자연", "바다", "미래", "과거"}},
	},
}

// sceneSlots extracts the scene slots plus the camera slot.
func sceneSlots(text, scene string) map[string]string {
	return ExtractSlots(text, append([]Slot{videoCameraSlot}, videoSlots[scene]...))
}

var cameraLabels = map[string]string{
	"패닝": "pan", "틸트": "tilt", "줌": "zoom", "트래킹": "tracking", "고정": "static",
	"항공": "aerial", "드론": "aerial", "돌리": "dolly", "크레인": "crane",
	"핸드헬드": "handheld", "스테디캠": "steadicam",
}

var cameraText = map[string]string{
	"static":    "고정된 카메라, 움직임 없음",
	"pan":       "패닝 샷, 카메라가 수평으로 움직임",
	"tilt":      "틸트 샷, 카메라가 수직으로 움직임",
	"tracking":  "트래킹 샷, 카메라가 피사체를 따라 움직임",
	"dolly":     "돌리 샷, 카메라가 앞뒤로 움직임",
	"zoom":      "줌 샷, 카메라가 확대/축소됨",
	"aerial":    "항공 샷, 위에서 내려다보는 시점",
	"crane":     "크레인 샷, 카메라가 위아래로 움직임",
	"steadicam": "스테디캠 샷, 부드럽게 움직이는 카메라",
	"handheld":  "핸드헬드 샷, 약간 흔들리는 카메라",
}

// cameraMovements resolves the requested movements: the override list, else the movement named in the text.
// It returns nil when neither exists so that the adapter falls back to its scene default.
func cameraMovements(f domain.FeatureRecord, slots map[string]string, table map[string]string) []string {
	var labels []string
	if requested := f.Overrides.Strings("camera_movements"); len(requested) > 0 {
		labels = requested
	} else if literal := slots["camera"]; literal != "" {
		labels = []string{cameraLabels[literal]}
	}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, lookup(table, l, l))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Visual style keywords for video, independent of the writing styles.
var videoStyleMatcher = matcher.MustNew([]matcher.Rule{
	{Label: "cinematic", Keywords: []string{"영화적", "시네마틱", "영화"}},
	{Label: "documentary", Keywords: []string{"다큐멘터리", "다큐"}},
	{Label: "animation", Keywords: []string{"애니메이션", "만화", "애니"}},
	{Label: "3d_animation", Keywords: []string{"3d 애니메이션", "3d"}},
	{Label: "vintage", Keywords: []string{"빈티지", "레트로"}},
	{Label: "futuristic", Keywords: []string{"미래적", "사이버펑크", "sf"}},
	{Label: "dreamy", Keywords: []string{"몽환적", "꿈같은"}},
	{Label: "photorealistic", Keywords: []string{"사실적", "실사"}},
	{Label: "minimalist", Keywords: []string{"미니멀", "심플"}},
	{Label: "fantasy", Keywords: []string{"판타지", "마법"}},
	{Label: "timelapse", Keywords: []string{"타임랩스"}},
	{Label: "slowmotion", Keywords: []string{"슬로우 모션", "슬로모션"}},
	{Label: "aerial", Keywords: []string{"항공 촬영", "드론 촬영"}},
	{Label: "handheld", Keywords: []string{"핸드헬드"}},
})

// videoStyleOf returns the style override, else the visual style named in the text, else "".
func videoStyleOf(f domain.FeatureRecord) string {
	if s, ok := f.Overrides.String("style"); ok {
		return s
	}
	return videoStyleMatcher.Best(f.RawText, "")
}

// videoStyleText renders a style from the adapter table. Detected styles the adapter
// does not know are dropped, explicit ones are kept verbatim.
func videoStyleText(f domain.FeatureRecord, table map[string]string) string {
	if s, ok := f.Overrides.String("style"); ok {
		return lookup(table, s, s)
	}
	return table[videoStyleOf(f)]
}

// sentence closes a fragment with exactly one period.
func sentence(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), " .")
	if s == "" {
		return ""
	}
	return s + "."
}

// videoTechnical renders the technical line that mirrors the generation parameters.
func videoTechnical(params map[string]any) string {
	return fmt.Sprintf("해상도 %v, %v초, %vfps", params["resolution"], params["duration"], params["fps"])
}

var videoCapabilities = []string{
	"video_generation", "scene_transition", "camera_movement",
	"character_animation", "visual_effects",
}

func videoTips(model string) (map[string][]string, []string) {
	return map[string][]string{
			"video_generation": {
				"장면의 배경, 등장 요소, 움직임을 구체적으로 묘사하세요.",
				"영상의 길이와 전개 속도를 함께 제시하세요.",
			},
			"scene_transition": {
				"장면이 바뀌는 시점과 전환 방식을 명시하세요.",
				"컷, 페이드, 디졸브 같은 전환 용어를 활용하세요.",
			},
			"camera_movement": {
				"패닝, 트래킹, 줌 같은 카메라 용어로 움직임을 지정하세요.",
				"카메라와 피사체 사이의 거리와 각도를 설명하세요.",
			},
			"character_animation": {
				"캐릭터의 외형과 동작을 순서대로 설명하세요.",
				"감정 표현과 제스처를 구체적으로 묘사하세요.",
			},
			"visual_effects": {
				"원하는 시각 효과의 종류와 강도를 명시하세요.",
				"효과가 나타나는 시점과 위치를 설명하세요.",
			},
		}, []string{
			model + "는 비디오 생성에 특화된 모델입니다. 장면과 움직임을 구체적으로 설명하세요.",
		}
}

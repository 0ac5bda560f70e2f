package adapter

import (
	"fmt"
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		template string
		values   map[string]string
		expected string
	}{
		{"all filled", "인물 사진: {description}, {pose}", map[string]string{"description": "여성", "pose": "서있는"}, "인물 사진: 여성, 서있는"},
		{"middle missing", "{a}, {b}, {c}", map[string]string{"a": "1", "c": "3"}, "1, 3"},
		{"trailing missing", "풍경: {a}, {b}, {c}", map[string]string{"a": "산"}, "풍경: 산"},
		{"only label left", "풍경: {a}, {b}", map[string]string{}, "풍경"},
		{"unknown placeholder", "{description}, {unknown}", map[string]string{"description": "바다"}, "바다"},
		{"blank value", "{a}, {b}", map[string]string{"a": "  ", "b": "x"}, "x"},
		{"prefix kept", "{description}의 풍경, {time_of_day}", map[string]string{"description": "제주", "time_of_day": "일몰"}, "제주의 풍경, 일몰"},
	}

	for _, tt := range tests {
		req.Equal(tt.expected, Fill(tt.template, tt.values), tt.name)
	}
}

func TestFill_Cleans_Values(t *testing.T) {
	req := require.New(t)

	// Given a user text that itself contains commas and braces
	values := map[string]string{"description": "a,, b {name}", "mood": "{{x}}"}

	// Then the value is cleaned and can not reintroduce a slot
	req.Equal("주제: a, b", Fill("주제: {description}, {missing}, {mood}", values))
}

func TestSanitize(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		description string
		input       string
		expected    string
	}{
		{"Should drop brace tokens", "웃는 {name} 여성", "웃는 여성"},
		{"Should drop nested brace tokens", "{{a}} 바다", "바다"},
		{"Should collapse separator runs", "초상화,, 실내,,", "초상화, 실내"},
		{"Should empty a lone separator", ",", ""},
		{"Should keep line breaks", "첫 줄,\n\n\n\n둘째 {x} 줄", "첫 줄\n\n둘째 줄"},
	}

	for _, tt := range tests {
		req.Equal(tt.expected, Sanitize(tt.input), tt.description)
	}
}

func TestTaskLine(t *testing.T) {
	req := require.New(t)

	req.Equal("작업: 글 쓰기", taskLine("작업:", " ", "글 {x} 쓰기,"))
	req.Empty(taskLine("작업:", " ", " , "))
}

func TestCleanup(t *testing.T) {
	req := require.New(t)

	req.Equal("a, b", Cleanup("a, , b,"))
	req.Equal("a,b", Cleanup("a ,b"))
	req.Equal("라벨: b", Cleanup("라벨: , b"))
	req.Equal("a b", Cleanup("a   b"))
	req.Equal("a", Cleanup(", a, {x}"))
}

func TestJoin(t *testing.T) {
	req := require.New(t)

	req.Equal("a, b", Join(commaJoin, "a,", "", " ", ", b"))
	req.Equal("a\n\nb", Join(blankJoin, "a", "", "b"))
	req.Equal("", Join(spaceJoin))
}

func TestExtractSlots(t *testing.T) {
	req := require.New(t)
	slots := []Slot{
		{Name: "time", Values: []string{"아침", "저녁"}},
		{Name: "weather", Values: []string{"맑은", "흐린"}},
		{Name: "camera", Values: []string{"Drone"}},
	}

	// When several literals match, the first declared one wins
	values := ExtractSlots("  저녁과 아침의 흐린 바다 drone  ", slots)

	req.Equal("아침", values["time"])
	req.Equal("흐린", values["weather"])
	req.Equal("Drone", values["camera"])
	req.Equal("저녁과 아침의 흐린 바다 drone", values["description"])
}

func TestExtractSlots_Unmatched_Slots_Stay_Empty(t *testing.T) {
	req := require.New(t)

	values := ExtractSlots("바다", []Slot{{Name: "time", Values: []string{"아침"}}})

	_, ok := values["time"]
	req.False(ok)
}

func TestSubtypes_Detect(t *testing.T) {
	req := require.New(t)
	s := NewSubtypes("subject", []matcher.Rule{
		{Label: "landscape", Keywords: []string{"산", "바다"}},
		{Label: "portrait", Keywords: []string{"얼굴"}},
	}, "landscape")

	req.Equal("portrait", s.Detect(domain.FeatureRecord{RawText: "얼굴 사진"}))
	req.Equal("landscape", s.Detect(domain.FeatureRecord{RawText: "아무것도 없음"}))

	// A known override wins, an unknown one is ignored
	forced := domain.FeatureRecord{RawText: "얼굴", Overrides: domain.Overrides{"subject": "landscape"}}
	req.Equal("landscape", s.Detect(forced))
	unknown := domain.FeatureRecord{RawText: "얼굴", Overrides: domain.Overrides{"subject": "food"}}
	req.Equal("portrait", s.Detect(unknown))
}

func TestNumbered_And_Bulleted(t *testing.T) {
	req := require.New(t)

	req.Equal("단계:\n1. a\n2. b", numbered("단계:", []string{"a", "b"}))
	req.Equal("목록:\n- a", bulleted("목록:", []string{"a"}))
	req.Empty(numbered("단계:", nil))
	req.Empty(bulleted("목록:", nil))
}

func TestRules_Apply(t *testing.T) {
	req := require.New(t)

	req.Equal("a\n\nb", DefaultRules.Apply("a\n\n\n\n\nb"))
	req.Equal("끝", DefaultRules.Apply("  끝...  "))
	req.Equal("끝.", Rules{KeepTrailingPeriods: true}.Apply("끝."))
}

func TestRules_Step_By_Step_Reminder(t *testing.T) {
	req := require.New(t)
	r := Rules{StepByStepReminder: "\n\n단계별로 생각해보세요.", StepByStepIndicators: []string{"단계별", "step by step"}}

	req.Equal("문제\n\n단계별로 생각해보세요.", r.Apply("문제"))
	req.Equal("Think Step By Step", r.Apply("Think Step By Step"))
}

func TestRules_Truncate_Keeps_Head_Middle_Tail(t *testing.T) {
	req := require.New(t)

	// Given a prompt of 100 long lines
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%03d %s", i, strings.Repeat("x", 60))
	}
	out := DefaultRules.Apply(strings.Join(lines, "\n"))

	// Then 10 head lines, 30 middle lines and 10 tail lines survive around two ellipsis markers
	kept := strings.Split(out, "\n")
	req.Len(kept, 52)
	req.Equal(lines[0], kept[0])
	req.Equal(lines[9], kept[9])
	req.Equal(ellipsis, kept[10])
	req.Equal(lines[35], kept[11])
	req.Equal(lines[64], kept[40])
	req.Equal(ellipsis, kept[41])
	req.Equal(lines[90], kept[42])
	req.Equal(lines[99], kept[51])
}

func TestRules_Truncate_Needs_Both_Length_And_Lines(t *testing.T) {
	req := require.New(t)

	// Long but on few lines
	wide := strings.Repeat("가", 5000)
	req.Equal(wide, DefaultRules.Apply(wide))

	// Many lines but short
	short := strings.TrimSpace(strings.Repeat("a\n", 80))
	req.Equal(short, DefaultRules.Apply(short))
}

package adapter

import (
	"log/slog"
	"prompt-lab/analyzer"
	"prompt-lab/domain"
	"regexp"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var (
	leftoverPlaceholder = regexp.MustCompile(`\{[a-z_]+\}`)
	emptySeparator      = regexp.MustCompile(`,\s*,`)
	danglingSeparator   = regexp.MustCompile(`[,:;]\s*$`)
)

func allAdapters() []IAdapter {
	return []IAdapter{
		NewGPT4o(), NewGemini(), NewO3(), NewV0(),
		NewImagen3(), NewDALLE3(), NewMidjourneyV6(),
		NewSora(), NewVeo3(), NewPika(), NewSuno(),
	}
}

func features(text, modelID string, overrides domain.Overrides) domain.FeatureRecord {
	a := analyzer.NewAnalyzer(logs.GetLoggerFromLevel(slog.LevelDebug))
	return a.Analyze(text, modelID).Merge(overrides)
}

// Inputs chosen so every image subject, video scene and music genre is hit at least once.
var coverageInputs = []string{
	"",
	"바다 위의 일몰 풍경",
	"웃는 여성의 초상화, 자연광, 실내",
	"흰색 배경의 제품 사진, 정면",
	"신비로운 판타지 컨셉 아트",
	"기하학적 패턴의 추상 이미지, 금속성",
	"고딕 건축물 외관, 밤",
	"나무 테이블 위의 디저트 요리",
	"번화가 도시 거리의 아침, 드론 촬영",
	"숲 속을 걷는 캐릭터",
	"모험 이야기 스토리, 사건 전개",
	"사람들이 춤추는 뮤직비디오",
	"3d 애니메이션 캐릭터",
	"유명 관광 명소 여행",
	"브랜드 광고 홍보 영상",
	"재즈 색소폰 스윙 곡",
	"힙합 랩 비트",
	"EDM 테크노 일렉트로닉",
	"오케스트라 교향곡 클래식",
	"사랑에 관한 슬픈 록 발라드 밴드",
	"포크 어쿠스틱 여행 노래",
	"소울 R&B 로맨틱한 사랑 노래",
	"영화음악 OST 사운드트랙",
	"React 로그인 폼 컴포넌트를 만들어줘",
	"x^2 + 3x = 10 방정식을 풀어줘",
}

func TestAdapters_Render_Without_Template_Leftovers(t *testing.T) {
	req := require.New(t)

	for _, a := range allAdapters() {
		id := a.Info().ModelID
		for _, input := range coverageInputs {
			// Given a feature record for the adapter model
			f := features(input, id, nil)

			// When the prompt is rendered
			out := a.OptimizePrompt(f, domain.NewDefaultIntent())

			// Then no placeholder survives and separators are clean
			req.NotEmpty(out, "%s: %q", id, input)
			req.False(leftoverPlaceholder.MatchString(out), "%s: %q -> %q", id, input, out)
			if a.Info().Category != domain.TextCategory {
				req.False(emptySeparator.MatchString(out), "%s: %q -> %q", id, input, out)
				req.False(danglingSeparator.MatchString(out), "%s: %q -> %q", id, input, out)
			}
		}
	}
}

var injectedToken = regexp.MustCompile(`\{[^{}\n]*\}`)

func TestAdapters_Sanitize_User_Text(t *testing.T) {
	req := require.New(t)

	inputs := []string{
		"웃는 {name} 여성의 초상화",
		"웃는 여성의 초상화,, 실내,,",
		",",
		"{{subject}} 해질녘 바다 풍경 , ,",
		"재즈 {genre} 음악:",
	}

	for _, a := range allAdapters() {
		id := a.Info().ModelID
		for _, input := range inputs {
			// Given user text carrying brace tokens and separator runs
			f := features(input, id, nil)

			// When the prompt is rendered
			out := a.OptimizePrompt(f, domain.NewDefaultIntent())

			// Then none of them reaches the prompt
			req.NotEmpty(out, "%s: %q", id, input)
			req.False(injectedToken.MatchString(out), "%s: %q -> %q", id, input, out)
			req.False(emptySeparator.MatchString(out), "%s: %q -> %q", id, input, out)
			req.NotRegexp(`:\s*,`, out, "%s: %q", id, input)
			if a.Info().Category != domain.TextCategory {
				req.False(danglingSeparator.MatchString(out), "%s: %q -> %q", id, input, out)
			}
		}
	}
}

func TestAdapters_Are_Deterministic(t *testing.T) {
	req := require.New(t)

	for _, a := range allAdapters() {
		f := features("숲 속을 걷는 캐릭터, 밝은 분위기의 짧은 영상", a.Info().ModelID, domain.Overrides{"include": "나무, 햇빛"})
		first := a.OptimizePrompt(f, domain.NewDefaultIntent())
		for range 20 {
			req.Equal(first, a.OptimizePrompt(f, domain.NewDefaultIntent()), a.Info().ModelID)
		}
		if p, ok := a.(IParameterized); ok {
			req.Equal(p.GenerationParameters(f, domain.NewDefaultIntent()), p.GenerationParameters(f, domain.NewDefaultIntent()))
		}
	}
}

func TestAdapters_Info_Is_A_Copy(t *testing.T) {
	req := require.New(t)

	for _, a := range allAdapters() {
		// Given a caller mutating the returned metadata
		info := a.Info()
		info.Capabilities[0] = "mutated"
		info.BestPractices = append(info.BestPractices[:0], "mutated")
		structure := a.PromptStructure()
		structure.Components[0] = "mutated"

		// Then the adapter is unchanged
		req.NotEqual("mutated", a.Info().Capabilities[0])
		req.NotEqual("mutated", a.Info().BestPractices[0])
		req.NotEqual("mutated", a.PromptStructure().Components[0])
	}
}

func TestAdapters_Metadata(t *testing.T) {
	req := require.New(t)
	categories := map[string]domain.Category{
		"gpt-4o": domain.TextCategory, "gemini-2.5-pro": domain.TextCategory, "gpt-o3": domain.TextCategory, "vercel-v0": domain.TextCategory,
		"imagen-3": domain.ImageCategory, "dalle-3": domain.ImageCategory, "midjourney-v6": domain.ImageCategory,
		"sora": domain.VideoCategory, "google-veo-3": domain.VideoCategory, "pika": domain.VideoCategory,
		"suno": domain.MusicCategory,
	}

	for _, a := range allAdapters() {
		info := a.Info()
		req.Equal(categories[info.ModelID], info.Category, info.ModelID)
		req.NotEmpty(info.Capabilities)
		req.Positive(info.MaxTokens)
		_, parameterized := a.(IParameterized)
		req.Equal(info.Category != domain.TextCategory, parameterized, info.ModelID)
	}
}

func TestCapabilityTips_Fallback(t *testing.T) {
	req := require.New(t)

	// A known capability returns its own tips
	req.NotEmpty(NewGPT4o().CapabilityTips("tool_use"))

	// An unknown one falls back to the generic advice, or to an empty list
	req.NotEmpty(NewGPT4o().CapabilityTips("teleportation"))
	tips := NewGemini().CapabilityTips("teleportation")
	req.NotNil(tips)
	req.Empty(tips)

	// The returned slice is a copy
	own := NewSuno()
	got := own.CapabilityTips("mood_control")
	got[0] = "mutated"
	req.NotEqual("mutated", own.CapabilityTips("mood_control")[0])
}

func TestImagen3_Portrait(t *testing.T) {
	req := require.New(t)
	m := NewImagen3()

	// Given a portrait request
	f := features("웃는 여성의 초상화", "imagen-3", nil)

	// When the prompt and parameters are built
	out := m.OptimizePrompt(f, domain.NewDefaultIntent())
	params := m.GenerationParameters(f, domain.NewDefaultIntent())

	// Then the portrait negative and size are used
	positive, negative, found := strings.Cut(out, "\nNegative prompt: ")
	req.True(found)
	req.True(strings.HasPrefix(positive, "Prompt: "))
	req.Contains(positive, "웃는")
	req.Contains(negative, "왜곡된 얼굴")
	req.NotContains(negative, "워터마크")
	req.Equal("3:4", params["aspect_ratio"])
	req.Equal(false, params["watermark"])
}

func TestImagen3_Text_Exclusion_Extends_Negative(t *testing.T) {
	req := require.New(t)
	m := NewImagen3()

	f := features("바다 위의 일몰 풍경", "imagen-3", domain.Overrides{"exclude": "텍스트"})
	out := m.OptimizePrompt(f, domain.NewDefaultIntent())

	_, negative, _ := strings.Cut(out, "\nNegative prompt: ")
	req.Contains(negative, "워터마크")
	req.Equal(1, strings.Count(negative, "텍스트, 글자"))
}

func TestImagen3_Complexity_Parameters(t *testing.T) {
	req := require.New(t)
	m := NewImagen3()

	high := m.GenerationParameters(features("풍경", "imagen-3", domain.Overrides{"complexity": "high"}), domain.IntentRecord{})
	low := m.GenerationParameters(features("풍경", "imagen-3", domain.Overrides{"complexity": "low"}), domain.IntentRecord{})

	req.Equal(75, high["num_inference_steps"])
	req.Equal(30, low["num_inference_steps"])
}

func TestDALLE3_Landscape(t *testing.T) {
	req := require.New(t)
	m := NewDALLE3()

	f := features("바다 위의 일몰 풍경", "dalle-3", nil)
	out := m.OptimizePrompt(f, domain.NewDefaultIntent())
	params := m.GenerationParameters(f, domain.NewDefaultIntent())

	req.Equal("1792x1024", params["size"])
	req.Equal("natural", params["style"])
	req.Equal(1, params["n"])
	req.Contains(out, "1792x1024")
	req.NotContains(out, "Negative prompt")
}

func TestMidjourneyV6_Flags(t *testing.T) {
	req := require.New(t)
	m := NewMidjourneyV6()

	// Given an anime portrait with exclusions
	f := features("웃는 소녀의 초상화, 애니메이션 스타일", "midjourney-v6", domain.Overrides{"exclude": "텍스트, 워터마크"})

	out := m.OptimizePrompt(f, domain.NewDefaultIntent())
	params := m.GenerationParameters(f, domain.NewDefaultIntent())

	// Then the flags follow the subject and style
	req.Contains(out, "--ar 2:3")
	req.Contains(out, "--niji 6")
	req.True(strings.HasSuffix(out, " --no 텍스트, 워터마크"))
	req.Equal("niji 6", params["version"])
	req.Equal("2:3", params["aspect_ratio"])
	req.Equal("텍스트, 워터마크", params["no"])
}

func TestMidjourneyV6_Modifiers_Are_Not_Repeated(t *testing.T) {
	req := require.New(t)
	m := NewMidjourneyV6()

	// Given a photorealistic style whose keywords overlap the detail modifiers
	f := features("사실적인 산 풍경 사진", "midjourney-v6", domain.Overrides{"style": "photorealistic"})

	// When the prompt is rendered
	out := m.OptimizePrompt(f, domain.NewDefaultIntent())

	// Then each modifier appears once
	req.Equal(1, strings.Count(out, "highly detailed"), out)
	req.Equal(1, strings.Count(out, "photorealistic"), out)
	req.Contains(out, "sharp focus")
}

func TestMidjourneyV6_Overrides(t *testing.T) {
	req := require.New(t)
	m := NewMidjourneyV6()

	f := features("바다 풍경", "midjourney-v6", domain.Overrides{"aspect_ratio": "wide", "stylize": "high", "chaos": "bogus"})
	params := m.GenerationParameters(f, domain.IntentRecord{})

	req.Equal("16:9", params["aspect_ratio"])
	req.Equal(250, params["stylize"])
	req.Equal(25, params["chaos"])
	_, hasNo := params["no"]
	req.False(hasNo)
}

func TestSora_Complexity_Drives_Duration(t *testing.T) {
	req := require.New(t)
	m := NewSora()

	tests := []struct {
		overrides domain.Overrides
		expected  int
	}{
		{domain.Overrides{"complexity": "high"}, 30},
		{domain.Overrides{"complexity": "medium"}, 15},
		{domain.Overrides{"complexity": "low"}, 10},
		{domain.Overrides{"complexity": "high", "duration": 20}, 20},
	}

	for _, tt := range tests {
		params := m.GenerationParameters(features("숲 속 풍경", "sora", tt.overrides), domain.IntentRecord{})
		req.Equal(tt.expected, params["duration"])
	}
}

func TestVeo3_Scene_Count_Is_Capped(t *testing.T) {
	req := require.New(t)
	m := NewVeo3()
	render := func(count int) string {
		f := features("모험 이야기 스토리", "google-veo-3", domain.Overrides{"scene_count": count})
		return m.OptimizePrompt(f, domain.NewDefaultIntent())
	}

	req.Equal(render(maxVeoScenes), render(9))
	req.NotEqual(render(1), render(maxVeoScenes))
	req.Contains(render(3), "장면 설명: ")
}

func TestPika_Music_Sync(t *testing.T) {
	req := require.New(t)
	m := NewPika()

	video := m.GenerationParameters(features("사람들이 춤추는 뮤직비디오", "pika", nil), domain.IntentRecord{})
	req.Equal(true, video["music_sync"])

	plain := m.GenerationParameters(features("숲 속 풍경", "pika", nil), domain.IntentRecord{})
	_, ok := plain["music_sync"]
	req.False(ok)

	forced := features("숲 속 풍경", "pika", domain.Overrides{"music_sync": "beat"})
	req.Equal(true, m.GenerationParameters(forced, domain.IntentRecord{})["music_sync"])
	req.Contains(m.OptimizePrompt(forced, domain.NewDefaultIntent()), "음악의 비트에 맞춘")
}

func TestSuno_Genre_Parameters(t *testing.T) {
	req := require.New(t)
	m := NewSuno()

	jazz := m.GenerationParameters(features("재즈 색소폰 곡", "suno", nil), domain.IntentRecord{})
	req.Equal(true, jazz["swing"])
	req.Equal("improvisation", jazz["emphasis"])

	// An explicit genre override beats the text
	forced := m.GenerationParameters(features("재즈 색소폰 곡", "suno", domain.Overrides{"genre": "electronic"}), domain.IntentRecord{})
	req.Equal("fast", forced["tempo"])

	out := m.OptimizePrompt(features("재즈 색소폰 곡", "suno", domain.Overrides{"duration": 30}), domain.NewDefaultIntent())
	req.Contains(out, "30초 길이")
}

func TestO3_Step_By_Step_Reminder_Once(t *testing.T) {
	req := require.New(t)
	m := NewO3()

	out := m.OptimizePrompt(features("x^2 + 3x = 10 방정식을 풀어줘", "gpt-o3", nil), domain.NewDefaultIntent())

	req.Contains(out, "단계별")
	req.LessOrEqual(strings.Count(out, "단계별로 생각해보세요."), 1)
}

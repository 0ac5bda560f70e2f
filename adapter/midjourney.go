package adapter

import (
	"fmt"
	"prompt-lab/domain"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// MidjourneyV6 renders an English comma-joined prompt followed by "--" parameters.
type MidjourneyV6 struct {
	Base
}

var midjourneySubjectTemplates = map[string]string{
	"landscape":    "{description}, {time_of_day}, {weather}, {perspective}",
	"portrait":     "{description}, {pose}, {expression}, {lighting}, {background}",
	"product":      "{description}, {background}, {angle}",
	"concept_art":  "{description}, {mood}",
	"abstract":     "{description}, {texture}",
	"architecture": "{description}, {architectural_style}, {time_of_day}",
	"food":         "{description}, {presentation}, {background}",
}

var midjourneyStyles = map[string]string{
	"photorealistic": "photorealistic, highly detailed, 8k, ultra realistic, photography",
	"cinematic":      "cinematic, movie scene, film still, dramatic lighting, cinematic composition",
	"anime":          "anime style, manga, vibrant colors, clean lines, 2D animation",
	"digital_art":    "digital art, digital painting, detailed, vibrant colors, computer graphics",
	"oil_painting":   "oil painting, textured canvas, thick brushstrokes, classical painting technique",
	"watercolor":     "watercolor painting, soft edges, flowing colors, transparent washes",
	"3d_render":      "3D render, octane render, blender, realistic textures, volumetric lighting",
	"pixel_art":      "pixel art, retro game style, limited color palette, pixelated details",
	"minimalist":     "minimalist, simple shapes, limited color palette, clean composition",
	"fantasy":        "fantasy art, magical, mystical, ethereal, otherworldly",
}

var midjourneyMoods = map[string]string{
	"warm":       "warm atmosphere, cozy feeling",
	"cool":       "cool atmosphere, refreshing feeling",
	"peaceful":   "peaceful atmosphere, serene feeling",
	"dramatic":   "dramatic atmosphere, intense feeling",
	"mysterious": "mysterious atmosphere, enigmatic feeling",
	"romantic":   "romantic atmosphere, emotional feeling",
	"energetic":  "energetic atmosphere, dynamic feeling",
	"nostalgic":  "nostalgic atmosphere, reminiscent feeling",
	"futuristic": "futuristic atmosphere, high-tech feeling",
	"vintage":    "vintage atmosphere, classic feeling",
}

var midjourneyLightings = map[string]string{
	"natural":     "natural lighting, soft sunlight",
	"golden_hour": "golden hour lighting, warm orange light, long shadows",
	"blue_hour":   "blue hour lighting, blue tones, twilight",
	"dramatic":    "dramatic lighting, strong contrast, sharp shadows",
	"studio":      "studio lighting, even illumination, professional setup",
	"backlight":   "backlight, silhouette effect, glowing edges",
	"neon":        "neon lighting, vibrant colored artificial lights, urban atmosphere",
	"candlelight": "candlelight, warm orange glow, soft shadows",
	"moonlight":   "moonlight, blue tones, soft shadows, mysterious atmosphere",
}

var (
	midjourneyAspects = map[string]string{
		"square": "1:1", "portrait": "2:3", "landscape": "3:2",
		"wide": "16:9", "ultrawide": "21:9", "panorama": "3:1",
	}
	midjourneyStylize = map[string]int{"low": 50, "medium": 100, "high": 250, "very_high": 750}
	midjourneyQuality = map[string]string{"draft": ".5", "normal": "1", "high": "2"}
	midjourneyChaos   = map[string]int{"low": 10, "medium": 25, "high": 50, "very_high": 100}
	midjourneyVersion = map[string]string{"default": "--v 6", "niji": "--niji 6"}
)

// midjourneySettings are the resolved "--" parameters of one request.
type midjourneySettings struct {
	AspectRatio string
	Stylize     int
	Quality     string
	Chaos       int
	Version     string
}

func (s midjourneySettings) flags() string {
	return fmt.Sprintf("--ar %s --s %d --q %s --c %d %s", s.AspectRatio, s.Stylize, s.Quality, s.Chaos, midjourneyVersion[s.Version])
}

func NewMidjourneyV6() *MidjourneyV6 {
	tips, fallback := imageTips("Midjourney v6")
	tips["parameter_customization"] = []string{
		"--ar로 화면 비율을, --s로 스타일 강도를 조절하세요.",
		"--c 값을 높이면 더 다양한 결과를 얻을 수 있습니다.",
		"제외할 요소는 --no 뒤에 나열하세요.",
	}
	return &MidjourneyV6{Base: Base{
		info: domain.ModelInfo{
			ModelID:            "midjourney-v6",
			ModelName:          "Midjourney v6",
			Provider:           "Midjourney",
			Category:           domain.ImageCategory,
			Capabilities:       append(slices.Clone(imageCapabilities), "parameter_customization"),
			MaxTokens:          1000,
			SupportsMultimodal: false,
			BestPractices: []string{
				"명확하고 간결한 설명 제공",
				"매개변수 활용 (--ar, --v, --s, --q, --c)",
				"스타일과 분위기 명시",
				"참조 아티스트나 스타일 언급",
				"부정적 프롬프트 활용 (--no)",
				"이미지 참조 활용 가능",
			},
		},
		structure: sameOrder([]string{
			"subject_description", "style_specification", "details_and_modifiers", "parameters", "negative_prompt",
		}, "details_and_modifiers", "parameters", "negative_prompt"),
		tips:         tips,
		fallbackTips: fallback,
		rules:        DefaultRules,
	}}
}

// OptimizePrompt applies the common rules to the descriptive part before appending the flags.
func (m *MidjourneyV6) OptimizePrompt(f domain.FeatureRecord, _ domain.IntentRecord) string {
	subject := imageSubjects.Detect(f)
	style := imageStyleOf(f)
	body := m.finish(Join(commaJoin,
		Fill(midjourneySubjectTemplates[subject], ExtractSlots(f.RawText, imageSlots[subject])),
		m.modifiers(f, style),
	))
	prompt := body + " " + m.settings(f, subject, style).flags()
	if len(f.Constraints.Exclude) > 0 {
		prompt += " --no " + strings.Join(f.Constraints.Exclude, ", ")
	}
	return prompt
}

// modifiers joins the style keywords and the details, each keyword kept once.
func (m *MidjourneyV6) modifiers(f domain.FeatureRecord, style string) string {
	keywords := strings.Split(lookup(midjourneyStyles, style, style), ",")
	keywords = append(keywords, m.details(f)...)
	keywords = lo.Map(keywords, func(k string, _ int) string { return strings.TrimSpace(k) })
	return strings.Join(lo.Uniq(lo.Compact(keywords)), ", ")
}

// details always ends with the generic detail modifiers.
func (m *MidjourneyV6) details(f domain.FeatureRecord) []string {
	var parts []string
	if colors := f.Overrides.Strings("colors"); len(colors) > 0 {
		parts = append(parts, strings.Join(colors, ", ")+" color palette")
	}
	if mood, ok := f.Overrides.String("mood"); ok {
		parts = append(parts, lookup(midjourneyMoods, mood, mood))
	}
	if lighting, ok := f.Overrides.String("lighting"); ok {
		parts = append(parts, lookup(midjourneyLightings, lighting, lighting))
	}
	return append(parts, "highly detailed", "intricate", "sharp focus")
}

func (m *MidjourneyV6) settings(f domain.FeatureRecord, subject, style string) midjourneySettings {
	s := midjourneySettings{
		AspectRatio: midjourneyAspects["square"],
		Stylize:     midjourneyStylize["medium"],
		Quality:     midjourneyQuality["high"],
		Chaos:       midjourneyChaos["medium"],
		Version:     "default",
	}
	if a, ok := f.Overrides.String("aspect_ratio"); ok && midjourneyAspects[a] != "" {
		s.AspectRatio = midjourneyAspects[a]
	} else if subject == "landscape" || subject == "portrait" {
		s.AspectRatio = midjourneyAspects[subject]
	}
	if v, ok := f.Overrides.String("stylize"); ok && midjourneyStylize[v] > 0 {
		s.Stylize = midjourneyStylize[v]
	}
	if v, ok := f.Overrides.String("quality"); ok && midjourneyQuality[v] != "" {
		s.Quality = midjourneyQuality[v]
	}
	if v, ok := f.Overrides.String("chaos"); ok && midjourneyChaos[v] > 0 {
		s.Chaos = midjourneyChaos[v]
	}
	if v, ok := f.Overrides.String("version"); ok && midjourneyVersion[v] != "" {
		s.Version = v
	} else if style == "anime" {
		s.Version = "niji"
	}
	return s
}

func (m *MidjourneyV6) GenerationParameters(f domain.FeatureRecord, _ domain.IntentRecord) map[string]any {
	subject := imageSubjects.Detect(f)
	s := m.settings(f, subject, imageStyleOf(f))
	params := map[string]any{
		"aspect_ratio": s.AspectRatio,
		"stylize":      s.Stylize,
		"quality":      s.Quality,
		"chaos":        s.Chaos,
		"version":      strings.TrimPrefix(midjourneyVersion[s.Version], "--"),
	}
	if len(f.Constraints.Exclude) > 0 {
		params["no"] = strings.Join(f.Constraints.Exclude, ", ")
	}
	return params
}

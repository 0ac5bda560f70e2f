package adapter

import (
	"fmt"
	"prompt-lab/domain"
	"prompt-lab/matcher"
	"strings"
)

// Suno renders a comma-joined music description.
type Suno struct {
	Base
	genres Subtypes
}

var sunoGenreTemplates = map[string]string{
	"pop":        "팝 음악: {description}, {theme}",
	"rock":       "록 음악: {description}, {theme}",
	"hiphop":     "힙합 음악: {description}, {theme}",
	"electronic": "일렉트로닉 음악: {description}, {theme}",
	"jazz":       "재즈 음악: {description}, {theme}",
	"classical":  "클래식 음악: {description}",
	"folk":       "포크 음악: {description}, {theme}",
	"rnb":        "R&B 음악: {description}, {theme}",
	"soundtrack": "사운드트랙: {description}, {theme}",
}

// Literal found in the text mapped to the table label it selects.
var (
	sunoMoodLiterals = map[string]string{
		"밝은": "happy", "슬픈": "sad", "에너지": "energetic", "차분한": "calm", "극적인": "dramatic",
		"로맨틱한": "romantic", "신비로운": "mysterious", "향수": "nostalgic", "웅장한": "epic", "장난스러운": "playful",
	}
	sunoVocalLiterals = map[string]string{
		"파워풀": "powerful", "부드러운": "soft", "허스키": "raspy", "매끄러운": "smooth", "소울풀": "soulful",
		"오페라": "operatic", "랩": "rap", "숨이 섞인": "breathy", "오토튠": "autotuned", "합창": "choir",
	}
	sunoInstrumentLiterals = map[string]string{
		"밴드": "band", "오케스트라": "orchestra", "전자": "electronic", "어쿠스틱": "acoustic", "힙합": "hiphop",
		"재즈": "jazz", "록": "rock", "팝": "pop", "미니멀": "minimal", "실험적": "experimental",
	}
	sunoStructureLiterals = map[string]string{
		"버스-코러스": "verse_chorus", "앰비언트": "ambient", "빌드업-드롭": "buildup_drop", "AABA": "aaba",
		"스루 컴포즈드": "through_composed", "루프": "loop_based", "콜 앤 리스폰스": "call_response",
	}
)

var sunoSlots = []Slot{
	{Name: "mood", Values: []string{"밝은", "슬픈", "에너지", "차분한", "극적인", "로맨틱한", "신비로운", "향수", "웅장한", "장난스러운"}},
	{Name: "vocal_style", Values: []string{"파워풀", "부드러운", "허스키", "매끄러운", "소울풀", "오페라", "랩", "숨이 섞인", "오토튠", "합창"}},
	{Name: "theme", Values: []string{"사랑", "이별", "희망", "꿈", "여행", "자연", "도시", "인생", "우정", "성장"}},
	{Name: "instruments", Values: []string{"밴드", "오케스트라", "전자", "어쿠스틱", "힙합", "재즈", "록", "팝", "미니멀", "실험적"}},
	{Name: "structure", Values: []string{"버스-코러스", "앰비언트", "빌드업-드롭", "AABA", "스루 컴포즈드", "루프", "콜 앤 리스폰스"}},
}

var sunoMoods = map[string]string{
	"happy":      "밝고 경쾌한, 긍정적인, 활기찬",
	"sad":        "슬프고 우울한, 멜랑콜리한, 감성적인",
	"energetic":  "에너지 넘치는, 역동적인, 활기찬",
	"calm":       "차분하고 평온한, 편안한, 부드러운",
	"dramatic":   "극적인, 긴장감 있는, 웅장한",
	"romantic":   "로맨틱한, 감미로운, 따뜻한",
	"mysterious": "신비로운, 미스터리한, 몽환적인",
	"nostalgic":  "향수를 불러일으키는, 복고적인, 추억의",
	"epic":       "웅장하고 장대한, 영웅적인, 압도적인",
	"playful":    "장난스러운, 유쾌한, 재미있는",
}

var sunoVocals = map[string]string{
	"powerful":  "파워풀한 보컬, 강렬한 목소리, 넓은 음역대, 벨팅 기법",
	"soft":      "부드러운 보컬, 감미로운 목소리, 속삭이는 듯한, 인티메이트한 느낌",
	"raspy":     "허스키한 보컬, 거친 질감의 목소리, 감정적인 표현",
	"smooth":    "매끄러운 보컬, 부드럽게 흐르는 목소리, 실키한 톤",
	"soulful":   "소울풀한 보컬, 감정이 풍부한 표현, 멜리스마 기법",
	"operatic":  "오페라틱한 보컬, 클래식한 발성, 정확한 딕션",
	"rap":       "랩 보컬, 리듬감 있는 딜리버리, 플로우 중심, 명확한 발음",
	"breathy":   "숨이 섞인 보컬, 공기가 느껴지는 목소리, 감성적인 표현",
	"autotuned": "오토튠 효과가 적용된 보컬, 전자적인 느낌, 미래적인 사운드",
	"choir":     "합창단 스타일, 여러 목소리의 하모니, 풍성한 화음",
	"folk":      "포크 보컬, 자연스럽고 진정성 있는 목소리, 스토리텔링 중심",
	"blues":     "블루스 보컬, 감정의 깊이가 느껴지는, 애절한 표현",
	"country":   "컨트리 보컬, 내러티브가 중요한, 따뜻하고 친근한 목소리",
	"metal":     "메탈 보컬, 극적이고 강력한, 스크리밍과 그로울링 포함",
	"gospel":    "가스펠 보컬, 영적이고 감동적인, 풍부한 감정 표현",
}

var sunoInstruments = map[string]string{
	"band":         "밴드 구성(기타, 베이스, 드럼, 키보드)",
	"orchestra":    "오케스트라 구성(현악기, 관악기, 타악기)",
	"electronic":   "전자 악기 구성(신디사이저, 드럼머신, 샘플러)",
	"acoustic":     "어쿠스틱 악기 구성(어쿠스틱 기타, 피아노, 가벼운 타악기)",
	"hiphop":       "힙합 구성(비트, 베이스, 샘플)",
	"jazz":         "재즈 구성(피아노, 더블 베이스, 드럼, 색소폰)",
	"rock":         "록 밴드 구성(일렉 기타, 베이스, 드럼, 보컬)",
	"pop":          "팝 구성(신디사이저, 드럼, 기타, 베이스)",
	"rnb":          "R&B 구성(피아노, 베이스, 드럼, 신디사이저, 때로는 현악기)",
	"minimal":      "미니멀 구성(피아노 또는 기타 중심, 최소한의 반주)",
	"experimental": "실험적 구성(비전통적 악기, 특이한 사운드 디자인)",
}

var sunoStructures = map[string]string{
	"verse_chorus":     "일반적인 구조(인트로, 버스, 코러스, 버스, 코러스, 브릿지, 코러스, 아웃트로)",
	"ambient":          "앰비언트 구조(점진적 발전, 레이어 추가, 클라이맥스 없음)",
	"buildup_drop":     "빌드업과 드롭 구조(인트로, 빌드업, 드롭, 브레이크, 빌드업, 드롭, 아웃트로)",
	"aaba":             "AABA 구조(A 섹션 두 번, B 섹션, A 섹션)",
	"through_composed": "스루 컴포즈드 구조(반복 없이 계속 발전)",
	"loop_based":       "루프 기반 구조(반복적인 패턴, 점진적 변화)",
	"call_response":    "콜 앤 리스폰스 구조(질문과 응답 형식)",
	"sonata":           "소나타 구조(제시부, 발전부, 재현부)",
	"theme_variations": "주제와 변주 구조(기본 주제 제시 후 다양한 변주)",
	"freestyle":        "자유로운 구조(전통적 구조에 얽매이지 않음)",
}

// sunoGenre holds the genre defaults used when the text names nothing more specific.
type sunoGenre struct {
	Mood, Lyrics, Instruments, Vocal, Structure string
}

var sunoGenres = map[string]sunoGenre{
	"pop":        {Mood: "밝고 경쾌한 분위기", Lyrics: "사랑과 관계에 관한 가사", Instruments: "pop", Vocal: "smooth", Structure: "verse_chorus"},
	"rock":       {Mood: "에너지 넘치고 강렬한 분위기", Lyrics: "자유와 반항에 관한 가사", Instruments: "rock", Vocal: "powerful", Structure: "verse_chorus"},
	"hiphop":     {Mood: "자신감 있고 도시적인 분위기", Lyrics: "자신의 경험과 성공에 관한 가사", Instruments: "hiphop", Vocal: "rap", Structure: "verse_chorus"},
	"electronic": {Mood: "미래적이고 몽환적인 분위기", Lyrics: "축제와 자유에 관한 가사, 또는 가사 없음", Instruments: "electronic", Vocal: "autotuned", Structure: "buildup_drop"},
	"jazz":       {Mood: "세련되고 부드러운 분위기", Lyrics: "감성과 인생에 관한 가사", Instruments: "jazz", Vocal: "soulful", Structure: "aaba"},
	"classical":  {Mood: "우아하고 감성적인 분위기", Instruments: "orchestra", Structure: "sonata"},
	"folk":       {Mood: "따뜻하고 친근한 분위기", Lyrics: "자연과 인생의 여정에 관한 가사", Instruments: "acoustic", Vocal: "folk", Structure: "verse_chorus"},
	"rnb":        {Mood: "감성적이고 부드러운 분위기", Lyrics: "사랑과 관계의 깊은 감정에 관한 가사", Instruments: "rnb", Vocal: "soulful", Structure: "verse_chorus"},
	"soundtrack": {Mood: "극적이고 감동적인 분위기", Lyrics: "영화나 이야기의 주제에 맞는 가사, 또는 가사 없음", Instruments: "orchestra", Vocal: "choir", Structure: "through_composed"},
}

func NewSuno() *Suno {
	return &Suno{
		Base: Base{
			info: domain.ModelInfo{
				ModelID:   "suno",
				ModelName: "Suno",
				Provider:  "Suno",
				Category:  domain.MusicCategory,
				Capabilities: []string{
					"music_generation", "lyrics_generation", "genre_style_control", "mood_control",
					"instrumentation_control", "structure_control", "vocal_style_control",
				},
				MaxTokens:          600,
				SupportsMultimodal: false,
				BestPractices: []string{
					"음악 장르와 스타일 명확히 지정",
					"가사 주제와 내용 구체적 설명",
					"원하는 악기 구성 명시",
					"분위기와 감정 표현 포함",
					"곡의 구조와 전개 설명",
					"보컬 스타일과 특성 지정",
					"참조 아티스트나 곡 언급",
				},
			},
			structure: sameOrder([]string{
				"genre_style", "mood_emotion", "lyrics_theme", "instrumentation",
				"vocal_style", "song_structure", "reference_artists", "technical_specifications",
			}, "song_structure", "reference_artists", "technical_specifications"),
			tips: map[string][]string{
				"music_generation": {
					"장르, 분위기, 템포를 함께 지정하세요.",
					"곡의 길이와 전개를 설명하면 더 완성도 있는 결과를 얻을 수 있습니다.",
				},
				"lyrics_generation": {
					"가사의 주제와 화자의 관점을 명시하세요.",
					"반복되는 후렴구의 핵심 문장을 제시하세요.",
				},
				"genre_style_control": {"하위 장르나 시대를 구체적으로 언급하세요."},
				"mood_control":        {"감정의 변화가 필요하면 곡의 구간별로 설명하세요."},
				"instrumentation_control": {
					"주요 악기와 반주 악기를 구분해서 적으세요.",
				},
				"structure_control":   {"인트로, 버스, 코러스 같은 구간 순서를 명시하세요."},
				"vocal_style_control": {"보컬의 성별, 음색, 창법을 구체적으로 설명하세요."},
			},
			fallbackTips: []string{"Suno는 음악 생성에 특화된 모델입니다. 장르와 분위기를 구체적으로 설명하세요."},
			rules:        DefaultRules,
		},
		genres: NewSubtypes("genre", []matcher.Rule{
			{Label: "pop", Keywords: []string{"팝", "대중음악", "팝송", "팝스타", "팝 음악"}},
			{Label: "rock", Keywords: []string{"록", "락", "록음악", "기타", "밴드", "헤비메탈", "메탈"}},
			{Label: "hiphop", Keywords: []string{"힙합", "랩", "래퍼", "비트", "플로우", "라임"}},
			{Label: "electronic", Keywords: []string{"일렉트로닉", "EDM", "테크노", "하우스", "트랜스", "신디사이저"}},
			{Label: "jazz", Keywords: []string{"재즈", "스윙", "즉흥연주", "색소폰", "트럼펫"}},
			{Label: "classical", Keywords: []string{"클래식", "오케스트라", "교향곡", "협주곡", "소나타"}},
			{Label: "folk", Keywords: []string{"포크", "어쿠스틱", "전통음악", "민속음악"}},
			{Label: "rnb", Keywords: []string{"R&B", "알앤비", "소울", "리듬앤블루스"}},
			{Label: "soundtrack", Keywords: []string{"사운드트랙", "영화음악", "배경음악", "OST", "테마곡"}},
		}, "pop"),
	}
}

func (m *Suno) OptimizePrompt(f domain.FeatureRecord, _ domain.IntentRecord) string {
	genre := m.genres.Detect(f)
	slots := ExtractSlots(f.RawText, sunoSlots)
	defaults := sunoGenres[genre]
	return m.finish(Join(commaJoin,
		Fill(sunoGenreTemplates[genre], slots),
		m.pick(f, "mood", slots["mood"], sunoMoodLiterals, sunoMoods, defaults.Mood),
		m.lyrics(f, genre, slots),
		m.pick(f, "instruments", slots["instruments"], sunoInstrumentLiterals, sunoInstruments, sunoInstruments[defaults.Instruments]),
		m.pick(f, "vocal_style", slots["vocal_style"], sunoVocalLiterals, sunoVocals, sunoVocals[defaults.Vocal]),
		m.pick(f, "structure", slots["structure"], sunoStructureLiterals, sunoStructures, sunoStructures[defaults.Structure]),
		m.references(f),
		m.technical(f),
	))
}

// pick resolves one section: the override labels, then the literal found in the text, then the genre default.
func (m *Suno) pick(f domain.FeatureRecord, key, literal string, literals, table map[string]string, fallback string) string {
	if labels := f.Overrides.Strings(key); len(labels) > 0 {
		texts := make([]string, 0, len(labels))
		for _, l := range labels {
			texts = append(texts, lookup(table, l, l))
		}
		return strings.Join(texts, ", ")
	}
	if label, ok := literals[literal]; ok {
		return table[label]
	}
	return fallback
}

// lyrics is empty for classical pieces unless a theme is requested.
func (m *Suno) lyrics(f domain.FeatureRecord, genre string, slots map[string]string) string {
	if theme, ok := f.Overrides.String("lyrics_theme"); ok {
		return theme + "에 관한 가사"
	}
	if theme := slots["theme"]; theme != "" {
		return theme + "에 관한 가사"
	}
	return sunoGenres[genre].Lyrics
}

func (m *Suno) references(f domain.FeatureRecord) string {
	if refs := f.Overrides.Strings("references"); len(refs) > 0 {
		return "참조 아티스트: " + strings.Join(refs, ", ")
	}
	return ""
}

func (m *Suno) technical(f domain.FeatureRecord) string {
	params := m.GenerationParameters(f, domain.IntentRecord{})
	return fmt.Sprintf("고품질 오디오, %v 템포, %v, %v박자, %v초 길이",
		params["tempo"], params["key"], params["time_signature"], params["duration"])
}

func (m *Suno) GenerationParameters(f domain.FeatureRecord, _ domain.IntentRecord) map[string]any {
	params := map[string]any{
		"duration":       180,
		"tempo":          "medium",
		"key":            "C major",
		"time_signature": "4/4",
		"quality":        "high",
		"format":         "mp3",
	}
	switch m.genres.Detect(f) {
	case "hiphop":
		params["tempo"] = "medium-fast"
		params["emphasis"] = "rhythm"
	case "electronic":
		params["tempo"] = "fast"
		params["emphasis"] = "beat"
		params["effects"] = []string{"reverb", "delay"}
	case "classical":
		params["duration"] = 240
		params["tempo"] = "varied"
		params["emphasis"] = "melody"
		params["dynamics"] = "varied"
	case "jazz":
		params["tempo"] = "varied"
		params["emphasis"] = "improvisation"
		params["swing"] = true
	}
	switch f.Complexity {
	case domain.HighComplexity:
		params["duration"] = 300
		params["arrangement"] = "complex"
	case domain.LowComplexity:
		params["duration"] = 120
		params["arrangement"] = "simple"
	}
	if d, ok := f.Overrides.Int("duration"); ok && d > 0 {
		params["duration"] = d
	}
	return params
}

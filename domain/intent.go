package domain

const (
	DefaultIntent  = "generate_content"
	DefaultUrgency = "medium"
)

type Intent struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// IntentRecord is a best-effort secondary signal.
// Adapters read it but never depend on it being accurate.
type IntentRecord struct {
	Primary       Intent `json:"primary_intent"`
	IsCreative    bool   `json:"is_creative"`
	IsTechnical   bool   `json:"is_technical"`
	IsCoding      bool   `json:"is_coding"`
	IsMathProblem bool   `json:"is_math_problem"`
	Urgency       string `json:"urgency_level"`
	OutputFormat  string `json:"output_format,omitempty"`
}

func NewDefaultIntent() IntentRecord {
	return IntentRecord{
		Primary: Intent{Label: DefaultIntent, Confidence: 0.8},
		Urgency: DefaultUrgency,
	}
}

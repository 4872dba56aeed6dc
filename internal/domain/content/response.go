package content

// Fixed parameter block attached to every generated response.
const (
	DefaultInteractive = true
	DefaultComplexity  = "medium"
	DefaultDuration    = 5
)

type PromptRequest struct {
	Prompt string `json:"prompt"`
	// Context is accepted and carried but not read by the pipeline.
	Context map[string]any `json:"context,omitempty"`
}

type Parameters struct {
	Interactive bool    `json:"interactive"`
	Complexity  string  `json:"complexity"`
	Duration    float64 `json:"duration"`
}

func DefaultParameters() Parameters {
	return Parameters{
		Interactive: DefaultInteractive,
		Complexity:  DefaultComplexity,
		Duration:    DefaultDuration,
	}
}

type GeneratedResponse struct {
	GeneratedText string     `json:"generated_text"`
	AnimationType string     `json:"animation_type"`
	Subject       SubjectTag `json:"subject"`
	Parameters    Parameters `json:"parameters"`
}

package models

// GeminiConfig holds the Gemini provider configuration.
type GeminiConfig struct {
	APIKey string `json:"-" yaml:"api_key"`
	Model  string `json:"model,omitzero" yaml:"model"`

	Generation GenerationDefaults `json:"generation,omitzero" yaml:"generation"`
}

// GenerationDefaults mirrors the default generation settings sent with every
// completion call. Temperature is overridden per persona.
type GenerationDefaults struct {
	Temperature     float32 `json:"temperature,omitzero" yaml:"temperature"`
	TopP            float32 `json:"top_p,omitzero" yaml:"top_p"`
	TopK            float32 `json:"top_k,omitzero" yaml:"top_k"`
	MaxOutputTokens int32   `json:"max_output_tokens,omitzero" yaml:"max_output_tokens"`
}

// DispatchConfig holds tuning knobs for the request dispatcher.
type DispatchConfig struct {
	// ThrottleIntervalMs is the minimum spacing between consecutive
	// outbound completion calls on the round-start path.
	ThrottleIntervalMs int `json:"throttle_interval_ms,omitzero" yaml:"throttle_interval_ms"`
}

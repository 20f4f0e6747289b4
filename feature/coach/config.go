package coach

// Config holds configuration for the AI coach.
type Config struct {
	// ApiKey is the Gemini API key. When empty the coach feature answers
	// with a "not configured" response instead of calling out.
	ApiKey string `mapstructure:"api_key" default:""`
	// Model is the generative model used for chat and content generation.
	Model string `mapstructure:"model" default:"gemini-2.0-flash"`
}

// IsConfigured reports whether the coach can reach the generative API.
func (c Config) IsConfigured() bool {
	return c.ApiKey != ""
}

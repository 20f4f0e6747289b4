package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. When empty the
	// server runs in open local mode and no key is enforced.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Protected reports whether API key enforcement is enabled.
func (c Config) Protected() bool {
	return c.ApiKey != ""
}

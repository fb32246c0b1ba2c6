package config

// Config holds the resolved settings for one invocation
type Config struct {
	// Search inputs
	Query      string
	FilePath   string
	IgnoreCase bool

	// Logging
	LogLevel  string
	LogFormat string
}

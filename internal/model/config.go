package model

import "time"

// Config holds the complete uttor configuration
type Config struct {
	Database  DatabaseConfig  `yaml:"database" mapstructure:"database"`
	Retrieval RetrievalConfig `yaml:"retrieval" mapstructure:"retrieval"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Voice     VoiceConfig     `yaml:"voice" mapstructure:"voice"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DatabaseConfig locates the FAQ corpus file
type DatabaseConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // Path to the FAQ JSON file
}

// RetrievalConfig controls ranking and acceptance
type RetrievalConfig struct {
	// Threshold is the minimum score the top-ranked match must reach
	// before it is accepted as an answer
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
	// TopK is the number of results returned for multi-result display
	TopK int `yaml:"top_k" mapstructure:"top_k"`
}

// CacheConfig controls the in-session answer cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// OutputConfig controls user-facing rendering
type OutputConfig struct {
	IncludeMetadata bool `yaml:"include_metadata" mapstructure:"include_metadata"` // Append difficulty/confidence footer to answers
	Color           bool `yaml:"color" mapstructure:"color"`
	Verbose         bool `yaml:"verbose" mapstructure:"verbose"`
}

// VoiceConfig configures the optional speech collaborator.
// Voice is never required for answer generation.
type VoiceConfig struct {
	Enabled         bool    `yaml:"enabled" mapstructure:"enabled"`
	APIKey          string  `yaml:"-" mapstructure:"api_key"` // From OPENAI_API_KEY, never written to disk
	BaseURL         string  `yaml:"base_url,omitempty" mapstructure:"base_url"`
	TranscribeModel string  `yaml:"transcribe_model" mapstructure:"transcribe_model"`
	SpeechModel     string  `yaml:"speech_model" mapstructure:"speech_model"`
	SpeechVoice     string  `yaml:"speech_voice" mapstructure:"speech_voice"`
	Language        string  `yaml:"language" mapstructure:"language"`
	RequestsPerSec  float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// LogConfig controls diagnostic logging (not user-facing output)
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // console or json
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "data/bangla_faqs.json",
		},
		Retrieval: RetrievalConfig{
			Threshold: 0.1,
			TopK:      3,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		Output: OutputConfig{
			IncludeMetadata: true,
			Color:           true,
		},
		Voice: VoiceConfig{
			Enabled:         false,
			TranscribeModel: "whisper-1",
			SpeechModel:     "tts-1",
			SpeechVoice:     "alloy",
			Language:        "bn",
			RequestsPerSec:  1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Classifier ClassifierConfig
	Storage    StorageConfig
	Resolver   ResolverConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// ClassifierConfig holds settings for the LLM form classifier.
type ClassifierConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	Endpoint     string `mapstructure:"endpoint"`
}

// StorageConfig holds remote object storage settings. SharedRoot is the
// logical top-level bid folder under which all remote artifacts live.
type StorageConfig struct {
	Region     string `mapstructure:"region"`
	Bucket     string `mapstructure:"bucket"`
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	SharedRoot string `mapstructure:"shared_root"`
}

// ResolverConfig holds the heuristics for locating a locally-synced mirror of
// the remote store. These are environment-specific and therefore
// configuration, not code.
type ResolverConfig struct {
	MirrorNames    []string `mapstructure:"mirror_names"`
	WellKnownRoots []string `mapstructure:"well_known_roots"`
	MaxAscend      int      `mapstructure:"max_ascend"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SEOSIK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SEOSIK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Classifier defaults
	v.SetDefault("classifier.provider", "openai")
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.default_model", "gpt-4.1-mini")
	v.SetDefault("classifier.timeout_secs", 120)
	v.SetDefault("classifier.endpoint", "")

	// Storage defaults
	v.SetDefault("storage.region", "ap-northeast-2")
	v.SetDefault("storage.bucket", "seosik-bids")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.shared_root", "입찰 2025")

	// Resolver defaults
	v.SetDefault("resolver.mirror_names", "Dropbox,드롭박스")
	v.SetDefault("resolver.well_known_roots", "")
	v.SetDefault("resolver.max_ascend", 5)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Comma-separated lists arrive as single strings from env vars.
	cfg.Resolver.MirrorNames = splitList(v.GetString("resolver.mirror_names"))
	cfg.Resolver.WellKnownRoots = splitList(v.GetString("resolver.well_known_roots"))

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

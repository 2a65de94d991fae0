package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Google account access
	GoogleOAuth GoogleOAuthConfig
	Frontend    FrontendConfig
	Session     SessionConfig
	Calendar    CalendarConfig
	CalDAV      CalDAVConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type FrontendConfig struct {
	URL string
}

type SessionConfig struct {
	CookieName  string
	TTL         time.Duration
	Secure      bool
	MaxSessions int
}

type CalendarConfig struct {
	CalendarID   string
	LookbackDays int
	MaxResults   int64
	Timezone     string
}

type CalDAVConfig struct {
	Endpoint     string
	Username     string
	Password     string
	CalendarPath string
	CalendarName string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
}

type RateLimitConfig struct {
	AnalyzePerMin int
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded into the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Google OAuth
	cfg.GoogleOAuth.ClientID = firstNonEmpty(v.GetString("google_client_id"), v.GetString("google_oauth.client_id"))
	cfg.GoogleOAuth.ClientSecret = firstNonEmpty(v.GetString("google_client_secret"), v.GetString("google_oauth.client_secret"))
	cfg.GoogleOAuth.RedirectURL = firstNonEmpty(v.GetString("google_redirect_uri"), v.GetString("google_oauth.redirect_url"))

	cfg.Frontend.URL = firstNonEmpty(v.GetString("frontend_url"), v.GetString("frontend.url"))

	cfg.Session.CookieName = v.GetString("session.cookie_name")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.Secure = v.GetBool("session.secure")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")

	cfg.Calendar.CalendarID = v.GetString("calendar.calendar_id")
	cfg.Calendar.LookbackDays = v.GetInt("calendar.lookback_days")
	cfg.Calendar.MaxResults = v.GetInt64("calendar.max_results")
	cfg.Calendar.Timezone = v.GetString("calendar.timezone")

	cfg.CalDAV.Endpoint = v.GetString("caldav.endpoint")
	cfg.CalDAV.Username = v.GetString("caldav.username")
	cfg.CalDAV.Password = v.GetString("caldav.password")
	cfg.CalDAV.CalendarPath = v.GetString("caldav.calendar_path")
	cfg.CalDAV.CalendarName = v.GetString("caldav.calendar_name")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a providers section, a bare ANTHROPIC_API_KEY is enough to run.
	if len(cfg.LLM.Providers) == 0 {
		if key := v.GetString("anthropic_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "anthropic",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    DefaultAnthropicModel,
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	cfg.RateLimit.AnalyzePerMin = v.GetInt("rate_limit.analyze_per_min")

	return cfg, nil
}

// DefaultAnthropicModel is used when only ANTHROPIC_API_KEY is configured.
const DefaultAnthropicModel = "claude-3-7-sonnet-20250219"

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 3001)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("google_oauth.redirect_url", "http://localhost:3001/api/auth/google/callback")
	v.SetDefault("frontend.url", "http://localhost:3000")

	v.SetDefault("session.cookie_name", "worklife_session")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.secure", false)
	v.SetDefault("session.max_sessions", 10000)

	v.SetDefault("calendar.calendar_id", "primary")
	v.SetDefault("calendar.lookback_days", 30)
	v.SetDefault("calendar.max_results", 100)
	v.SetDefault("calendar.timezone", "Local")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.max_total_timeout", "90s")

	v.SetDefault("rate_limit.analyze_per_min", 10)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add an llm.providers section to config.yaml or set ANTHROPIC_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// MaxTotalTimeoutDuration parses MaxTotalTimeout, zero when unset or invalid.
func (c LLMConfig) MaxTotalTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.MaxTotalTimeout)
	if err != nil {
		return 0
	}
	return d
}

// Location resolves the configured timezone. "Local" and "" mean the server zone.
func (c CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values
const (
	DefaultHTTPPort          = "8080"
	DefaultProviderTimeout   = 60 * time.Second
	DefaultQuestionLimit     = 5
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultOpenRouterModel   = "nvidia/nemotron-3-nano-30b-a3b:free"
	DefaultGeminiModel       = "gemini-2.0-flash"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultWhisperModel      = "whisper-1"
	DefaultTTSModel          = "tts-1"
	DefaultTTSVoice          = "onyx"
	DefaultLockTTL           = 5 * time.Minute
	DefaultCoachPlaceholder  = "Coaching feedback is unavailable for this answer. Keep going, you're doing fine."
)

// Provider and backend names
const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	TranscriptionOpenAI     = "openai"
	TranscriptionWhisperCpp = "whisper_cpp"

	AudioLocal = "local"
	AudioMinio = "minio"

	LockLocal = "local"
	LockRedis = "redis"
)

// Config is the full application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	LLM           LLMConfig           `yaml:"llm"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Speech        SpeechConfig        `yaml:"speech"`
	Audio         AudioConfig         `yaml:"audio"`
	Lock          LockConfig          `yaml:"lock"`
	Interview     InterviewConfig     `yaml:"interview"`

	// Keys are never read from the config file
	Keys APIKeys `yaml:"-"`
}

type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	Environment  string        `yaml:"environment"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// Development reports whether the server runs outside production
func (s ServerConfig) Development() bool {
	return s.Environment != "production"
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	// DSN is a file path for sqlite and a connection string for postgres
	DSN string `yaml:"dsn"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

type TranscriptionConfig struct {
	Backend    string `yaml:"backend"`
	Model      string `yaml:"model"`
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
}

type SpeechConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
	Voice   string `yaml:"voice"`
}

type AudioConfig struct {
	Backend string      `yaml:"backend"`
	Dir     string      `yaml:"dir"`
	URLPath string      `yaml:"url_path"`
	Minio   MinioConfig `yaml:"minio"`
}

type MinioConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	AccessKey string        `yaml:"access_key"`
	SecretKey string        `yaml:"secret_key"`
	Bucket    string        `yaml:"bucket"`
	UseSSL    bool          `yaml:"use_ssl"`
	URLExpiry time.Duration `yaml:"url_expiry"`
}

type LockConfig struct {
	Backend       string        `yaml:"backend"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
}

type InterviewConfig struct {
	DefaultQuestionLimit int           `yaml:"default_question_limit"`
	ProviderTimeout      time.Duration `yaml:"provider_timeout"`
	CoachingPlaceholder  string        `yaml:"coaching_placeholder"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         DefaultHTTPPort,
			Environment:  "development",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Minute,
			IdleTimeout:  2 * time.Minute,
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    filepath.Join("data", "interview.db"),
		},
		LLM: LLMConfig{
			Provider: ProviderOpenAI,
		},
		Transcription: TranscriptionConfig{
			Backend:  TranscriptionOpenAI,
			Model:    DefaultWhisperModel,
			Language: "en",
		},
		Speech: SpeechConfig{
			Enabled: true,
			Model:   DefaultTTSModel,
			Voice:   DefaultTTSVoice,
		},
		Audio: AudioConfig{
			Backend: AudioLocal,
			Dir:     filepath.Join("data", "audio"),
			URLPath: "/audio",
			Minio: MinioConfig{
				Endpoint:  "localhost:9000",
				Bucket:    "interview-audio",
				URLExpiry: 24 * time.Hour,
			},
		},
		Lock: LockConfig{
			Backend: LockLocal,
			TTL:     DefaultLockTTL,
		},
		Interview: InterviewConfig{
			DefaultQuestionLimit: DefaultQuestionLimit,
			ProviderTimeout:      DefaultProviderTimeout,
			CoachingPlaceholder:  DefaultCoachPlaceholder,
		},
	}
}

// Load reads the YAML file at path on top of the defaults, applies
// environment overrides and validates the result. An empty path skips the
// file; COACH_CONFIG may name one.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("COACH_CONFIG")
	}
	if path != "" {
		path = os.ExpandEnv(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	keys, err := GetAPIKeys()
	if err != nil {
		return nil, err
	}
	cfg.Keys = *keys

	cfg.applyEnv()
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Server.Host, "HOST")
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.Environment, "COACH_ENV")
	setString(&c.Database.Driver, "COACH_DB_DRIVER")
	setString(&c.Database.DSN, "COACH_DB_DSN")
	setString(&c.LLM.Provider, "COACH_LLM_PROVIDER")
	setString(&c.LLM.Model, "COACH_LLM_MODEL")
	setString(&c.LLM.BaseURL, "COACH_LLM_BASE_URL")
	setString(&c.Transcription.Backend, "COACH_TRANSCRIPTION_BACKEND")
	setString(&c.Transcription.BinaryPath, "WHISPER_CPP_BINARY")
	setString(&c.Transcription.ModelPath, "WHISPER_CPP_MODEL")
	setString(&c.Speech.Voice, "COACH_TTS_VOICE")
	setString(&c.Audio.Backend, "COACH_AUDIO_BACKEND")
	setString(&c.Audio.Dir, "COACH_AUDIO_DIR")
	setString(&c.Audio.Minio.Endpoint, "MINIO_ENDPOINT")
	setString(&c.Audio.Minio.AccessKey, "MINIO_ACCESS_KEY")
	setString(&c.Audio.Minio.SecretKey, "MINIO_SECRET_KEY")
	setString(&c.Audio.Minio.Bucket, "MINIO_BUCKET")
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		c.Audio.Minio.UseSSL = v == "true"
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Lock.RedisAddr = v
		c.Lock.Backend = LockRedis
	}
	setString(&c.Lock.RedisPassword, "REDIS_PASSWORD")
	if v := os.Getenv("COACH_PROVIDER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Interview.ProviderTimeout = d
		}
	}
	if v := os.Getenv("COACH_QUESTION_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Interview.DefaultQuestionLimit = n
		}
	}

	// An OpenRouter key takes precedence over OpenAI unless a provider was
	// picked explicitly.
	if os.Getenv("COACH_LLM_PROVIDER") == "" && c.Keys.OpenRouter != "" && c.LLM.Provider == ProviderOpenAI {
		c.LLM.Provider = ProviderOpenRouter
	}
}

func (c *Config) setDefaults() {
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case ProviderOpenRouter:
			c.LLM.Model = DefaultOpenRouterModel
		case ProviderGemini:
			c.LLM.Model = DefaultGeminiModel
		default:
			c.LLM.Model = DefaultOpenAIModel
		}
	}
	if c.LLM.Provider == ProviderOpenRouter && c.LLM.BaseURL == "" {
		c.LLM.BaseURL = DefaultOpenRouterBaseURL
	}
	if c.Interview.ProviderTimeout == 0 {
		c.Interview.ProviderTimeout = DefaultProviderTimeout
	}
	if c.Interview.DefaultQuestionLimit == 0 {
		c.Interview.DefaultQuestionLimit = DefaultQuestionLimit
	}
	if strings.TrimSpace(c.Interview.CoachingPlaceholder) == "" {
		c.Interview.CoachingPlaceholder = DefaultCoachPlaceholder
	}
	if c.Lock.TTL == 0 {
		c.Lock.TTL = DefaultLockTTL
	}
}

// Validate checks the configuration for inconsistent values
func (c *Config) Validate() error {
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	if err := ValidateOneOf(c.Database.Driver, "database.driver", DriverSQLite, DriverPostgres); err != nil {
		return err
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if err := ValidateOneOf(c.LLM.Provider, "llm.provider", ProviderOpenAI, ProviderOpenRouter, ProviderGemini); err != nil {
		return err
	}
	if c.LLM.BaseURL != "" {
		if err := ValidateURL(c.LLM.BaseURL, "llm.base_url"); err != nil {
			return err
		}
	}
	if err := ValidateOneOf(c.Transcription.Backend, "transcription.backend", TranscriptionOpenAI, TranscriptionWhisperCpp); err != nil {
		return err
	}
	if c.Transcription.Backend == TranscriptionWhisperCpp && (c.Transcription.BinaryPath == "" || c.Transcription.ModelPath == "") {
		return fmt.Errorf("whisper_cpp transcription requires binary_path and model_path")
	}
	if err := ValidateOneOf(c.Audio.Backend, "audio.backend", AudioLocal, AudioMinio); err != nil {
		return err
	}
	if err := ValidateOneOf(c.Lock.Backend, "lock.backend", LockLocal, LockRedis); err != nil {
		return err
	}
	if c.Lock.Backend == LockRedis && c.Lock.RedisAddr == "" {
		return fmt.Errorf("redis lock backend requires redis_addr")
	}
	if err := ValidateTimeout(c.Interview.ProviderTimeout, "provider"); err != nil {
		return err
	}
	return ValidateQuestionLimit(c.Interview.DefaultQuestionLimit)
}

// LLMKey returns the API key matching the configured language model provider
func (c *Config) LLMKey() string {
	switch c.LLM.Provider {
	case ProviderOpenRouter:
		return c.Keys.OpenRouter
	case ProviderGemini:
		return c.Keys.Gemini
	default:
		return c.Keys.OpenAI
	}
}

func setString(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}

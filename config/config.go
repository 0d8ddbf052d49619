package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// GeminiAPIKeyEnv is the single required secret. It is read once at
// startup; a missing key is fatal to process startup, never a per-request
// error.
const GeminiAPIKeyEnv = "GEMINI_API_KEY"

type AppConfig struct {
	Logging      LoggingConfig      `yaml:"logging"`
	Server       ServerConfig       `yaml:"server"`
	GeminiModel  string             `yaml:"gemini_model"`
	Fetch        FetchConfig        `yaml:"fetch"`
	Pipeline     PipelineConfig     `yaml:"pipeline"`
	SummaryQuota SummaryQuotaConfig `yaml:"summary_quota"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`

	// MaxRequestSizeMB bounds inbound request bodies via the
	// Content-Length guard middleware.
	MaxRequestSizeMB int `yaml:"max_request_size_mb"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type FetchConfig struct {
	// ProbeTimeoutSeconds bounds the HEAD metadata probe.
	ProbeTimeoutSeconds int `yaml:"probe_timeout_seconds"`

	// FetchTimeoutSeconds bounds the full body download.
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds"`

	// MaxRemoteSizeMB is the declared-size ceiling for remote resources.
	MaxRemoteSizeMB int `yaml:"max_remote_size_mb"`

	// Extractor selects the HTML text extraction strategy:
	// strip (default), readability, trafilatura, goose.
	Extractor string `yaml:"extractor"`

	// RenderJS re-fetches HTML pages through headless Chrome before
	// extraction. Needed for client-rendered sites.
	RenderJS bool `yaml:"render_js"`
}

type PipelineConfig struct {
	// PDFStrategy selects how PDF inputs are summarized:
	// two_step (default) or single_pass.
	PDFStrategy string `yaml:"pdf_strategy"`
}

// SummaryQuotaConfig defines rate/day ceilings for model calls.
// Values of 0 or below mean no limit.
type SummaryQuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

// ProbeTimeout returns the HEAD probe deadline, defaulting to 10s.
func (f FetchConfig) ProbeTimeout() time.Duration {
	if f.ProbeTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(f.ProbeTimeoutSeconds) * time.Second
}

// FetchTimeout returns the full download deadline, defaulting to 30s.
func (f FetchConfig) FetchTimeout() time.Duration {
	if f.FetchTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(f.FetchTimeoutSeconds) * time.Second
}

// MaxRemoteSizeBytes returns the remote size ceiling in bytes,
// defaulting to 15 MB.
func (f FetchConfig) MaxRemoteSizeBytes() int64 {
	mb := f.MaxRemoteSizeMB
	if mb <= 0 {
		mb = 15
	}
	return int64(mb) * 1024 * 1024
}

// MaxRequestSizeBytes returns the inbound size ceiling in bytes,
// defaulting to 15 MB.
func (s ServerConfig) MaxRequestSizeBytes() int64 {
	mb := s.MaxRequestSizeMB
	if mb <= 0 {
		mb = 15
	}
	return int64(mb) * 1024 * 1024
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// GetAPIKey reads the Gemini API key from the environment.
func GetAPIKey() string {
	return os.Getenv(GeminiAPIKeyEnv)
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

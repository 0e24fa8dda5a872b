package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider names accepted in OCR.Providers
const (
	ProviderVision    = "vision"
	ProviderTesseract = "tesseract"
	ProviderPaddle    = "paddle"
	ProviderQR        = "qr"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Upload  UploadConfig  `yaml:"upload"`
	Logging LoggingConfig `yaml:"logging"`
	OCR     OCRConfig     `yaml:"ocr"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type UploadConfig struct {
	MaxFileSize int64 `yaml:"max_file_size"`
	MaxFiles    int   `yaml:"max_files"`
	// MaxMultipartMemory is handed to gin before spilling to disk
	MaxMultipartMemory int64 `yaml:"max_multipart_memory"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

type OCRConfig struct {
	// Providers is the detector chain, tried in order
	Providers  []string      `yaml:"providers"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`

	Vision    VisionConfig    `yaml:"vision"`
	Tesseract TesseractConfig `yaml:"tesseract"`
	Paddle    PaddleConfig    `yaml:"paddle"`
}

type VisionConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	// LanguageHints are passed to TEXT_DETECTION, e.g. ["en", "hi"]
	LanguageHints []string `yaml:"language_hints"`
}

type TesseractConfig struct {
	DataPath  string   `yaml:"data_path"`
	Languages []string `yaml:"languages"`
}

type PaddleConfig struct {
	APIURL string `yaml:"api_url"`
}

// Default returns the configuration used when no file or env override is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Upload: UploadConfig{
			MaxFileSize:        10 * 1024 * 1024, // 10 MB
			MaxFiles:           5,
			MaxMultipartMemory: 32 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		OCR: OCRConfig{
			Providers:  []string{ProviderQR, ProviderVision, ProviderTesseract},
			Timeout:    30 * time.Second,
			MaxRetries: 2,
			Vision: VisionConfig{
				LanguageHints: []string{"en", "hi"},
			},
			Tesseract: TesseractConfig{
				DataPath:  "/usr/share/tesseract-ocr/5/tessdata/",
				Languages: []string{"eng", "hin"},
			},
			Paddle: PaddleConfig{
				APIURL: "http://paddleocr:8866/predict/ocr_system",
			},
		},
	}
}

// LoadConfig reads defaults, then the optional YAML file at path, then
// environment overrides, and validates the result. An empty path skips the
// file.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("TESSDATA_PREFIX"); v != "" {
		c.OCR.Tesseract.DataPath = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		c.OCR.Vision.CredentialsFile = v
	}
	if v := os.Getenv("PADDLEOCR_API_URL"); v != "" {
		c.OCR.Paddle.APIURL = v
	}
	if v := os.Getenv("IDVERIFY_OCR_PROVIDERS"); v != "" {
		c.OCR.Providers = splitList(v)
	}
	if v := os.Getenv("IDVERIFY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("IDVERIFY_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("IDVERIFY_MAX_FILE_SIZE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid IDVERIFY_MAX_FILE_SIZE %q: %w", v, err)
		}
		c.Upload.MaxFileSize = n
	}
	if v := os.Getenv("IDVERIFY_OCR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid IDVERIFY_OCR_TIMEOUT %q: %w", v, err)
		}
		c.OCR.Timeout = d
	}
	return nil
}

// Validate reports every problem found, joined
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is required"))
	} else if _, err := strconv.Atoi(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("server port %q is not a number", c.Server.Port))
	}
	if c.Upload.MaxFileSize <= 0 {
		errs = append(errs, errors.New("upload max_file_size must be positive"))
	}
	if c.Upload.MaxFiles <= 0 {
		errs = append(errs, errors.New("upload max_files must be positive"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}

	if len(c.OCR.Providers) == 0 {
		errs = append(errs, errors.New("at least one OCR provider is required"))
	}
	for _, p := range c.OCR.Providers {
		switch p {
		case ProviderVision, ProviderTesseract, ProviderPaddle, ProviderQR:
		default:
			errs = append(errs, fmt.Errorf("unknown OCR provider %q", p))
		}
	}
	if c.OCR.Timeout <= 0 {
		errs = append(errs, errors.New("ocr timeout must be positive"))
	}
	if c.OCR.MaxRetries < 0 {
		errs = append(errs, errors.New("ocr max_retries cannot be negative"))
	}

	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

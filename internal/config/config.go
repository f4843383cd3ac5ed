package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultAdminURL      = "http://localhost:9002"
	DefaultListenAddress = ":9192"
	DefaultMetricsPath   = "/metrics"
)

// Config is the exporter configuration. Fields map 1:1 to hhvm_exporter.yaml.
type Config struct {
	HHVM HHVMConfig `yaml:"hhvm"`
	Web  WebConfig  `yaml:"web"`
	Log  LogConfig  `yaml:"log"`
}

// HHVMConfig describes the monitored HHVM admin server.
type HHVMConfig struct {
	// AdminURL is the base URL of the admin server; /check-health,
	// /memory.json and /status.json are appended to it.
	AdminURL string `yaml:"admin_url"`

	// TLS holds optional TLS dial options for an https admin URL.
	TLS TLSConfig `yaml:"tls"`
}

// TLSConfig holds TLS dial options.
type TLSConfig struct {
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// WebConfig configures the exposition HTTP server.
type WebConfig struct {
	// ListenAddress is host:port; an empty host listens on all interfaces.
	ListenAddress string `yaml:"listen_address"`

	// MetricsPath is the path the exposition is served under.
	MetricsPath string `yaml:"metrics_path"`
}

// LogConfig configures logging. Debug is the only setting applied on reload.
type LogConfig struct {
	Debug bool `yaml:"debug"`

	// File, when set, writes logs to a rotated file instead of stderr.
	File string `yaml:"file"`
}

// Overrides carries command-line values. Zero fields leave the config as is.
type Overrides struct {
	AdminURL      string
	ListenAddress string
	MetricsPath   string
	LogFile       string
	Debug         bool
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		HHVM: HHVMConfig{AdminURL: DefaultAdminURL},
		Web: WebConfig{
			ListenAddress: DefaultListenAddress,
			MetricsPath:   DefaultMetricsPath,
		},
	}
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies every non-zero override into cfg.
func (cfg *Config) Apply(o Overrides) {
	if o.AdminURL != "" {
		cfg.HHVM.AdminURL = o.AdminURL
	}
	if o.ListenAddress != "" {
		cfg.Web.ListenAddress = o.ListenAddress
	}
	if o.MetricsPath != "" {
		cfg.Web.MetricsPath = o.MetricsPath
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	if o.Debug {
		cfg.Log.Debug = true
	}
}

// Validate checks required fields and structural constraints, reporting
// every problem found.
func (cfg *Config) Validate() error {
	var errs error

	u, err := url.Parse(cfg.HHVM.AdminURL)
	switch {
	case cfg.HHVM.AdminURL == "":
		errs = multierr.Append(errs, fmt.Errorf("hhvm.admin_url is required"))
	case err != nil:
		errs = multierr.Append(errs, fmt.Errorf("hhvm.admin_url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = multierr.Append(errs, fmt.Errorf("hhvm.admin_url: unsupported scheme %q", u.Scheme))
	case u.Host == "":
		errs = multierr.Append(errs, fmt.Errorf("hhvm.admin_url: missing host"))
	}

	if _, _, err := net.SplitHostPort(cfg.Web.ListenAddress); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("web.listen_address: %w", err))
	}

	switch p := cfg.Web.MetricsPath; {
	case !strings.HasPrefix(p, "/"):
		errs = multierr.Append(errs, fmt.Errorf("web.metrics_path %q must start with /", p))
	case p == "/" || p == "/healthz":
		errs = multierr.Append(errs, fmt.Errorf("web.metrics_path %q collides with a built-in route", p))
	}

	if errs != nil {
		return fmt.Errorf("config: %w", errs)
	}
	return nil
}

package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vango-dev/vbridge/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vbridge.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4700

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vbridge"

	// DefaultIndent is the default indent of pretty-printed HTML.
	DefaultIndent = "  "
)

// Unmount policies for callbacks still queued when a component unmounts.
const (
	UnmountDrop  = "drop"
	UnmountFlush = "flush"
)

// Config represents the complete vbridge.json configuration.
type Config struct {
	// Port is the preview server port.
	Port int `json:"port,omitempty"`

	// Host is the preview server bind host.
	Host string `json:"host,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty"`

	// UnmountPolicy decides what happens to pending NextTick callbacks when
	// a component unmounts: "drop" or "flush".
	UnmountPolicy string `json:"unmountPolicy,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Render contains HTML output settings.
	Render RenderConfig `json:"render,omitempty"`

	configPath string
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled registers adapter metrics and serves /metrics.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty indents rendered HTML.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indent unit used when Pretty is set.
	Indent string `json:"indent,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads vbridge.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	cfg, err := LoadFile(path)
	if err != nil && stderrors.Is(err, fs.ErrNotExist) {
		cfg = New()
		cfg.configPath = path
		return cfg, nil
	}
	return cfg, err
}

// LoadFile reads and validates the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E202").Wrap(err).WithDetailf("could not read %s", path)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		be := errors.New("E202").Wrap(err).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
		var syntax *json.SyntaxError
		if stderrors.As(err, &syntax) {
			line, col := position(data, syntax.Offset)
			be = be.WithLocation(path, line, col)
		}
		return nil, be
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E202").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E202").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.UnmountPolicy == "" {
		c.UnmountPolicy = UnmountDrop
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("E201").
			WithDetailf("port must be between 1 and 65535, got %d", c.Port)
	}
	switch c.UnmountPolicy {
	case UnmountDrop, UnmountFlush:
	default:
		return errors.New("E201").
			WithDetailf("unmountPolicy must be %q or %q, got %q", UnmountDrop, UnmountFlush, c.UnmountPolicy)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return errors.New("E201").
			WithDetailf("logLevel must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// Level returns the configured slog level, or Info when unrecognised.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch s {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Address returns the host:port the preview server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Exists reports whether dir contains a vbridge.json.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

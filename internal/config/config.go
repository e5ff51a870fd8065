package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

const (
	// ConfigFileName is the JSON configuration file name.
	ConfigFileName = "showcase.json"

	// YAMLConfigFileName is the YAML alternative, tried when no JSON file exists.
	YAMLConfigFileName = "showcase.yaml"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = "10s"

	// DefaultTailwindCDN is the script URL used when no stylesheet is configured.
	DefaultTailwindCDN = "https://cdn.tailwindcss.com"

	// DefaultMetricsNamespace prefixes every Prometheus metric.
	DefaultMetricsNamespace = "showcase"

	// DefaultTracerName is the OpenTelemetry tracer name.
	DefaultTracerName = "github.com/vango-dev/showcase"

	// DefaultPublishKey is the object key for the exported page.
	DefaultPublishKey = "index.html"
)

// Config represents a showcase.json (or showcase.yaml) file.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Variant selects the widget feature set: "simple" or "rich".
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`

	Server  ServerConfig  `json:"server,omitempty" yaml:"server,omitempty"`
	Toast   ToastConfig   `json:"toast,omitempty" yaml:"toast,omitempty"`
	Assets  AssetsConfig  `json:"assets,omitempty" yaml:"assets,omitempty"`
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`

	// Catalog is an optional path to a widget catalog file.
	// Relative paths resolve against the config directory.
	Catalog string `json:"catalog,omitempty" yaml:"catalog,omitempty"`

	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// ShutdownTimeout is a duration string such as "10s".
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
}

// ToastConfig contains toast timing.
type ToastConfig struct {
	// Delay is the auto-hide delay as a duration string ("3s", "1500ms").
	Delay string `json:"delay,omitempty" yaml:"delay,omitempty"`
}

// AssetsConfig controls how styles are loaded into the page.
type AssetsConfig struct {
	// Stylesheet is a prebuilt CSS URL. When set, the CDN script is skipped.
	Stylesheet string `json:"stylesheet,omitempty" yaml:"stylesheet,omitempty"`

	// TailwindCDN is the Tailwind play CDN script URL.
	TailwindCDN string `json:"tailwindCDN,omitempty" yaml:"tailwindCDN,omitempty"`

	// Favicon is linked as the page icon when set.
	Favicon string `json:"favicon,omitempty" yaml:"favicon,omitempty"`

	// Description overrides the page's meta description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig controls action spans.
type TracingConfig struct {
	Enabled    bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// PublishConfig names the S3 destination for `showcase publish`.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Key    string `json:"key,omitempty" yaml:"key,omitempty"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{
		Name:    "showcase",
		Variant: string(viewstate.VariantRich),
		Metrics: MetricsConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from dir, preferring showcase.json over showcase.yaml.
func Load(dir string) (*Config, error) {
	jsonPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(jsonPath); err == nil {
		return LoadFile(jsonPath)
	}
	yamlPath := filepath.Join(dir, YAMLConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return LoadFile(yamlPath)
	}
	return nil, errors.New("E100").
		WithDetail("No " + ConfigFileName + " or " + YAMLConfigFileName + " found in " + dir)
}

// LoadFile reads configuration from the specified file path. The format is
// picked by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").WithPath(path)
		}
		return nil, errors.New("E101").WithPath(path).Wrap(err)
	}

	cfg := New()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, errors.New("E103").WithPath(path).WithDetail("extension " + ext)
	}
	if err != nil {
		return nil, errors.New("E101").
			WithPath(path).
			WithDetail(err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration as indented JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E102").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").WithPath(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Variant == "" {
		c.Variant = string(viewstate.VariantRich)
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Toast.Delay == "" {
		c.Toast.Delay = viewstate.DefaultToastDelay.String()
	}
	if c.Assets.Stylesheet == "" && c.Assets.TailwindCDN == "" {
		c.Assets.TailwindCDN = DefaultTailwindCDN
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
	if c.Publish.Key == "" {
		c.Publish.Key = DefaultPublishKey
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := viewstate.ParseVariant(c.Variant); err != nil {
		return errors.New("E102").WithPath(c.configPath).
			WithDetail("variant: " + err.Error()).
			WithSuggestion("Use \"simple\" or \"rich\"")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E102").WithPath(c.configPath).
			WithDetail("Port must be between 0 and 65535")
	}
	if d, err := time.ParseDuration(c.Toast.Delay); err != nil || d <= 0 {
		return errors.New("E102").WithPath(c.configPath).
			WithDetail("toast.delay must be a positive duration, got " + strconv.Quote(c.Toast.Delay))
	}
	if d, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil || d < 0 {
		return errors.New("E102").WithPath(c.configPath).
			WithDetail("server.shutdownTimeout must be a duration, got " + strconv.Quote(c.Server.ShutdownTimeout))
	}
	return nil
}

// ViewVariant returns the parsed variant. Call after Validate.
func (c *Config) ViewVariant() viewstate.Variant {
	v, err := viewstate.ParseVariant(c.Variant)
	if err != nil {
		return viewstate.VariantRich
	}
	return v
}

// ToastDelay returns the parsed toast delay, falling back to the default.
func (c *Config) ToastDelay() time.Duration {
	d, err := time.ParseDuration(c.Toast.Delay)
	if err != nil || d <= 0 {
		return viewstate.DefaultToastDelay
	}
	return d
}

// ShutdownTimeout returns the parsed graceful shutdown bound.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Address returns host:port for the listener.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the page URL.
func (c *Config) URL() string {
	return "http://" + c.Address() + "/"
}

// CatalogPath resolves the catalog file, or "" when none is configured.
func (c *Config) CatalogPath() string {
	if c.Catalog == "" || filepath.IsAbs(c.Catalog) {
		return c.Catalog
	}
	return filepath.Join(c.Dir(), c.Catalog)
}

// Exists reports whether dir holds a config file in either format.
func Exists(dir string) bool {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the one holding a config file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the working directory or one
// of its parents. A missing file yields defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}
	return Load(root)
}

// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CV_PHONE or
// CV_SITE_DOMAIN.
const EnvPrefix = "CV"

// Config represents the CLI configuration. It can be loaded from a JSON or
// YAML file and overridden by CV_* environment variables. All fields are
// optional; missing values use defaults.
type Config struct {
	// Paths
	DataDir   string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`     // Directory holding the content records
	BuildDir  string `json:"build_dir,omitempty" yaml:"build_dir,omitempty"`   // LaTeX output root
	AssetsDir string `json:"assets_dir,omitempty" yaml:"assets_dir,omitempty"` // DOCX and preview image output root
	PostsDir  string `json:"posts_dir,omitempty" yaml:"posts_dir,omitempty"`   // Blog posts for previews

	// Phone is only ever rendered into private variants.
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`

	Site    SiteConfig    `json:"site" yaml:"site"`
	Preview PreviewConfig `json:"preview" yaml:"preview"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// SiteConfig identifies the personal site. Name, Author and Domain appear
// on preview images; URL is the LaTeX footer link.
type SiteConfig struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// PreviewConfig tunes the preview image batch.
type PreviewConfig struct {
	Workers     int    `json:"workers,omitempty" yaml:"workers,omitempty"` // 0 means GOMAXPROCS
	FontRegular string `json:"font_regular,omitempty" yaml:"font_regular,omitempty"`
	FontBold    string `json:"font_bold,omitempty" yaml:"font_bold,omitempty"`
	WriteSVG    bool   `json:"write_svg,omitempty" yaml:"write_svg,omitempty"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:   "_data",
		BuildDir:  "_build",
		AssetsDir: "assets",
		PostsDir:  "_posts",
		Site: SiteConfig{
			Name: "Binary Breakthroughs",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}

// LoadConfig loads configuration from a JSON or YAML file, applying CV_*
// environment overrides. Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if strings.EqualFold(filepath.Ext(path), ".yml") {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := fromViper(v)
	return &cfg, nil
}

// Load returns the effective configuration: the optional file at path,
// CV_* environment overrides, then defaults for anything left empty.
// The result is validated.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	} else {
		cfg = fromViper(newViper())
	}

	merged := cfg.MergeWithDefaults(Default())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) Config {
	return Config{
		DataDir:   v.GetString("data_dir"),
		BuildDir:  v.GetString("build_dir"),
		AssetsDir: v.GetString("assets_dir"),
		PostsDir:  v.GetString("posts_dir"),
		Phone:     v.GetString("phone"),
		Site: SiteConfig{
			Name:   v.GetString("site.name"),
			Author: v.GetString("site.author"),
			URL:    v.GetString("site.url"),
			Domain: v.GetString("site.domain"),
		},
		Preview: PreviewConfig{
			Workers:     v.GetInt("preview.workers"),
			FontRegular: v.GetString("preview.font_regular"),
			FontBold:    v.GetString("preview.font_bold"),
			WriteSVG:    v.GetBool("preview.write_svg"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Preview.Workers < 0 {
		return fmt.Errorf("config error: 'preview.workers' must be non-negative")
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("config error: 'log.format' must be console or json, got %q", c.Log.Format)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: unknown 'log.level' %q", c.Log.Level)
	}

	if c.Site.URL != "" {
		u, err := url.Parse(c.Site.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'site.url' must be an absolute URL: %s", c.Site.URL)
		}
	}

	return nil
}

// SiteDomain returns Site.Domain, or the host of Site.URL when no domain
// is configured.
func (c *Config) SiteDomain() string {
	if c.Site.Domain != "" {
		return c.Site.Domain
	}
	if u, err := url.Parse(c.Site.URL); err == nil {
		return u.Host
	}
	return ""
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply built-in values under file and environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&result.DataDir, defaults.DataDir)
	fill(&result.BuildDir, defaults.BuildDir)
	fill(&result.AssetsDir, defaults.AssetsDir)
	fill(&result.PostsDir, defaults.PostsDir)
	fill(&result.Phone, defaults.Phone)
	fill(&result.Site.Name, defaults.Site.Name)
	fill(&result.Site.Author, defaults.Site.Author)
	fill(&result.Site.URL, defaults.Site.URL)
	fill(&result.Site.Domain, defaults.Site.Domain)
	fill(&result.Preview.FontRegular, defaults.Preview.FontRegular)
	fill(&result.Preview.FontBold, defaults.Preview.FontBold)
	fill(&result.Log.Level, defaults.Log.Level)
	fill(&result.Log.Format, defaults.Log.Format)
	fill(&result.Log.Output, defaults.Log.Output)

	// Int fields: use default if zero
	if result.Preview.Workers == 0 {
		result.Preview.Workers = defaults.Preview.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

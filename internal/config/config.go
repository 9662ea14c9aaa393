// Package config loads the server configuration from a JSON or YAML file.
// Every field is optional; the Get* methods supply defaults for anything
// left unset, so partial files are safe.
package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

const (
	defaultListen          = "0.0.0.0:5000"
	defaultDesignsDir      = "designs"
	defaultDBPath          = "designs.db"
	defaultShutdownTimeout = time.Second
	maxFileSize            = 1 * 1024 * 1024 // 1MB
)

// Config is the root server configuration.
type Config struct {
	Listen          *string `json:"listen,omitempty" yaml:"listen,omitempty"`
	GRPCListen      *string `json:"grpc_listen,omitempty" yaml:"grpc_listen,omitempty"`
	Store           *string `json:"store,omitempty" yaml:"store,omitempty"`
	DesignsDir      *string `json:"designs_dir,omitempty" yaml:"designs_dir,omitempty"`
	DBPath          *string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	Debug           *bool   `json:"debug,omitempty" yaml:"debug,omitempty"`
	ChartAssetsHost *string `json:"chart_assets_host,omitempty" yaml:"chart_assets_host,omitempty"`
	ShutdownTimeout *string `json:"shutdown_timeout,omitempty" yaml:"shutdown_timeout,omitempty"` // duration string like "1s"
}

// Helper functions to create pointers
func ptrBool(v bool) *bool       { return &v }
func ptrString(v string) *string { return &v }

// Load reads a Config from a .json, .yaml or .yml file no larger than 1MB
// and validates it.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, ext)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Parse decodes data as JSON (".json") or YAML (".yaml", ".yml") without
// validating it.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := &Config{}
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// Validate checks the values that are set.
func (c *Config) Validate() error {
	for _, addr := range []struct {
		key string
		val *string
	}{{"listen", c.Listen}, {"grpc_listen", c.GRPCListen}} {
		if addr.val == nil || *addr.val == "" {
			continue
		}
		if _, _, err := net.SplitHostPort(*addr.val); err != nil {
			return fmt.Errorf("invalid %s %q: %w", addr.key, *addr.val, err)
		}
	}

	if c.Store != nil {
		switch *c.Store {
		case StoreFile, StoreSQLite:
		default:
			return fmt.Errorf("store must be %q or %q, got %q", StoreFile, StoreSQLite, *c.Store)
		}
	}

	if c.ShutdownTimeout != nil && *c.ShutdownTimeout != "" {
		d, err := time.ParseDuration(*c.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("invalid shutdown_timeout '%s': %w", *c.ShutdownTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("shutdown_timeout must be positive, got %s", d)
		}
	}

	return nil
}

// GetListen returns the HTTP listen address.
func (c *Config) GetListen() string {
	if c.Listen == nil || *c.Listen == "" {
		return defaultListen
	}
	return *c.Listen
}

// GetGRPCListen returns the gRPC listen address. Empty disables gRPC.
func (c *Config) GetGRPCListen() string {
	if c.GRPCListen == nil {
		return ""
	}
	return *c.GRPCListen
}

// GetStore returns the design store backend.
func (c *Config) GetStore() string {
	if c.Store == nil || *c.Store == "" {
		return StoreFile
	}
	return *c.Store
}

// GetDesignsDir returns the file store directory.
func (c *Config) GetDesignsDir() string {
	if c.DesignsDir == nil || *c.DesignsDir == "" {
		return defaultDesignsDir
	}
	return *c.DesignsDir
}

// GetDBPath returns the SQLite store path.
func (c *Config) GetDBPath() string {
	if c.DBPath == nil || *c.DBPath == "" {
		return defaultDBPath
	}
	return *c.DBPath
}

// GetDebug reports whether the /debug/ admin routes are mounted.
func (c *Config) GetDebug() bool {
	if c.Debug == nil {
		return true
	}
	return *c.Debug
}

// GetChartAssetsHost returns the echarts asset host override, if any.
func (c *Config) GetChartAssetsHost() string {
	if c.ChartAssetsHost == nil {
		return ""
	}
	return *c.ChartAssetsHost
}

// GetShutdownTimeout returns how long servers get to drain on shutdown.
func (c *Config) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == nil || *c.ShutdownTimeout == "" {
		return defaultShutdownTimeout
	}
	d, err := time.ParseDuration(*c.ShutdownTimeout)
	if err != nil || d <= 0 {
		return defaultShutdownTimeout
	}
	return d
}

// Overrides holds command-line values that replace file settings. Nil
// fields leave the file value alone.
type Overrides struct {
	Listen     *string
	GRPCListen *string
	Store      *string
	DesignsDir *string
	DBPath     *string
	Debug      *bool
}

// Apply copies every set override into c and revalidates.
func (c *Config) Apply(o Overrides) error {
	if o.Listen != nil {
		c.Listen = ptrString(*o.Listen)
	}
	if o.GRPCListen != nil {
		c.GRPCListen = ptrString(*o.GRPCListen)
	}
	if o.Store != nil {
		c.Store = ptrString(*o.Store)
	}
	if o.DesignsDir != nil {
		c.DesignsDir = ptrString(*o.DesignsDir)
	}
	if o.DBPath != nil {
		c.DBPath = ptrString(*o.DBPath)
	}
	if o.Debug != nil {
		c.Debug = ptrBool(*o.Debug)
	}
	return c.Validate()
}

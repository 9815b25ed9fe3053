package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	exeDirCache string
)

// getExecutableDir returns the directory where the executable is located
func getExecutableDir() string {
	if exeDirCache != "" {
		return exeDirCache
	}
	execPath, err := os.Executable()
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	exeDirCache = filepath.Dir(execPath)
	return exeDirCache
}

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
	Web     WebConfig     `yaml:"web"`
	MCP     MCPConfig     `yaml:"mcp,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// RenderConfig controls prompt rendering defaults.
type RenderConfig struct {
	// DefaultFormat is used when a request does not name a format.
	// One of "markdown", "toon", "json". Unknown values mean markdown.
	DefaultFormat string `yaml:"default_format"`
}

type WebConfig struct {
	Port                 int `yaml:"port"`
	ReadHeaderTimeoutSec int `yaml:"read_header_timeout_sec,omitempty"`
}

type MCPConfig struct {
	Name string `yaml:"name,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Render: RenderConfig{
			DefaultFormat: "markdown",
		},
		Web: WebConfig{
			Port:                 18080,
			ReadHeaderTimeoutSec: 5,
		},
		MCP: MCPConfig{
			Name: "vidprompt",
		},
	}
}

// ConfigPath returns the config file location. VIDPROMPT_CONFIG overrides the
// default of .vidprompt.yaml next to the executable.
func ConfigPath() string {
	if p := os.Getenv("VIDPROMPT_CONFIG"); p != "" {
		return p
	}
	exeDir := getExecutableDir()
	return filepath.Join(exeDir, ".vidprompt.yaml")
}

func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath reads a config file on top of the defaults. A missing file is
// not an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	return c.SaveToPath(ConfigPath())
}

func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

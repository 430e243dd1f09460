package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Content Content `yaml:"content"`
	Site    Site    `yaml:"site"`
	Server  Server  `yaml:"server"`
	Logging Logging `yaml:"logging"`
}

type Content struct {
	PostsDir      string `yaml:"posts_dir"`
	ResourcesPath string `yaml:"resources_path"`
}

type Site struct {
	BaseURL     string `yaml:"base_url"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
}

type Server struct {
	Port int `yaml:"port"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for digest.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "digest")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/digest/config.yaml > ./config.yaml.
// An empty return with nil error means no config file exists and the
// built-in defaults apply.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", nil
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// LoadOrDefault resolves and loads the config file, falling back to the
// embedded defaults when none exists. A digest checkout should work with
// zero setup.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := ResolveConfigPath(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return parse(DefaultConfigYAML)
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Content: Content{
			PostsDir:      filepath.Join("content", "posts"),
			ResourcesPath: filepath.Join("content", "resources.json"),
		},
		Site: Site{
			BaseURL:     "https://ai-tech-digest.dev",
			Title:       "AI & Tech Weekly Digest",
			Description: "Your weekly deep-dive into AI & technology. Autonomously curated. Thoroughly analyzed. Every Sunday.",
			Language:    "en-us",
		},
		Server:  Server{Port: 8000},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// Package config loads SeqMaster settings from YAML.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the CLI and the server.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Server   ServerConfig `yaml:"server"`
	Output   OutputConfig `yaml:"output"`
}

// ServerConfig configures the REST server.
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
}

// OutputConfig names the directories created next to input files.
type OutputConfig struct {
	GBKDir     string `yaml:"gbk_dir"`
	FASTQDir   string `yaml:"fastq_dir"`
	OneLineDir string `yaml:"oneline_dir"`
	ShiftedDir string `yaml:"shifted_dir"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "fatal": true}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Host:           "localhost",
			Port:           8080,
			RequestTimeout: 60 * time.Second,
			MaxBodyBytes:   32 << 20,
		},
		Output: OutputConfig{
			GBKDir:     "fasta_selected_from_gbk",
			FASTQDir:   "fastq_filtrator_results",
			OneLineDir: "oneline_fasta",
			ShiftedDir: "shifted_fasta",
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults; a
// named file that cannot be read is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !logLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}

	dirs := map[string]string{
		"output.gbk_dir":     c.Output.GBKDir,
		"output.fastq_dir":   c.Output.FASTQDir,
		"output.oneline_dir": c.Output.OneLineDir,
		"output.shifted_dir": c.Output.ShiftedDir,
	}
	for key, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}

// Addr returns host:port for the server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

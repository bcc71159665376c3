package config

import (
	"fmt"

	"github.com/sujinee01/Image-Verification-Automation-System/internal/pipeline"
)

// Config represents the complete configuration for the imgverify application.
// It supports loading from configuration files, environment variables, and
// command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Pipeline configuration
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline" json:"pipeline"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// PipelineConfig contains verification pipeline settings.
type PipelineConfig struct {
	// Language is the Tesseract language code for recognition.
	Language string `mapstructure:"language" yaml:"language" json:"language"`
	// TessdataPrefix overrides the Tesseract trained-data search path.
	TessdataPrefix string `mapstructure:"tessdata_prefix" yaml:"tessdata_prefix" json:"tessdata_prefix"`
	// BlockSize is the adaptive threshold neighborhood size (odd, >1).
	BlockSize int `mapstructure:"block_size" yaml:"block_size" json:"block_size"`
	// ThresholdConstant is subtracted from the local mean when binarizing.
	ThresholdConstant float64 `mapstructure:"threshold_constant" yaml:"threshold_constant" json:"threshold_constant"`
	// MinLines is the minimum number of non-blank lines expected.
	MinLines int `mapstructure:"min_lines" yaml:"min_lines" json:"min_lines"`
	// DictPath is a comma-separated list of extra word-list files.
	DictPath string `mapstructure:"dict_path" yaml:"dict_path" json:"dict_path"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format" json:"format"`
	File     string `mapstructure:"file" yaml:"file" json:"file"`
	ShowText bool   `mapstructure:"show_text" yaml:"show_text" json:"show_text"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	MaxUploadMB     int64  `mapstructure:"max_upload_mb" yaml:"max_upload_mb" json:"max_upload_mb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Verbose:  false,
		Pipeline: PipelineConfig{
			Language:          "eng",
			BlockSize:         11,
			ThresholdConstant: 2,
			MinLines:          3,
		},
		Output: OutputConfig{
			Format:   pipeline.FormatText,
			ShowText: true,
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			MaxUploadMB:     20,
			TimeoutSec:      60,
			ShutdownTimeout: 10,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}
	if c.Pipeline.BlockSize <= 1 || c.Pipeline.BlockSize%2 == 0 {
		return fmt.Errorf("invalid block size: %d (must be odd and greater than 1)", c.Pipeline.BlockSize)
	}
	if c.Pipeline.MinLines < 0 {
		return fmt.Errorf("invalid min lines: %d (must not be negative)", c.Pipeline.MinLines)
	}
	if c.Pipeline.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	if !pipeline.IsValidFormat(c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, yaml)", c.Output.Format)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("invalid max upload size: %d MB", c.Server.MaxUploadMB)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Delimiter for delimited text input. Empty means sniff from the
	// file extension (tab for .tsv, comma otherwise).
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// OutDir is the default output directory for JSON reports. Empty
	// means print the text view to stdout.
	OutDir string `mapstructure:"out_dir" yaml:"out_dir"`
	// SheetIndex is the default 1-based XLSX sheet.
	SheetIndex int `mapstructure:"sheet_index" yaml:"sheet_index"`
	// Extensions lists accepted input file extensions.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile
// is empty, it writes to ~/.salesmax/config.yaml, creating the
// directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".salesmax")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SALESMAX")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("delimiter", "")
	v.SetDefault("out_dir", "")
	v.SetDefault("sheet_index", 1)
	v.SetDefault("extensions", []string{".csv", ".tsv", ".xlsx"})

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".salesmax")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

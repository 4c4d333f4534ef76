package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// defaultConfigFile is looked up in the working directory when no
// --config flag is given.
const defaultConfigFile = ".doccheck.yml"

// Config holds the check command configuration, merged from flags and
// an optional YAML file. Flag values win over file values.
type Config struct {
	Paths             []string `yaml:"paths" validate:"min=1,dive,required"`
	RequireParamTypes bool     `yaml:"require_param_types"`
	CheckReferences   bool     `yaml:"check_references"`
	ExcludeFiles      []string `yaml:"exclude_files"`
	Verbose           bool     `yaml:"verbose"`

	ConfigPath string `yaml:"-"`
}

func defaultConfig() Config {
	return Config{
		Paths:           []string{"."},
		CheckReferences: true,
	}
}

// loadConfigFile merges values from the YAML config file into config.
// Only values still at their defaults are overwritten, so explicit
// flags keep precedence.
func loadConfigFile(config *Config) error {
	path := config.ConfigPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return nil
		}
		path = defaultConfigFile
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	def := defaultConfig()
	if equalPaths(config.Paths, def.Paths) && len(cfg.Paths) > 0 {
		config.Paths = cfg.Paths
	}
	if !config.RequireParamTypes {
		config.RequireParamTypes = cfg.RequireParamTypes
	}
	if config.CheckReferences == def.CheckReferences && hasKey(data, "check_references") {
		config.CheckReferences = cfg.CheckReferences
	}
	if len(config.ExcludeFiles) == 0 {
		config.ExcludeFiles = cfg.ExcludeFiles
	}
	if !config.Verbose {
		config.Verbose = cfg.Verbose
	}

	return nil
}

// validateConfig enforces structural constraints on the merged config.
func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func equalPaths(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// hasKey reports whether the raw YAML document sets the given top-level
// key. Needed to distinguish "check_references: false" from the key
// being absent.
func hasKey(data []byte, key string) bool {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false
	}
	_, ok := doc[key]
	return ok
}

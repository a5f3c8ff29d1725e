package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
)

// ConfigFiles are the config file names looked up in the project root, in order
var ConfigFiles = []string{".ccfrc.json", ".ccfrc.yaml", ".ccfrc.yml"}

// Config represents the ccfscore configuration
type Config struct {
	Root          string   `mapstructure:"root"`
	Exclude       []string `mapstructure:"exclude"`
	Format        string   `mapstructure:"format"`
	Output        string   `mapstructure:"output"`
	Quiet         bool     `mapstructure:"quiet"`
	Verbose       bool     `mapstructure:"verbose"`
	Strict        bool     `mapstructure:"strict"`
	FailOn        string   `mapstructure:"failOn"`
	LogLevel      string   `mapstructure:"logLevel"`
	LogFormat     string   `mapstructure:"logFormat"`
	ShowBreakdown bool     `mapstructure:"showBreakdown"`

	// ConfigFile is the file the settings were read from, if any
	ConfigFile string `mapstructure:"-"`
}

var (
	validFormats    = []string{"console", "json", "markdown"}
	validFailOn     = []string{"none", "moderate", "high", "extreme"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// LoadConfig loads configuration from defaults, the first config file found in
// rootPath (or the working directory), CCF_* environment variables and bound flags.
// A non-empty rootPath overrides any configured root.
func LoadConfig(rootPath string) (*Config, error) {
	return load(rootPath, rootPath)
}

// LoadProjectConfig loads configuration from a detected project root. A relative
// root setting is resolved against projectRoot.
func LoadProjectConfig(projectRoot string) (*Config, error) {
	config, err := load(projectRoot, "")
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(config.Root) {
		config.Root = filepath.Join(projectRoot, config.Root)
	}
	return config, nil
}

func load(configDir, rootOverride string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("failOn", "none")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("strict", false)
	viper.SetDefault("logLevel", "warn")
	viper.SetDefault("logFormat", "console")
	viper.SetDefault("showBreakdown", false)

	if configDir == "" {
		configDir = "."
	}

	var configFile string
	for _, name := range ConfigFiles {
		path := filepath.Join(configDir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		configFile = path
		break
	}

	// Environment variables
	viper.SetEnvPrefix("CCF")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.ConfigFile = configFile

	if rootOverride != "" {
		config.Root = rootOverride
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if !slices.Contains(validFormats, config.Format) {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if !slices.Contains(validFailOn, config.FailOn) {
		return fmt.Errorf("invalid fail-on level: %s. Must be 'none', 'moderate', 'high', or 'extreme'", config.FailOn)
	}

	if !slices.Contains(validLogLevels, config.LogLevel) {
		return fmt.Errorf("invalid log level: %s. Must be 'debug', 'info', 'warn', or 'error'", config.LogLevel)
	}

	if !slices.Contains(validLogFormats, config.LogFormat) {
		return fmt.Errorf("invalid log format: %s. Must be 'console' or 'json'", config.LogFormat)
	}

	return nil
}

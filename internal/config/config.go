package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file.
const (
	EnvCorpusDirectory = "TEXTCORPUS_CORPUS_DIRECTORY"
	EnvVerboseMode     = "TEXTCORPUS_VERBOSE_MODE"
)

const defaultCorpusDirectory = "corpus"

// ErrMissingCorpusDirectory is returned by Validate when no directory is set.
var ErrMissingCorpusDirectory = errors.New("corpus_directory is required")

// AppConfig is the root application configuration structure.
type AppConfig struct {
	// CorpusDirectory is the directory scanned for .txt files.
	CorpusDirectory string `yaml:"corpus_directory"`
	// VerboseMode switches every report to the multi-line bannered form.
	VerboseMode bool `yaml:"verbose_mode"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// A file that omits corpus_directory is loaded as is and fails Validate.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textcorpus/config.yaml.
// If neither exists, it writes defaults to ~/.config/textcorpus/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadDotEnv loads variables from the given .env files (./.env when none
// are given) without overriding the existing environment. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with values from the process environment.
func (cfg *AppConfig) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvCorpusDirectory); ok && strings.TrimSpace(v) != "" {
		cfg.CorpusDirectory = v
	}
	if v, ok := os.LookupEnv(EnvVerboseMode); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVerboseMode, err)
		}
		cfg.VerboseMode = b
	}
	return nil
}

// Validate checks the required settings.
func (cfg *AppConfig) Validate() error {
	if strings.TrimSpace(cfg.CorpusDirectory) == "" {
		return ErrMissingCorpusDirectory
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textcorpus", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{CorpusDirectory: defaultCorpusDirectory}
}


package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Ilia01/ticketdesk/internal/models"
)

var ErrConfigNotFound = errors.New("configuration not found")

const (
	envConfigPath = "TICKETDESK_CONFIG"
	envExportDir  = "TICKETDESK_EXPORT_DIR"
	envLogLevel   = "TICKETDESK_LOG_LEVEL"
	envLogFile    = "TICKETDESK_LOG_FILE"
)

type Settings struct {
	Export     ExportConfig      `yaml:"export"`
	Log        LogConfig         `yaml:"log"`
	Vocabulary models.Vocabulary `yaml:"vocabulary"`
}

type ExportConfig struct {
	// Dir is the directory offered when the operator exports tickets.
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File receives log output instead of stderr when set.
	File string `yaml:"file,omitempty"`
}

func Default() *Settings {
	return &Settings{
		Export:     ExportConfig{Dir: "."},
		Log:        LogConfig{Level: "warn"},
		Vocabulary: models.DefaultVocabulary(),
	}
}

// Load reads the config file as stored, without environment overrides.
func Load() (*Settings, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	settings.Vocabulary = settings.Vocabulary.WithDefaults()

	return settings, nil
}

// LoadOrDefault returns the settings a session runs with: the config file, or
// Default when there is none, with .env and environment overrides applied.
func LoadOrDefault() (*Settings, error) {
	_ = godotenv.Load()

	settings, err := Load()
	if errors.Is(err, ErrConfigNotFound) {
		settings = Default()
	} else if err != nil {
		return nil, err
	}
	settings.applyEnv()
	return settings, nil
}

func (s *Settings) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if err := file.Chmod(0o600); err != nil {
		return fmt.Errorf("chmod config: %w", err)
	}

	return nil
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".ticketdesk"), nil
}

func ConfigPath() (string, error) {
	if override := os.Getenv(envConfigPath); override != "" {
		return override, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func configPath() (string, error) {
	return ConfigPath()
}

func (s *Settings) applyEnv() {
	if v := os.Getenv(envExportDir); v != "" {
		s.Export.Dir = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		s.Log.Level = v
	}
	if v := os.Getenv(envLogFile); v != "" {
		s.Log.File = v
	}
}

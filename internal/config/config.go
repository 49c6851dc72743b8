package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperrors "github.com/NotMugil/interview-tui/internal/errors"
	"github.com/NotMugil/interview-tui/internal/interview"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "INTERVIEW_TUI_CONFIG"

const appDir = "interview-tui"

// Config is the on-disk settings file.
type Config struct {
	Role       string `toml:"role"`
	Company    string `toml:"company"`
	Round      string `toml:"round"`
	Difficulty string `toml:"difficulty"`
	Questions  int    `toml:"questions"`
	ExportDir  string `toml:"export_dir"`
}

func Default() Config {
	return Config{
		Role:       "Software Engineer",
		Round:      string(interview.RoundCoding),
		Difficulty: string(interview.DifficultyProfessional),
		Questions:  interview.DefaultQuestions,
		ExportDir:  ".",
	}
}

// DefaultPath returns $INTERVIEW_TUI_CONFIG, or config.toml under the
// user's config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appDir, "config.toml"), nil
}

// Load reads path over the defaults. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("%w: %s: %v", apperrors.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(cfg)
}

// Validate checks the values that the session depends on.
func (c Config) Validate() error {
	if _, err := interview.ParseRound(c.Round); err != nil {
		return err
	}
	if _, err := interview.ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	if c.Questions < 1 || c.Questions > interview.MaxQuestions {
		return fmt.Errorf("%w: %d (must be 1-%d)", apperrors.ErrInvalidQuestionCount, c.Questions, interview.MaxQuestions)
	}
	return nil
}

// Settings converts a validated config into session settings.
func (c Config) Settings() (interview.Settings, error) {
	round, err := interview.ParseRound(c.Round)
	if err != nil {
		return interview.Settings{}, err
	}
	diff, err := interview.ParseDifficulty(c.Difficulty)
	if err != nil {
		return interview.Settings{}, err
	}
	return interview.Settings{
		Role:       c.Role,
		Company:    c.Company,
		Round:      round,
		Difficulty: diff,
	}, nil
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotMugil/interview-tui/internal/config"
	apperrors "github.com/NotMugil/interview-tui/internal/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configPath = ""
		forceInit = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, err = execute(t, "config", "init", "--config", path)
	assert.Error(t, err)

	_, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)

	out, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "round:      Coding")
	assert.Contains(t, out, "difficulty: Professional")
}

func TestConfigShowReportsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`round = "Lightning"`), 0o600))

	_, err := execute(t, "config", "show", "--config", path)
	assert.ErrorIs(t, err, apperrors.ErrUnknownRound)
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, config.Save(path, config.Default()))
	configPath = path
	t.Cleanup(func() { configPath = "" })

	cmd := rootCmd
	require.NoError(t, cmd.Flags().Set("difficulty", "beginner"))
	require.NoError(t, cmd.Flags().Set("questions", "3"))
	t.Cleanup(func() {
		cmd.Flags().Lookup("difficulty").Changed = false
		cmd.Flags().Lookup("questions").Changed = false
		flagDifficulty = ""
		flagQuestions = 0
	})

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "beginner", cfg.Difficulty)
	assert.Equal(t, 3, cfg.Questions)
	assert.Equal(t, "Coding", cfg.Round)

	require.NoError(t, cmd.Flags().Set("questions", "99"))
	_, err = loadConfig(cmd)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuestionCount)
}

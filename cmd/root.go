package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/NotMugil/interview-tui/internal/app"
	"github.com/NotMugil/interview-tui/internal/config"
	"github.com/NotMugil/interview-tui/internal/interview"
	"github.com/NotMugil/interview-tui/internal/logging"
)

var (
	configPath string
	logFile    string
	verbose    bool
	debug      bool

	flagRole       string
	flagCompany    string
	flagRound      string
	flagDifficulty string
	flagQuestions  int
	flagExportDir  string
)

var rootCmd = &cobra.Command{
	Use:   "interview-tui",
	Short: "Practice interview questions in your terminal.",
	Long: `interview-tui runs a timed practice interview in the terminal.

Enter your API key in the masked field at the top, then start a session.
The key is kept in memory for as long as the program runs and is never
written to disk or sent anywhere.

Session settings come from the config file and can be overridden with flags.`,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/interview-tui/config.toml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log info and warnings")
	pf.BoolVar(&debug, "debug", false, "log debug details")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	f := rootCmd.Flags()
	f.StringVar(&flagRole, "role", "", "role you are interviewing for")
	f.StringVar(&flagCompany, "company", "", "company you are interviewing with")
	f.StringVar(&flagRound, "round", "", "interview round: Warm Up, Coding, Role Related, Behavioral")
	f.StringVar(&flagDifficulty, "difficulty", "", "difficulty: Beginner, Professional")
	f.IntVar(&flagQuestions, "questions", 0, fmt.Sprintf("questions per session (1-%d)", interview.MaxQuestions))
	f.StringVar(&flagExportDir, "export-dir", "", "directory for exported transcripts")

	rootCmd.AddCommand(configCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig reads the config file and applies any flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("role") {
		cfg.Role = flagRole
	}
	if flags.Changed("company") {
		cfg.Company = flagCompany
	}
	if flags.Changed("round") {
		cfg.Round = flagRound
	}
	if flags.Changed("difficulty") {
		cfg.Difficulty = flagDifficulty
	}
	if flags.Changed("questions") {
		cfg.Questions = flagQuestions
	}
	if flags.Changed("export-dir") {
		cfg.ExportDir = flagExportDir
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger() (logging.Logger, io.Closer, error) {
	log := logging.Logger{Verbose: verbose, Debug: debug}
	if logFile == "" {
		return log, io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(logFile, "interview-tui")
	if err != nil {
		return log, nil, fmt.Errorf("open log file: %w", err)
	}
	log.Out = f
	return log, f, nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	bank, err := interview.DefaultBank()
	if err != nil {
		return err
	}

	log, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	zone.NewGlobal()
	m := app.New(app.Options{
		Bank:      bank,
		Settings:  settings,
		Questions: cfg.Questions,
		ExportDir: cfg.ExportDir,
		Logger:    log,
		Now:       time.Now,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Errorf("program exited: %v", err)
		return err
	}
	return nil
}

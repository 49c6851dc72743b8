package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/NotMugil/interview-tui/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file.",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := config.Save(path, config.Default()); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings a session would use.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:     %s\n", path)
		fmt.Fprintf(out, "role:       %s\n", cfg.Role)
		fmt.Fprintf(out, "company:    %s\n", cfg.Company)
		fmt.Fprintf(out, "round:      %s\n", cfg.Round)
		fmt.Fprintf(out, "difficulty: %s\n", cfg.Difficulty)
		fmt.Fprintf(out, "questions:  %d\n", cfg.Questions)
		fmt.Fprintf(out, "export_dir: %s\n", cfg.ExportDir)
		return cfg.Validate()
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
}

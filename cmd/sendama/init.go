package main

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/sendama/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default editor.toml into the project directory",
	Long:  `Creates editor.toml with the built-in editor settings, an existing file is left untouched.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringP("directory", "d", ".", "project directory")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("directory")
	path := filepath.Join(dir, config.SettingsFile)

	if err := config.WriteDefault(path); err != nil {
		if errors.Is(err, config.ErrExists) {
			return errors.Errorf("config file already exists: %s", path)
		}
		return errors.Wrap(err, "creating config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

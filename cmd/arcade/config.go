package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

var flagConfigDir string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage game config files",
}

var configInitCmd = &cobra.Command{
	Use:   "init <game>",
	Short: "Write a game's default config for editing",
	Long: `Write the built-in YAML tunables of a game to a file. By default the
file goes to ~/.arcade/configs/<game>.yaml, where every game looks for it
on start.

Examples:
  arcade config init flappy
  arcade config init racer --dir ./configs`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show <game>",
	Short: "Print a game's default config",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data := config.DefaultYAML(args[0])
		if data == nil {
			return fmt.Errorf("no config for %q", args[0])
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&flagConfigDir, "dir", "", "Directory to write to (default ~/.arcade/configs)")
	configCmd.AddCommand(configInitCmd, configShowCmd)
}

func runConfigInit(_ *cobra.Command, args []string) error {
	if !registry.Exists(args[0]) {
		return fmt.Errorf("unknown game %q", args[0])
	}
	dir := flagConfigDir
	if dir == "" {
		dir = expandHome("~/.arcade/configs")
	}
	path, err := config.WriteDefault(args[0], dir)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

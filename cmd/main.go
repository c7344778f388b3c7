// Package main provides the CLI entrypoint for the Pomodoro timer.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
)

const appName = "Pomodoro"

var (
	configPath string
	debugMode  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pomodoro",
		Short:        "Pomodoro work/break timer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			return runDesktop(settings)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "use 5 second phases for testing")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			return runTerminal(settings)
		},
	}
	rootCmd.AddCommand(tuiCmd)

	return rootCmd
}

// loadSettings reads the settings file. A malformed file is logged and the
// defaults are used instead. The returned settings are what gets saved back,
// so the --debug flag is applied by newSource, not here.
func loadSettings() (preferences.Settings, error) {
	var (
		settings preferences.Settings
		err      error
	)
	if configPath != "" {
		settings, err = storage.LoadSettingsFile(configPath)
	} else {
		settings, err = storage.LoadSettings(appName)
	}
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	if err := settings.TimerConfig().Validate(); err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// newSource wraps the loaded settings for the timer and applies --debug.
func newSource(settings preferences.Settings) *preferences.Source {
	source := preferences.NewSource(settings)
	source.ForceDebug(debugMode)
	return source
}

func saveSettings(settings preferences.Settings) error {
	if configPath != "" {
		return storage.SaveSettingsFile(configPath, settings)
	}
	return storage.SaveSettings(appName, settings)
}

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/elevatorfit/pkg/settings"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the saved settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore().Load()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# %s\n", configPath)
		return toml.NewEncoder(w).Encode(s)
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore all values to the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newStore().Save(settings.Defaults()); err != nil {
			return err
		}
		logger.Info("all values reset to defaults", "path", configPath)
		return nil
	},
}

var settingsCenterCmd = &cobra.Command{
	Use:   "center",
	Short: "Center the object and clear its rotation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		s, err := store.Load()
		if err != nil {
			return err
		}
		if err := store.Save(s.Center()); err != nil {
			return err
		}
		logger.Info("object centered and rotation reset", "path", configPath)
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := newStore().Clear(); err != nil {
			return err
		}
		logger.Info("saved settings cleared", "path", configPath)
		return nil
	},
}

var setOverrides overrides

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change saved values",
	Example: `  elevatorfit settings set --door 90,200
  elevatorfit settings set --object 80,180,120 --rotation 0,90,0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		s, err := store.Load()
		if err != nil {
			return err
		}

		s, err = setOverrides.apply(s)
		if err != nil {
			return err
		}
		for _, w := range s.Validate() {
			logger.Warn("settings warning", "field", w.Field, "message", w.Message)
		}

		return store.Save(s.Clamp())
	},
}

func init() {
	setOverrides.register(settingsSetCmd.Flags(), true)

	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsResetCmd, settingsCenterCmd, settingsClearCmd)
	rootCmd.AddCommand(settingsCmd)
}

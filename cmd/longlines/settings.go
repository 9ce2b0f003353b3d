package main

import (
	"github.com/rwx-cloud/longlines/internal/cli"

	"github.com/spf13/cobra"
)

var (
	settingsCmd = &cobra.Command{
		GroupID: "commands",
		Short:   "Manage the stored defaults for wrap",
		Use:     "config",
	}

	settingsGetCmd = &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service.GetSetting(args[0])
		},
		Short: "Print a stored setting",
		Use:   "get <key>",
	}

	settingsSetCmd = &cobra.Command{
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service.SetSetting(cli.SetSettingConfig{Key: args[0], Value: args[1]})
		},
		Short: "Store a setting (max-length, strategy, strip-ansi, output)",
		Use:   "set <key> <value>",
	}

	settingsListCmd = &cobra.Command{
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return service.ListSettings()
		},
		Short: "Print every stored setting",
		Use:   "list",
	}
)

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsListCmd)
}

package main

import (
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	GroupID: "commands",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.Demo()
	},
	Short: "Print a sample sentence wrapped at 13 characters",
	Use:   "demo",
}

package main

import (
	"github.com/rwx-cloud/longlines/internal/cli"
	"github.com/rwx-cloud/longlines/internal/errors"

	"github.com/spf13/cobra"
)

var (
	WrapText        string
	WrapMaxLength   int
	WrapStrategy    string
	WrapStripANSI   bool
	WrapFitTerminal bool
	WrapOutput      string

	wrapCmd = &cobra.Command{
		GroupID: "commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("max-length") {
				WrapMaxLength = settings.MaxLength
			}
			if !flags.Changed("strategy") {
				WrapStrategy = settings.Strategy
			}
			if !flags.Changed("strip-ansi") {
				WrapStripANSI = settings.StripANSI
			}
			if !flags.Changed("output") {
				WrapOutput = settings.Output
			}

			if WrapFitTerminal && flags.Changed("max-length") {
				return errors.Wrap(errors.ErrConflictingArgs, "--fit-terminal cannot be combined with --max-length")
			}

			wrapConfig, err := cli.NewWrapConfig(args, WrapText, WrapMaxLength, WrapStrategy, WrapStripANSI, WrapOutput)
			if err != nil {
				return err
			}
			wrapConfig.FitTerminal = WrapFitTerminal

			_, err = service.Wrap(cmd.Context(), wrapConfig)
			return err
		},
		Short: "Wrap text from files, standard input or --text",
		Long: "Wrap text so that no line exceeds the maximum length, breaking at spaces.\n" +
			"Inputs may be file paths or glob patterns (including **). With no inputs, or with -, standard input is read.",
		Use: "wrap [flags] [files...]",
	}
)

func init() {
	wrapCmd.Flags().StringVarP(&WrapText, "text", "t", "", "wrap this text instead of reading files")
	wrapCmd.Flags().IntVarP(&WrapMaxLength, "max-length", "m", 60, "the maximum line length; values below 1 disable wrapping")
	wrapCmd.Flags().StringVarP(&WrapStrategy, "strategy", "s", "frame", "line breaking strategy: frame, reflow")
	wrapCmd.Flags().BoolVar(&WrapStripANSI, "strip-ansi", false, "remove ANSI escape sequences before wrapping")
	wrapCmd.Flags().BoolVar(&WrapFitTerminal, "fit-terminal", false, "use the width of the terminal as the maximum line length")
	wrapCmd.Flags().StringVarP(&WrapOutput, "output", "o", "text", "output format: text, json, yaml")
}

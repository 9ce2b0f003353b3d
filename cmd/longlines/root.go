package main

import (
	"os"
	"strconv"

	versionconfig "github.com/rwx-cloud/longlines/cmd/longlines/config"
	"github.com/rwx-cloud/longlines/internal/cli"
	"github.com/rwx-cloud/longlines/internal/config"
	"github.com/rwx-cloud/longlines/internal/errors"
	"github.com/rwx-cloud/longlines/internal/logging"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

const (
	maxLengthEnv = "LONGLINES_MAX_LENGTH"
	configDirEnv = "LONGLINES_CONFIG_DIR"
)

var (
	Verbose bool

	service cli.Service
	logger  *zap.SugaredLogger

	// rootCmd represents the main `longlines` command
	rootCmd = &cobra.Command{
		Use:           "longlines",
		Short:         "Break long lines of text at spaces",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       versionconfig.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.NewLogger(os.Stderr, Verbose)

			settingsDirectories := config.DefaultDirectories()
			if dir := os.Getenv(configDirEnv); dir != "" {
				settingsDirectories = []string{dir}
			}

			settingsBackend, err := config.NewFileBackend(settingsDirectories)
			if err != nil {
				return errors.Wrap(err, "unable to initialize settings backend")
			}

			service, err = cli.NewService(cli.Config{
				Stdin:           os.Stdin,
				Stdout:          os.Stdout,
				StdoutIsTTY:     term.IsTerminal(int(os.Stdout.Fd())),
				StdoutWidth:     stdoutWidth,
				Stderr:          os.Stderr,
				Logger:          logger,
				SettingsBackend: settingsBackend,
			})
			if err != nil {
				return errors.Wrap(err, "unable to initialize CLI")
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
)

func stdoutWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	return width, err
}

// loadSettings returns the stored settings with environment overrides applied.
func loadSettings() (config.Settings, error) {
	settings, err := service.LoadSettings()
	if err != nil {
		return settings, err
	}

	if raw := os.Getenv(maxLengthEnv); raw != "" {
		maxLength, err := strconv.Atoi(raw)
		if err != nil {
			return settings, errors.Wrapf(errors.ErrInvalidValue, "%s=%q is not an integer", maxLengthEnv, raw)
		}
		settings.MaxLength = maxLength
	}

	return settings, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&Verbose, "verbose", false, "enable debug output")
	_ = rootCmd.PersistentFlags().MarkHidden("verbose")

	rootCmd.AddGroup(&cobra.Group{ID: "commands", Title: "Commands:"})

	rootCmd.AddCommand(wrapCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(mcpCmd)
}

package cli_test

import (
	"strings"
	"testing"

	"github.com/rwx-cloud/longlines/internal/cli"
	"github.com/rwx-cloud/longlines/internal/config"
	"github.com/rwx-cloud/longlines/internal/errors"
	"github.com/rwx-cloud/longlines/internal/logging"
	"github.com/rwx-cloud/longlines/internal/text"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	valid := cli.Config{
		Stdin:           strings.NewReader(""),
		Stdout:          &strings.Builder{},
		Stderr:          &strings.Builder{},
		Logger:          logging.NewNopLogger(),
		SettingsBackend: config.NewMemoryBackend(),
	}

	t.Run("accepts a complete config", func(t *testing.T) {
		_, err := cli.NewService(valid)
		require.NoError(t, err)
	})

	t.Run("rejects missing dependencies", func(t *testing.T) {
		for missing, cfg := range map[string]func(cli.Config) cli.Config{
			"missing Stdin":            func(c cli.Config) cli.Config { c.Stdin = nil; return c },
			"missing Stdout":           func(c cli.Config) cli.Config { c.Stdout = nil; return c },
			"missing Stderr":           func(c cli.Config) cli.Config { c.Stderr = nil; return c },
			"missing logger":           func(c cli.Config) cli.Config { c.Logger = nil; return c },
			"missing settings backend": func(c cli.Config) cli.Config { c.SettingsBackend = nil; return c },
		} {
			_, err := cli.NewService(cfg(valid))
			require.Error(t, err)
			require.Contains(t, err.Error(), missing)
		}
	})
}

func TestNewWrapConfig(t *testing.T) {
	t.Run("parses the strategy and output format", func(t *testing.T) {
		cfg, err := cli.NewWrapConfig([]string{"a.txt"}, "", 13, "reflow", true, "yaml")
		require.NoError(t, err)
		require.Equal(t, cli.WrapConfig{
			Inputs:       []string{"a.txt"},
			MaxLength:    13,
			Strategy:     text.StrategyReflow,
			StripANSI:    true,
			OutputFormat: cli.WrapOutputYAML,
		}, cfg)
	})

	t.Run("defaults to the frame strategy and text output", func(t *testing.T) {
		cfg, err := cli.NewWrapConfig(nil, "hello", 60, "", false, "")
		require.NoError(t, err)
		require.Equal(t, text.StrategyFrame, cfg.Strategy)
		require.Equal(t, cli.WrapOutputText, cfg.OutputFormat)
	})

	t.Run("rejects unknown strategies", func(t *testing.T) {
		_, err := cli.NewWrapConfig(nil, "", 60, "greedy", false, "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), `unknown strategy "greedy"`)
	})

	t.Run("rejects unknown output formats", func(t *testing.T) {
		_, err := cli.NewWrapConfig(nil, "", 60, "frame", false, "xml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown output format")
	})
}

func TestWrapConfig_Validate(t *testing.T) {
	t.Run("rejects text combined with inputs", func(t *testing.T) {
		err := cli.WrapConfig{Text: "hello", Inputs: []string{"a.txt"}}.Validate()
		require.ErrorIs(t, err, errors.ErrConflictingArgs)
	})
}

package config_test

import (
	"testing"

	"github.com/rwx-cloud/longlines/internal/config"
	"github.com/rwx-cloud/longlines/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("returns defaults when nothing has been saved", func(t *testing.T) {
		settings, err := config.LoadSettings(config.NewMemoryBackend())
		require.NoError(t, err)
		require.Equal(t, config.Settings{MaxLength: 60, Strategy: "frame", Output: "text"}, settings)
	})

	t.Run("keeps defaults for missing fields", func(t *testing.T) {
		backend := config.NewMemoryBackend()
		require.NoError(t, backend.Set(config.SettingsFilename, "max-length: 13\nstrip-ansi: true\n"))

		settings, err := config.LoadSettings(backend)
		require.NoError(t, err)
		require.Equal(t, config.Settings{MaxLength: 13, Strategy: "frame", StripANSI: true, Output: "text"}, settings)
	})

	t.Run("reports unparseable files", func(t *testing.T) {
		backend := config.NewMemoryBackend()
		require.NoError(t, backend.Set(config.SettingsFilename, "max-length: [not, a, number"))

		settings, err := config.LoadSettings(backend)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to parse config.yml")
		require.Equal(t, config.DefaultSettings(), settings)
	})
}

func TestSaveSettings(t *testing.T) {
	t.Run("round trips through the backend", func(t *testing.T) {
		backend := config.NewMemoryBackend()
		saved := config.Settings{MaxLength: 72, Strategy: "reflow", StripANSI: true, Output: "yaml"}

		require.NoError(t, config.SaveSettings(backend, saved))

		raw, err := backend.Get(config.SettingsFilename)
		require.NoError(t, err)
		require.Contains(t, raw, "max-length: 72")

		loaded, err := config.LoadSettings(backend)
		require.NoError(t, err)
		require.Equal(t, saved, loaded)
	})
}

func TestSettings_GetAndSet(t *testing.T) {
	t.Run("lists the known keys", func(t *testing.T) {
		require.Equal(t, []string{"max-length", "output", "strategy", "strip-ansi"}, config.SettingKeys())
	})

	t.Run("sets and gets each key", func(t *testing.T) {
		settings := config.DefaultSettings()

		require.NoError(t, settings.Set("max-length", "13"))
		require.NoError(t, settings.Set("strategy", "reflow"))
		require.NoError(t, settings.Set("strip-ansi", "true"))
		require.NoError(t, settings.Set("output", "json"))

		for key, expected := range map[string]string{
			"max-length": "13",
			"strategy":   "reflow",
			"strip-ansi": "true",
			"output":     "json",
		} {
			value, err := settings.Get(key)
			require.NoError(t, err)
			require.Equal(t, expected, value)
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		settings := config.DefaultSettings()

		err := settings.Set("width", "10")
		require.ErrorIs(t, err, errors.ErrUnknownKey)

		_, err = settings.Get("width")
		require.ErrorIs(t, err, errors.ErrUnknownKey)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		settings := config.DefaultSettings()

		require.ErrorIs(t, settings.Set("max-length", "wide"), errors.ErrInvalidValue)
		require.ErrorIs(t, settings.Set("strategy", "greedy"), errors.ErrInvalidValue)
		require.ErrorIs(t, settings.Set("strip-ansi", "maybe"), errors.ErrInvalidValue)
		require.ErrorIs(t, settings.Set("output", "xml"), errors.ErrInvalidValue)
		require.Equal(t, config.DefaultSettings(), settings)
	})
}

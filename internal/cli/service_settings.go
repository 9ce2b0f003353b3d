package cli

import (
	"fmt"

	"github.com/rwx-cloud/longlines/internal/config"
	"github.com/rwx-cloud/longlines/internal/errors"
)

type SetSettingConfig struct {
	Key   string
	Value string
}

func (c SetSettingConfig) Validate() error {
	if c.Key == "" {
		return errors.New("a setting name must be provided")
	}

	return nil
}

// GetSetting prints the stored value of a single setting.
func (s Service) GetSetting(key string) error {
	settings, err := s.LoadSettings()
	if err != nil {
		return err
	}

	value, err := settings.Get(key)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(s.Stdout, value)
	return err
}

// ListSettings prints every setting as key=value.
func (s Service) ListSettings() error {
	settings, err := s.LoadSettings()
	if err != nil {
		return err
	}

	for _, key := range config.SettingKeys() {
		value, err := settings.Get(key)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(s.Stdout, "%s=%s\n", key, value); err != nil {
			return err
		}
	}

	return nil
}

func (s Service) SetSetting(cfg SetSettingConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	settings, err := s.LoadSettings()
	if err != nil {
		return err
	}

	if err := settings.Set(cfg.Key, cfg.Value); err != nil {
		return errors.Wrapf(err, "unable to set %q", cfg.Key)
	}

	if err := config.SaveSettings(s.SettingsBackend, settings); err != nil {
		return err
	}

	s.Logger.Debugw("saved setting", "key", cfg.Key, "value", cfg.Value)
	return nil
}

package cli

import (
	"github.com/rwx-cloud/longlines/internal/config"
	"github.com/rwx-cloud/longlines/internal/errors"
)

var HandledError = errors.New("handled error")

// Service holds the main business logic of the CLI.
type Service struct {
	Config
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	return Service{cfg}, nil
}

// LoadSettings returns the stored defaults for the wrap command.
func (s Service) LoadSettings() (config.Settings, error) {
	settings, err := config.LoadSettings(s.SettingsBackend)
	if err != nil {
		return settings, err
	}

	s.Logger.Debugw("loaded settings",
		"max-length", settings.MaxLength,
		"strategy", settings.Strategy,
		"strip-ansi", settings.StripANSI,
		"output", settings.Output,
	)

	return settings, nil
}

func removeDuplicates[T any, K comparable](list []T, identity func(t T) K) []T {
	seen := make(map[K]bool)
	var ts []T

	for _, t := range list {
		id := identity(t)
		if _, found := seen[id]; !found {
			seen[id] = true
			ts = append(ts, t)
		}
	}
	return ts
}

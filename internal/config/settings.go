package config

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rwx-cloud/longlines/internal/errors"
	"github.com/rwx-cloud/longlines/internal/text"
)

const SettingsFilename = "config.yml"

// Settings are the persisted defaults for the wrap command. Command-line flags take
// precedence over them.
type Settings struct {
	MaxLength int    `yaml:"max-length"`
	Strategy  string `yaml:"strategy"`
	StripANSI bool   `yaml:"strip-ansi"`
	Output    string `yaml:"output"`
}

func DefaultSettings() Settings {
	return Settings{
		MaxLength: text.DefaultMaxLength,
		Strategy:  string(text.StrategyFrame),
		Output:    "text",
	}
}

var settingKeys = map[string]struct {
	get func(Settings) string
	set func(*Settings, string) error
}{
	"max-length": {
		get: func(s Settings) string { return strconv.Itoa(s.MaxLength) },
		set: func(s *Settings, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(errors.ErrInvalidValue, "%q is not an integer", v)
			}
			s.MaxLength = n
			return nil
		},
	},
	"strategy": {
		get: func(s Settings) string { return s.Strategy },
		set: func(s *Settings, v string) error {
			for _, st := range text.Strategies {
				if v == string(st) {
					s.Strategy = v
					return nil
				}
			}
			return errors.Wrapf(errors.ErrInvalidValue, "%q is not one of %v", v, text.Strategies)
		},
	},
	"strip-ansi": {
		get: func(s Settings) string { return strconv.FormatBool(s.StripANSI) },
		set: func(s *Settings, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrapf(errors.ErrInvalidValue, "%q is not a boolean", v)
			}
			s.StripANSI = b
			return nil
		},
	},
	"output": {
		get: func(s Settings) string { return s.Output },
		set: func(s *Settings, v string) error {
			switch v {
			case "text", "json", "yaml":
				s.Output = v
				return nil
			}
			return errors.Wrapf(errors.ErrInvalidValue, "%q is not one of text, json, yaml", v)
		},
	},
}

// SettingKeys returns the names accepted by Get and Set, sorted.
func SettingKeys() []string {
	keys := make([]string, 0, len(settingKeys))
	for key := range settingKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (s Settings) Get(key string) (string, error) {
	k, ok := settingKeys[key]
	if !ok {
		return "", errors.Wrapf(errors.ErrUnknownKey, "expected one of %s, got %q", strings.Join(SettingKeys(), ", "), key)
	}
	return k.get(s), nil
}

func (s *Settings) Set(key, value string) error {
	k, ok := settingKeys[key]
	if !ok {
		return errors.Wrapf(errors.ErrUnknownKey, "expected one of %s, got %q", strings.Join(SettingKeys(), ", "), key)
	}
	return k.set(s, value)
}

// LoadSettings reads the settings file from the backend. Missing fields keep their
// default values.
func LoadSettings(backend Backend) (Settings, error) {
	settings := DefaultSettings()

	raw, err := backend.Get(SettingsFilename)
	if err != nil {
		return settings, errors.Wrap(err, "unable to load settings")
	}

	if raw == "" {
		return settings, nil
	}

	if err := yaml.Unmarshal([]byte(raw), &settings); err != nil {
		return DefaultSettings(), errors.Wrapf(err, "unable to parse %s", SettingsFilename)
	}

	return settings, nil
}

func SaveSettings(backend Backend, settings Settings) error {
	raw, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "unable to encode settings")
	}

	if err := backend.Set(SettingsFilename, string(raw)); err != nil {
		return errors.Wrap(err, "unable to save settings")
	}

	return nil
}

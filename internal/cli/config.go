package cli

import (
	"io"

	"github.com/rwx-cloud/longlines/internal/config"
	"github.com/rwx-cloud/longlines/internal/errors"
	"github.com/rwx-cloud/longlines/internal/text"
	"go.uber.org/zap"
)

type Config struct {
	Stdin           io.Reader
	Stdout          io.Writer
	StdoutIsTTY     bool
	StdoutWidth     func() (int, error)
	Stderr          io.Writer
	Logger          *zap.SugaredLogger
	SettingsBackend config.Backend
}

func (c Config) Validate() error {
	if c.Stdin == nil {
		return errors.New("missing Stdin")
	}

	if c.Stdout == nil {
		return errors.New("missing Stdout")
	}

	if c.Stderr == nil {
		return errors.New("missing Stderr")
	}

	if c.Logger == nil {
		return errors.New("missing logger")
	}

	if c.SettingsBackend == nil {
		return errors.New("missing settings backend")
	}

	return nil
}

type WrapOutputFormat int

const (
	WrapOutputText WrapOutputFormat = iota
	WrapOutputJSON
	WrapOutputYAML
)

func ParseWrapOutputFormat(formatString string) (WrapOutputFormat, error) {
	switch formatString {
	case "", "text":
		return WrapOutputText, nil
	case "json":
		return WrapOutputJSON, nil
	case "yaml":
		return WrapOutputYAML, nil
	default:
		return WrapOutputText, errors.New("unknown output format, expected one of: text, json, yaml")
	}
}

func ParseStrategy(strategyString string) (text.Strategy, error) {
	if strategyString == "" {
		return text.StrategyFrame, nil
	}

	for _, st := range text.Strategies {
		if strategyString == string(st) {
			return st, nil
		}
	}

	return "", errors.Errorf("unknown strategy %q, expected one of: frame, reflow", strategyString)
}

type WrapConfig struct {
	// Inputs are file paths or doublestar patterns. "-" reads standard input. When Inputs
	// and Text are both empty, standard input is read.
	Inputs       []string
	Text         string
	MaxLength    int
	Strategy     text.Strategy
	StripANSI    bool
	OutputFormat WrapOutputFormat

	// FitTerminal replaces MaxLength with the width of the terminal on Stdout.
	FitTerminal bool
}

func (c WrapConfig) Validate() error {
	if c.Text != "" && len(c.Inputs) > 0 {
		return errors.Wrap(errors.ErrConflictingArgs, "text cannot be combined with input files")
	}

	return nil
}

func NewWrapConfig(inputs []string, literal string, maxLength int, strategy string, stripANSI bool, format string) (WrapConfig, error) {
	st, err := ParseStrategy(strategy)
	if err != nil {
		return WrapConfig{}, err
	}

	outputFormat, err := ParseWrapOutputFormat(format)
	if err != nil {
		return WrapConfig{}, err
	}

	return WrapConfig{
		Inputs:       inputs,
		Text:         literal,
		MaxLength:    maxLength,
		Strategy:     st,
		StripANSI:    stripANSI,
		OutputFormat: outputFormat,
	}, nil
}

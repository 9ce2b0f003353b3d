package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/rwx-cloud/longlines/internal/errors"
	"github.com/rwx-cloud/longlines/internal/text"
	"gopkg.in/yaml.v3"
)

type WrappedDocument struct {
	Name      string        `json:"name" yaml:"name"`
	MaxLength int           `json:"max_length" yaml:"max_length"`
	Strategy  text.Strategy `json:"strategy" yaml:"strategy"`
	Lines     []string      `json:"lines" yaml:"lines"`

	// Output is the wrapped text exactly as the strategy produced it.
	Output string `json:"-" yaml:"-"`
}

type WrapResult struct {
	Documents []WrappedDocument `json:"documents" yaml:"documents"`
}

// Wrap reads the configured inputs, wraps each of them and writes the result to Stdout.
func (s Service) Wrap(ctx context.Context, cfg WrapConfig) (*WrapResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	if cfg.FitTerminal {
		width, err := s.terminalWidth()
		if err != nil {
			return nil, err
		}
		cfg.MaxLength = width
	}

	docs, err := s.loadDocuments(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result := &WrapResult{Documents: make([]WrappedDocument, len(docs))}
	for i, doc := range docs {
		content := doc.content
		if cfg.StripANSI {
			content = stripansi.Strip(content)
		}

		wrapped := cfg.Strategy.Wrap(content, cfg.MaxLength)
		lines := text.SplitLines(wrapped)

		s.Logger.Debugw("wrapped document",
			"name", doc.name,
			"bytes", len(content),
			"lines", len(lines),
			"max-length", cfg.MaxLength,
			"strategy", cfg.Strategy,
		)

		result.Documents[i] = WrappedDocument{
			Name:      doc.name,
			MaxLength: cfg.MaxLength,
			Strategy:  cfg.Strategy,
			Lines:     lines,
			Output:    wrapped,
		}
	}

	switch cfg.OutputFormat {
	case WrapOutputText:
		err = outputWrapText(s.Stdout, result.Documents)
	case WrapOutputJSON:
		err = outputWrapJSON(s.Stdout, result)
	case WrapOutputYAML:
		err = outputWrapYAML(s.Stdout, result)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to output wrapped text")
	}

	return result, nil
}

func (s Service) terminalWidth() (int, error) {
	if !s.StdoutIsTTY || s.StdoutWidth == nil {
		return 0, errors.New("--fit-terminal requires standard output to be a terminal")
	}

	width, err := s.StdoutWidth()
	if err != nil {
		return 0, errors.Wrap(err, "unable to determine terminal size")
	}

	s.Logger.Debugw("fitting terminal", "width", width)
	return width, nil
}

func (s Service) loadDocuments(ctx context.Context, cfg WrapConfig) ([]document, error) {
	if cfg.Text != "" {
		return []document{{name: literalName, content: cfg.Text}}, nil
	}

	inputs := cfg.Inputs
	if len(inputs) == 0 {
		inputs = []string{stdinInput}
	}

	paths, err := expandInputs(inputs)
	if err != nil {
		return nil, err
	}
	s.Logger.Debugw("expanded inputs", "inputs", inputs, "paths", paths)

	return s.readDocuments(ctx, paths)
}

func outputWrapText(w io.Writer, docs []WrappedDocument) error {
	for i, doc := range docs {
		if len(docs) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", doc.Name); err != nil {
				return err
			}
		}

		output := doc.Output
		if output != "" && !strings.HasSuffix(output, "\n") {
			output += "\n"
		}
		if _, err := io.WriteString(w, output); err != nil {
			return err
		}
	}

	return nil
}

func outputWrapJSON(w io.Writer, result *WrapResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputWrapYAML(w io.Writer, result *WrapResult) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return err
	}
	return encoder.Close()
}

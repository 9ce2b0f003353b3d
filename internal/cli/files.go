package cli

import (
	"context"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rwx-cloud/longlines/internal/errors"
	"golang.org/x/sync/errgroup"
)

const (
	stdinInput   = "-"
	stdinName    = "<stdin>"
	literalName  = "<text>"
	maxOpenFiles = 8
)

type document struct {
	name    string
	content string
}

// expandInputs resolves each input into the files it names. Plain paths must exist;
// patterns may match nothing as long as some input matched.
func expandInputs(inputs []string) ([]string, error) {
	var paths []string

	for _, input := range inputs {
		if input == stdinInput {
			paths = append(paths, stdinInput)
			continue
		}

		matches, err := doublestar.FilepathGlob(input, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "unable to expand %q", input)
		}

		if len(matches) == 0 && !hasGlobMeta(input) {
			if _, err := os.Stat(input); err != nil {
				return nil, errors.Wrapf(err, "unable to read %q", input)
			}
			return nil, errors.Errorf("%q is not a file", input)
		}

		paths = append(paths, matches...)
	}

	paths = removeDuplicates(paths, func(path string) string { return path })
	if len(paths) == 0 {
		return nil, errors.Wrapf(errors.ErrNoInputs, "%v", inputs)
	}

	return paths, nil
}

func hasGlobMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// readDocuments loads every path concurrently. Documents are returned in the order of paths.
func (s Service) readDocuments(ctx context.Context, paths []string) ([]document, error) {
	docs := make([]document, len(paths))

	// Standard input is consumed before any file is opened.
	for i, path := range paths {
		if path != stdinInput {
			continue
		}

		content, err := io.ReadAll(s.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "unable to read standard input")
		}
		docs[i] = document{name: stdinName, content: string(content)}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxOpenFiles)

	for i, path := range paths {
		if path == stdinInput {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "unable to read %q", path)
			}

			docs[i] = document{name: path, content: string(content)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

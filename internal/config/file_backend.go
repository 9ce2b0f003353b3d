package config

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/rwx-cloud/longlines/internal/errors"
)

// FileBackend reads documents from the first directory that has them. Documents found in
// a fallback directory are copied into the primary directory on read.
type FileBackend struct {
	PrimaryDirectory    string
	FallbackDirectories []string
}

func NewFileBackend(dirs []string) (*FileBackend, error) {
	if len(dirs) < 1 {
		return nil, errors.New("at least one directory must be provided")
	}

	expanded := make([]string, len(dirs))
	for i, dir := range dirs {
		path, err := expandTilde(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to expand %q", dir)
		}
		expanded[i] = path
	}

	return &FileBackend{
		PrimaryDirectory:    expanded[0],
		FallbackDirectories: expanded[1:],
	}, nil
}

// DefaultDirectories are searched for the settings file, most preferred first.
func DefaultDirectories() []string {
	return []string{
		filepath.Join("~", ".config", "longlines"),
		filepath.Join("~", ".longlines"),
	}
}

func (f FileBackend) Get(filename string) (string, error) {
	value, err := f.readFrom(f.PrimaryDirectory, filename)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return value, err
	}

	for _, dir := range f.FallbackDirectories {
		value, err = f.readFrom(dir, filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}

		if err := f.Set(filename, value); err != nil {
			return "", errors.Wrapf(err, "unable to migrate %q from %q to %q", filename, dir, f.PrimaryDirectory)
		}

		return value, nil
	}

	return "", nil
}

func (f FileBackend) readFrom(dir, filename string) (string, error) {
	path := filepath.Join(dir, filename)
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %q", path)
	}

	return strings.TrimSpace(string(contents)), nil
}

func (f FileBackend) Set(filename, value string) error {
	if err := os.MkdirAll(f.PrimaryDirectory, 0o755); err != nil {
		return errors.Wrapf(err, "unable to create %q", f.PrimaryDirectory)
	}

	path := filepath.Join(f.PrimaryDirectory, filename)
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return errors.Wrapf(err, "unable to write to %q", path)
	}

	return nil
}

var tildeSlash = "~" + string(os.PathSeparator)

func expandTilde(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, tildeSlash) {
		return dir, nil
	}

	u, err := user.Current()
	if err != nil {
		return "", err
	}

	if dir == "~" {
		return u.HomeDir, nil
	}
	return filepath.Join(u.HomeDir, strings.TrimPrefix(dir, tildeSlash)), nil
}

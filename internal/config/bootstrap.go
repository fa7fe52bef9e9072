package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// EnsureUserFile copies a shipped default (config.yml, lexicon.yml)
// into the data dir on first run so the user edits their own copy.
func EnsureUserFile(dataDir, defaultPath, name string) (string, error) {
	userPath := filepath.Join(dataDir, name)

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}

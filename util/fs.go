package util

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
)

var illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// LegalizeFilename replaces characters that are reserved
// on common filesystems with an underscore.
func LegalizeFilename(filename string) string {
	legalized := illegalFilenameChars.ReplaceAllString(filename, "_")
	legalized = regexp.MustCompile(`_+`).ReplaceAllString(legalized, "_")
	return strings.TrimSpace(legalized)
}

// CacheFile returns the full path for a file
// laid down in the application cache directory.
func CacheFile(filename string) string {
	path, err := xdg.CacheFile(filepath.Join("spotisync", filename))
	if err != nil {
		return filepath.Join(os.TempDir(), "spotisync", filename)
	}
	return path
}

// FileBaseStem returns the path deprived of its extension.
func FileBaseStem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// FileMoveOrCopy moves source to destination, falling back
// to a copy (and removal) when rename crosses devices.
// Unless overwrite is set, an existing destination is preserved.
func FileMoveOrCopy(source, destination string, overwrite ...bool) error {
	if _, err := os.Stat(destination); err == nil &&
		(len(overwrite) == 0 || !overwrite[0]) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return err
	}

	if err := os.Rename(source, destination); err == nil {
		return nil
	}

	input, err := os.Open(source)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer output.Close()

	if _, err := io.Copy(output, input); err != nil {
		return err
	}
	return os.Remove(source)
}

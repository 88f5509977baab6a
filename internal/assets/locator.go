// Package assets resolves resource references (texture and mesh paths) from
// scene descriptions to files on disk, and hands out mesh asset handles.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Locator resolves a resource reference to an absolute file path. Absolute
// references are checked as-is; relative ones are tried against each search
// path in order.
type Locator struct {
	searchPaths []string
	log         *zap.Logger
}

// NewLocator builds a locator over the given search paths.
func NewLocator(searchPaths []string, log *zap.Logger) *Locator {
	return &Locator{searchPaths: searchPaths, log: log}
}

// Find returns the absolute path of an existing file matching ref, or an
// error if no search path contains it.
func (l *Locator) Find(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("empty resource reference")
	}
	if filepath.IsAbs(ref) {
		if fileExists(ref) {
			return ref, nil
		}
		return "", fmt.Errorf("resource not found: %s", ref)
	}
	for _, dir := range l.searchPaths {
		full := filepath.Join(dir, ref)
		if fileExists(full) {
			abs, err := filepath.Abs(full)
			if err != nil {
				return "", fmt.Errorf("resolve %s: %w", full, err)
			}
			return abs, nil
		}
	}
	return "", fmt.Errorf("resource not found in %d search paths: %s", len(l.searchPaths), ref)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

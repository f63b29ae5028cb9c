// Package scan enumerates sprite files in a directory.
//
// Results are always in lexical path order (the order filepath.WalkDir
// visits entries), so the same directory yields the same packing.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options controls which files are returned.
type Options struct {
	// Recursive descends into subdirectories.
	Recursive bool

	// Extensions limits results to these extensions (case-insensitive,
	// with or without the leading dot). Empty means ".png".
	Extensions []string

	// SkipDirs names subdirectories never descended into.
	SkipDirs []string

	// Exclude lists files and directories, by path, that are never
	// returned or descended into. Paths are compared after resolving
	// them to absolute form.
	Exclude []string
}

// Dir returns the sprite files under dir. Hidden files and directories
// (names starting with ".") are ignored.
func Dir(dir string, opts Options) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	exts := normalizeExtensions(opts.Extensions)
	skip := make(map[string]bool, len(opts.SkipDirs))
	for _, d := range opts.SkipDirs {
		skip[d] = true
	}

	exclude := make(map[string]bool, len(opts.Exclude))
	for _, p := range opts.Exclude {
		if abs, err := filepath.Abs(p); err == nil {
			exclude[abs] = true
		}
	}
	excluded := func(path string) bool {
		if len(exclude) == 0 {
			return false
		}
		abs, err := filepath.Abs(path)
		return err == nil && exclude[abs]
	}

	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if !opts.Recursive || skip[name] || strings.HasPrefix(name, ".") || excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !d.Type().IsRegular() || excluded(path) {
			return nil
		}
		if exts[strings.ToLower(filepath.Ext(name))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return paths, nil
}

func normalizeExtensions(in []string) map[string]bool {
	if len(in) == 0 {
		in = []string{".png"}
	}
	out := make(map[string]bool, len(in))
	for _, e := range in {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out[e] = true
	}
	return out
}

// Package scanner finds the source files of a project.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// defaultSkipDirs are directories holding generated or vendored code.
var defaultSkipDirs = []string{"elm-stuff", "node_modules"}

type FileInfo struct {
	Path string
	Size int64
}

type Scanner struct {
	rootDir    string
	extensions []string
	skipDirs   []string
}

// New creates a Scanner for the files below rootDir with one of the given
// extensions. No extension selects every file.
func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
		skipDirs:   defaultSkipDirs,
	}
}

// Skip adds directory names that are not descended into.
func (s *Scanner) Skip(names ...string) *Scanner {
	s.skipDirs = slices.Concat(s.skipDirs, names)
	return s
}

// Scan returns the target files in lexical order. Hidden directories are
// skipped, except for the root itself.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo
	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != s.rootDir && s.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.isTargetFile(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, FileInfo{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", s.rootDir, err)
	}
	return files, nil
}

func (s *Scanner) skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(s.skipDirs, name)
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	return slices.Contains(s.extensions, filepath.Ext(path))
}

package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/routelabel/routelabel/internal/errors"
)

// DirectoryScanner discovers Python source files under the configured
// inputs. Files are taken as-is; directories are walked recursively.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// Scan resolves the inputs to a sorted, de-duplicated list of .py files.
func (s *DirectoryScanner) Scan(inputs []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, input := range inputs {
		matches, err := s.scanInput(input)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			add(m)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (s *DirectoryScanner) scanInput(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, errors.WrapFileSystem("stat", input, err)
	}

	if !info.IsDir() {
		return []string{input}, nil
	}

	var files []string
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(d.Name(), path, input) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapFileSystem("walk", input, err)
	}
	return files, nil
}

// skipDir filters out directories that never hold route handlers.
func skipDir(name, path, root string) bool {
	if path == root {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return true
	}
	return name == "__pycache__" || name == "node_modules" || name == "venv"
}

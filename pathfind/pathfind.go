// Package pathfind resolves the executable behind a program invocation
// name, the way argv[0] is resolved against PATH. It also works as a
// basic whereis: give it a name and the PATH entries, get the file back.
package pathfind

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Split divides a command path into the directory it names and the bare
// invocation name. A path with no separator is all name.
func Split(path string) (dir, name string) {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[:i+1], path[i+1:]
	}
	return "", path
}

// Resolve searches dirs for the executable behind name, trying each
// extension when the bare name is not found. A name that already carries
// a directory is returned as-is. The boolean reports whether a file was
// found.
func Resolve(dirs []string, name string, extensions ...string) (string, bool) {
	if dir, _ := Split(name); dir != "" {
		_, err := os.Stat(name)
		return name, err == nil
	}
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if exists(candidate) {
			return candidate, true
		}
		for _, ext := range extensions {
			if exists(candidate + ext) {
				return candidate + ext, true
			}
		}
	}
	return name, false
}

// Match returns the regular files under dir whose names match the glob
// pattern. Patterns support ** and {a,b} alternates.
func Match(dir, pattern string) ([]string, error) {
	fsys := os.DirFS(dir)
	names, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, name := range names {
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

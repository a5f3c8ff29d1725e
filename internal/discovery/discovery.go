package discovery

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the glob patterns that identify assessment files.
// Files named *.ccf.{yaml,yml,json} are found anywhere; inside an
// assessments/ directory any YAML or JSON file counts.
var DefaultPatterns = []string{
	"**/*.ccf.yaml",
	"**/*.ccf.yml",
	"**/*.ccf.json",
	"assessments/**/*.yaml",
	"assessments/**/*.yml",
	"assessments/**/*.json",
}

// File represents a discovered assessment file
type File struct {
	Path    string // absolute or root-joined path
	RelPath string // slash-separated path relative to the root
	Size    int64
}

// FileDiscovery manages file discovery operations
type FileDiscovery struct {
	rootPath string
	patterns []string
	exclude  []string
}

// NewFileDiscovery creates a FileDiscovery using DefaultPatterns.
// Exclude patterns use doublestar syntax and match relative paths.
func NewFileDiscovery(rootPath string, exclude []string) *FileDiscovery {
	return &FileDiscovery{
		rootPath: rootPath,
		patterns: DefaultPatterns,
		exclude:  exclude,
	}
}

// WithPatterns replaces the discovery patterns
func (fd *FileDiscovery) WithPatterns(patterns []string) *FileDiscovery {
	fd.patterns = patterns
	return fd
}

// DiscoverFiles finds all assessment files under the root, sorted by relative path.
// A file matched by several patterns is returned once.
func (fd *FileDiscovery) DiscoverFiles() ([]File, error) {
	for _, ex := range fd.exclude {
		if !doublestar.ValidatePattern(ex) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", ex)
		}
	}

	seen := make(map[string]bool)
	var files []File

	fsys := os.DirFS(fd.rootPath)
	for _, pattern := range fd.patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || fd.excluded(match) {
				continue
			}
			f, ok := fd.processMatch(match)
			if !ok {
				continue
			}
			seen[match] = true
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})
	return files, nil
}

func (fd *FileDiscovery) excluded(relPath string) bool {
	for _, ex := range fd.exclude {
		if matched, _ := doublestar.Match(ex, relPath); matched {
			return true
		}
	}
	return false
}

// processMatch converts a glob match into a File, returning false if the match should be skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool) {
	fullPath := filepath.Join(fd.rootPath, filepath.FromSlash(match))

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return File{}, false
	}

	return File{
		Path:    fullPath,
		RelPath: match,
		Size:    info.Size(),
	}, true
}

// ValidateFilePath checks that an explicitly named file can be scored:
// it exists, is a regular file, is not empty and is not binary.
func ValidateFilePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", absPath)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied: %s", absPath)
		}
		return "", fmt.Errorf("cannot access file: %s: %w", absPath, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", absPath)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("file is empty: %s", absPath)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	if bytes.Contains(buf[:n], []byte{0}) {
		return "", fmt.Errorf("file appears to be binary, not text: %s", absPath)
	}

	return absPath, nil
}

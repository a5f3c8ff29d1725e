package project

import (
	"os"
	"path/filepath"
)

// rootMarkers are the entries whose presence makes a directory a project root.
// Checked in order; the first hit wins.
var rootMarkers = []string{
	".ccfrc.json",
	".ccfrc.yaml",
	".ccfrc.yml",
	"assessments",
	".git",
}

// FindProjectRoot searches for a project root starting from the given path
// and climbing up the directory tree if needed.
func FindProjectRoot(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	currentDir := absPath
	for {
		if isProjectRoot(currentDir) {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parent
	}

	// Default to the start directory if no project root found
	return absPath, nil
}

// isProjectRoot determines if a directory is a project root
func isProjectRoot(path string) bool {
	return Marker(path) != ""
}

// Marker returns the first root marker found in dir, or "" if none.
func Marker(dir string) string {
	for _, m := range rootMarkers {
		if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
			return m
		}
	}
	return ""
}

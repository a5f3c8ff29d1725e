package docs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/ccfscore/internal/config"
	"github.com/dotcommander/ccfscore/internal/discovery"
	"github.com/dotcommander/ccfscore/internal/scoring"
)

// repoRoot returns the repository root directory
func repoRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find repository root (go.mod not found)")
			return ""
		}
		dir = parent
	}
}

func readDoc(t *testing.T, rel string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(repoRoot(t), filepath.FromSlash(rel)))
	require.NoError(t, err, "%s should exist", rel)
	return string(content)
}

// TestCommandsReferenceUsage verifies every subcommand is documented
func TestCommandsReferenceUsage(t *testing.T) {
	content := readDoc(t, "docs/reference/commands.md")

	assert.Contains(t, content, "## Usage")
	assert.Contains(t, content, "```bash")
	for _, usage := range []string{
		"ccfscore [files...] [flags]",
		"ccfscore summary [flags]",
		"ccfscore validate [files...] [flags]",
		"ccfscore tracks [flags]",
		"ccfscore ims [flags]",
	} {
		assert.Contains(t, content, usage)
	}
}

// TestCommandsReferenceDiscoveryPatterns verifies the documented globs match discovery
func TestCommandsReferenceDiscoveryPatterns(t *testing.T) {
	content := readDoc(t, "docs/reference/commands.md")

	for _, pattern := range discovery.DefaultPatterns {
		assert.Contains(t, content, pattern)
	}
}

// TestConfigurationFiles verifies every config file name is documented
func TestConfigurationFiles(t *testing.T) {
	content := readDoc(t, "docs/reference/configuration.md")

	for _, name := range config.ConfigFiles {
		assert.Contains(t, content, "`"+name+"`")
	}
}

// TestConfigurationKeys verifies the key table covers every config field
func TestConfigurationKeys(t *testing.T) {
	content := readDoc(t, "docs/reference/configuration.md")

	for _, key := range []string{
		"root", "exclude", "format", "output", "quiet", "verbose",
		"strict", "failOn", "logLevel", "logFormat", "showBreakdown",
	} {
		assert.Contains(t, content, "| `"+key+"` |")
	}
}

// TestConfigurationTracks verifies the track table matches the engine
func TestConfigurationTracks(t *testing.T) {
	content := readDoc(t, "docs/reference/configuration.md")

	for _, track := range scoring.Tracks() {
		assert.Contains(t, content, "| "+track.SubTier+" | "+track.ScoreRange+" |")
	}
}

// TestConfigurationBands verifies every band is named with its plan
func TestConfigurationBands(t *testing.T) {
	content := readDoc(t, "docs/reference/configuration.md")

	for _, band := range scoring.Bands() {
		assert.Contains(t, content, "| "+band.String()+" |")
	}
	assert.Contains(t, content, scoring.PlanLow)
	assert.Contains(t, content, scoring.PlanModerate)
	assert.Contains(t, content, "12-month continuous care")
}

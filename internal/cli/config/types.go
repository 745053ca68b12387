// Package config provides configuration management for the doxdedup
// CLI. Values are layered from defaults, a doxdedup.yaml file, the
// DOXDEDUP_* environment, and command-line flags, in ascending
// precedence.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all CLI configuration options.
type Config struct {
	// Stylesheet is the XSLT file applied to the index. Relative paths
	// resolve against DocDir. Empty selects the conventional
	// <doc_dir>/thirdparty/doxygen/dedup_index.xsl when that file
	// exists, and the embedded default stylesheet otherwise.
	Stylesheet string `koanf:"stylesheet"`

	// DocDir is the documentation root used to resolve relative
	// stylesheet paths.
	DocDir string `koanf:"doc_dir"`

	// OutputFormat selects the renderer mode (auto|text|json).
	OutputFormat string `koanf:"output"`

	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDocDir = "."
	DefaultOutput = "auto" // styled on a TTY, plain otherwise

	// DefaultStylesheetRelPath is where doc builds conventionally keep
	// the dedup stylesheet under the documentation root.
	DefaultStylesheetRelPath = "thirdparty/doxygen/dedup_index.xsl"
)

// StylesheetPath returns the stylesheet file to apply, or "" when the
// embedded default applies. An explicitly configured relative path is
// resolved against DocDir; with no configuration the conventional
// location under DocDir is used only if present.
func (c *Config) StylesheetPath() string {
	if c.Stylesheet != "" {
		if filepath.IsAbs(c.Stylesheet) {
			return c.Stylesheet
		}
		return filepath.Join(c.DocDir, c.Stylesheet)
	}

	candidate := filepath.Join(c.DocDir, DefaultStylesheetRelPath)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

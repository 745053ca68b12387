package config

import "fmt"

// Validate checks if the configuration is valid. Stylesheet existence
// is not checked here: the dedup engine reports a missing file with
// the resolved path, which is the more useful error.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("unknown output format: %s (expected auto, text, or json)", c.OutputFormat)
	}
	if c.DocDir == "" {
		return fmt.Errorf("doc_dir must not be empty")
	}
	return nil
}

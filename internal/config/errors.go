package config

import "fmt"

// ConfigurationError reports an unusable configuration key. It is detected
// before any generation runs; a declaration with a configuration error
// produces no output at all.
type ConfigurationError struct {
	// Key is the offending configuration key.
	Key string
	// Reason describes what is wrong with it.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration key %q: %s", e.Key, e.Reason)
}

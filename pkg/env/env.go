// Package env reads the handful of variables needed before the full config
// loads, such as the logger's output format.
package env

import "os"

// Get looks up key in the environment, falling back when unset or blank.
func Get(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

package util

import "os"

// GetenvDefault returns the value of the environment variable or a fallback
// when it is unset or empty.
func GetenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

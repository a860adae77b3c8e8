package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetXDGCacheDir returns the XDG cache directory for mreport.
// It respects XDG_CACHE_HOME if set, otherwise falls back to ~/.cache/mreport
func GetXDGCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "mreport"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".cache", "mreport"), nil
}

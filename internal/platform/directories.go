package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Directories holds the per-user directories of the application
type Directories struct {
	// Home is the user's home directory
	Home string
	// Config is searched for the configuration file
	Config string
	// Data holds the run log
	Data string
}

// GetDirectories returns the appropriate directories for the current platform.
// Nothing is created on disk; see EnsureDir.
func GetDirectories(appName string) (*Directories, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return resolve(runtime.GOOS, homeDir, appName, os.Getenv), nil
}

func resolve(goos, homeDir, appName string, getenv func(string) string) *Directories {
	dirs := &Directories{Home: homeDir}

	// envOr returns the environment variable or the fallback path
	envOr := func(key string, fallback ...string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return filepath.Join(fallback...)
	}

	switch goos {
	case "darwin":
		dirs.Config = filepath.Join(homeDir, "Library", "Application Support", appName)
		dirs.Data = dirs.Config

	case "windows":
		dirs.Config = filepath.Join(envOr("APPDATA", homeDir, "AppData", "Roaming"), appName)
		dirs.Data = filepath.Join(envOr("LOCALAPPDATA", homeDir, "AppData", "Local"), appName)

	default:
		// Follow XDG Base Directory Specification
		dirs.Config = filepath.Join(envOr("XDG_CONFIG_HOME", homeDir, ".config"), appName)
		dirs.Data = filepath.Join(envOr("XDG_DATA_HOME", homeDir, ".local", "share"), appName)
	}

	return dirs
}

// EnsureDir creates dir if it does not exist yet
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName = "tasklist"
	configFile = "config.json"

	StoreFile = "store.json"
	LogFile   = "tasklist.log"
)

func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		legacy := filepath.Join(home, ".config", appDirName)
		if _, err := os.Stat(legacy); err == nil {
			return legacy, nil
		}
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, appDirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Beside returns name in the same directory as the config file, which is
// where the store and log live unless configured otherwise.
func Beside(configPath, name string) string {
	return filepath.Join(filepath.Dir(configPath), name)
}

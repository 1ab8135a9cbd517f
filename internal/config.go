package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	HipchatURL      string        `env:"HIPCHAT_URL,default=https://api.hipchat.com/v1"`
	HipchatToken    string        `env:"HIPCHAT_TOKEN"`
	CredentialFile  string        `env:"HIPCHAT_CONFIG_FILE,default=~/.hipfab.json"`
	Timeout         time.Duration `env:"HIPCHAT_TIMEOUT,default=10s"`
	Debug           bool          `env:"HIPGATE_DEBUG,default=false"`
	User            string        `env:"HIPGATE_USER"`
	PresenceWorkers int           `env:"PRESENCE_WORKERS,default=8"`
	HistoryPath     string        `env:"HISTORY_PATH"`
}

// ExpandHome replaces a leading "~/" with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("HIPCHAT_CONFIG_FILE %q needs a home directory: %w", path, err)
	}
	return filepath.Join(home, path[2:]), nil
}

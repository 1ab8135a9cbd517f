package internal

import (
	"path/filepath"
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("HIPGATE_DEBUG", "true")
	t.Setenv("PRESENCE_WORKERS", "3")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("INFO", config.LogLevel)
	req.Equal("https://api.hipchat.com/v1", config.HipchatURL)
	req.Equal("~/.hipfab.json", config.CredentialFile)
	req.True(config.Debug)
	req.Equal(3, config.PresenceWorkers)
}

func TestExpandHome(t *testing.T) {
	req := require.New(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := ExpandHome("~/.hipfab.json")
	req.NoError(err)
	req.Equal(filepath.Join(home, ".hipfab.json"), path)

	path, err = ExpandHome("/etc/hipfab.json")
	req.NoError(err)
	req.Equal("/etc/hipfab.json", path)
}

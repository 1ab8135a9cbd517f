package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_HIPCHAT_URL points at a real or staging HipChat v1 API. Scenarios skip when empty.
	HipchatURL   string `envconfig:"E2E_HIPCHAT_URL"`
	HipchatToken string `envconfig:"E2E_HIPCHAT_TOKEN"`
	Room         string `envconfig:"E2E_ROOM" default:"deployments"`
	// E2E_PEOPLE lists mention names expected to be present during the run.
	People []string `envconfig:"E2E_PEOPLE"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

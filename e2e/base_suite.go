package e2e

import (
	"chat-gate/auth"
	"chat-gate/infrastructure/hipchat"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseHipchatSuite struct {
	suite.Suite
	Config Config
	Log    *slog.Logger
}

// SetupSuite loads the environment configuration before running scenarios
func (s *BaseHipchatSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.HipchatURL == "" {
		s.T().Skip("E2E_HIPCHAT_URL is not set")
	}
	s.Log = logs.GetLoggerFromLevel(slog.LevelDebug)
}

// WithClient provides a HipChat client within a contextual test step
func (s *BaseHipchatSuite) WithClient(name string, dryRun bool, fn func(ctx context.Context, client *hipchat.Client)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	credentials := auth.NewCachedProvider(auth.StaticSource(s.Config.HipchatToken))
	client := hipchat.NewClient(hipchat.Config{
		BaseURL: s.Config.HipchatURL,
		Timeout: 10 * time.Second,
		DryRun:  dryRun,
	}, credentials, s.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, client)
}

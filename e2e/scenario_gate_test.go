package e2e

import (
	"chat-gate/domain"
	"chat-gate/infrastructure/hipchat"
	"chat-gate/services"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GateScenarioSuite struct {
	BaseHipchatSuite
}

func TestGateScenario(t *testing.T) {
	suite.Run(t, new(GateScenarioSuite))
}

func (s *GateScenarioSuite) TestRoomAndDirectoryAreReadable() {
	s.WithClient("Read room and directory", true, func(ctx context.Context, client *hipchat.Client) {
		roster, err := client.FetchRoom(ctx, domain.RoomID(s.Config.Room))
		s.Require().NoError(err)
		s.T().Logf("room %s has %d participants", roster.Name, len(roster.Participants))

		directory, err := client.FetchAllUsers(ctx)
		s.Require().NoError(err)
		s.Require().NotEmpty(directory.Users)
	})
}

func (s *GateScenarioSuite) TestExpectedPeopleAreVerified() {
	if len(s.Config.People) == 0 {
		s.T().Skip("E2E_PEOPLE is not set")
	}
	s.WithClient("Verify expected people", true, func(ctx context.Context, client *hipchat.Client) {
		presence := services.NewPresenceService(client, s.Log, services.DefaultPresenceWorkers)
		err := presence.Resolve(ctx, domain.GateRequest{
			People:   s.Config.People,
			Room:     domain.RoomID(s.Config.Room),
			TaskName: "e2e",
		})
		s.Require().NoError(err)
	})
}

func (s *GateScenarioSuite) TestDryRunNeverPosts() {
	s.WithClient("Dry-run message", true, func(ctx context.Context, client *hipchat.Client) {
		ack, err := client.PostMessage(ctx, domain.OutgoingMessage{
			Room:   domain.RoomID(s.Config.Room),
			Sender: domain.DefaultSenderLabel,
			Body:   "e2e dry-run",
			Color:  domain.ColorGray,
			Format: domain.FormatText,
		})
		s.Require().NoError(err)
		s.Require().Equal(domain.AckDryRun, ack.Status)
	})
}

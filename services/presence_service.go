package services

import (
	"chat-gate/contract"
	"chat-gate/domain"
	"chat-gate/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const DefaultPresenceWorkers = 8

var _ contract.PresenceResolver = (*PresenceService)(nil)

// PresenceService verifies that at least one required person sits in a room and is available.
type PresenceService struct {
	client  contract.MessagingClient
	log     *slog.Logger
	workers int
}

func NewPresenceService(client contract.MessagingClient, log *slog.Logger, workers int) *PresenceService {
	return &PresenceService{
		client:  client,
		log:     log,
		workers: lo.Ternary(workers > 0, workers, DefaultPresenceWorkers),
	}
}

// Resolve succeeds on the first required person found present and available (OR semantics).
// People are checked in order: an unknown handle met before any match fails the whole request.
func (s *PresenceService) Resolve(ctx context.Context, req domain.GateRequest) error {
	if err := validateGateRequest(req); err != nil {
		return err
	}

	roster, directory, err := s.fetchRoomAndDirectory(ctx, req.Room)
	if err != nil {
		return err
	}
	handles := directory.Handles()

	present, err := s.availableNames(ctx, roster)
	if err != nil {
		return err
	}

	for _, person := range req.People {
		if _, ok := handles[strings.ToLower(person)]; !ok {
			return fmt.Errorf("%w: Person %s is not a valid HipChat user", errors.ErrInvalidUser, person)
		}
		user, _ := directory.Lookup(person)
		if _, ok := present[strings.ToLower(user.Name)]; ok {
			s.log.Info(fmt.Sprintf("[Hipchat] '%s' is present; continuing with deployment.", user.MentionName),
				"task", req.TaskName, "room", req.Room)
			return nil
		}
	}

	mentions := lo.Map(req.People, func(person string, _ int) string {
		return "@" + person
	})
	return fmt.Errorf("%w: %s: Not deploying, could not find Verification DRIs in room %s: %v",
		errors.ErrVerificationFailed, req.TaskName, req.Room, mentions)
}

// fetchRoomAndDirectory runs both independent reads at the same time.
func (s *PresenceService) fetchRoomAndDirectory(ctx context.Context, roomID domain.RoomID) (domain.RoomRoster, domain.UserDirectory, error) {
	var roster domain.RoomRoster
	var directory domain.UserDirectory

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.client.FetchRoom(gctx, roomID)
		return err
	})
	g.Go(func() error {
		var err error
		directory, err = s.client.FetchAllUsers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.RoomRoster{}, domain.UserDirectory{}, err
	}
	return roster, directory, nil
}

// availableNames fetches each participant's presence exactly once, on a bounded pool,
// and returns the lower-cased full names of those who are available.
func (s *PresenceService) availableNames(ctx context.Context, roster domain.RoomRoster) (map[string]struct{}, error) {
	presences := make([]domain.UserPresence, len(roster.Participants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, participant := range roster.Participants {
		g.Go(func() error {
			presence, err := s.client.FetchUserStatus(gctx, participant.UserID)
			if err != nil {
				return err
			}
			presences[i] = presence
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	available := lo.Filter(roster.Participants, func(p domain.Participant, i int) bool {
		return presences[i].IsAvailable()
	})
	s.log.Debug("Presence resolved", "room", roster.ID,
		"participants", len(roster.Participants), "available", len(available))

	return lo.SliceToMap(available, func(p domain.Participant) (string, struct{}) {
		return strings.ToLower(p.Name), struct{}{}
	}), nil
}

package domain

import "github.com/samber/lo"

type RoomID string

// DefaultRoom receives deployment notifications when no room is given.
const DefaultRoom RoomID = "deployments"

// RoomRoster is the list of people currently in a room.
// It is always fetched fresh, room membership changes too often to be cached.
type RoomRoster struct {
	ID           RoomID
	Name         string
	Participants []Participant
}

// ParticipantIDs returns the user IDs of the roster in roster order.
func (r RoomRoster) ParticipantIDs() []string {
	return lo.Map(r.Participants, func(p Participant, _ int) string {
		return p.UserID
	})
}

package domain

type Status string

const (
	StatusAvailable Status = "available"
	StatusAway      Status = "away"
	StatusDND       Status = "dnd"
	StatusOffline   Status = "offline"
)

// UserPresence is the live status of a single user.
// The roster and directory endpoints don't carry it, so it is fetched per user.
type UserPresence struct {
	UserID string
	Name   string
	Status Status
}

func (p UserPresence) IsAvailable() bool {
	return p.Status == StatusAvailable
}

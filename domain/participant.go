// Package domain contains core concepts of the gating system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

// Participant is a member of a room roster.
// Name is the full display name, not the mention handle.
type Participant struct {
	UserID string
	Name   string
}

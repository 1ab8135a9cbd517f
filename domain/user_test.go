package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserDirectory_Lookup(t *testing.T) {
	req := require.New(t)
	directory := UserDirectory{Users: []User{
		{UserID: "1", Name: "Alice Liddell", MentionName: "Alice"},
		{UserID: "2", Name: "Alice Cooper", MentionName: "alice"},
		{UserID: "3", Name: "Bob Martin", MentionName: "bob"},
	}}

	// First entry wins when handles collide
	user, ok := directory.Lookup("ALICE")
	req.True(ok)
	req.Equal("1", user.UserID)

	_, ok = directory.Lookup("carol")
	req.False(ok)

	handles := directory.Handles()
	req.Len(handles, 2)
	req.Contains(handles, "alice")
	req.Contains(handles, "bob")
}

func TestRoomRoster_ParticipantIDs(t *testing.T) {
	roster := RoomRoster{Participants: []Participant{{UserID: "7"}, {UserID: "3"}}}
	require.Equal(t, []string{"7", "3"}, roster.ParticipantIDs())
}

package hipchat

import (
	"chat-gate/domain"
	"encoding/json"

	"github.com/samber/lo"
)

type errorEnvelope struct {
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type apiParticipant struct {
	UserID json.Number `json:"user_id"`
	Name   string      `json:"name"`
}

type apiRoom struct {
	RoomID       json.Number      `json:"room_id"`
	Name         string           `json:"name"`
	Participants []apiParticipant `json:"participants"`
}

type roomResponse struct {
	Room apiRoom `json:"room"`
}

type apiUser struct {
	UserID      json.Number `json:"user_id"`
	Name        string      `json:"name"`
	MentionName string      `json:"mention_name"`
	Status      string      `json:"status"`
}

type userListResponse struct {
	Users []apiUser `json:"users"`
}

type userShowResponse struct {
	User apiUser `json:"user"`
}

type messageResponse struct {
	Status string `json:"status"`
}

func toRoomRoster(room apiRoom) domain.RoomRoster {
	return domain.RoomRoster{
		ID:   domain.RoomID(room.RoomID.String()),
		Name: room.Name,
		Participants: lo.Map(room.Participants, func(p apiParticipant, _ int) domain.Participant {
			return domain.Participant{UserID: p.UserID.String(), Name: p.Name}
		}),
	}
}

func toUser(u apiUser, _ int) domain.User {
	return domain.User{
		UserID:      u.UserID.String(),
		Name:        u.Name,
		MentionName: u.MentionName,
		Status:      domain.Status(u.Status),
	}
}

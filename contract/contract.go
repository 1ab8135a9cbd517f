//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-gate/domain"
	"context"
)

// MessagingClient is the remote chat endpoint.
// Reads fail with a RemoteError when the endpoint answers with an error envelope.
type MessagingClient interface {
	FetchRoom(ctx context.Context, roomID domain.RoomID) (domain.RoomRoster, error)
	FetchAllUsers(ctx context.Context) (domain.UserDirectory, error)
	FetchUserStatus(ctx context.Context, userID string) (domain.UserPresence, error)
	PostMessage(ctx context.Context, msg domain.OutgoingMessage) (domain.Ack, error)
}

type PresenceResolver interface {
	Resolve(ctx context.Context, req domain.GateRequest) error
}

// Notifier never fails from the caller's point of view.
// Problems are reported in the SendReport and logged.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) domain.SendReport
}

// Executor is the runner facility that actually invokes an action.
type Executor interface {
	Execute(ctx context.Context, action domain.Action, args domain.Args) (any, error)
}

// Task wraps an action and intercepts its lifecycle.
type Task interface {
	Name() string
	Doc() string
	Module() string
	Invoke(ctx context.Context, args domain.Args) (any, error)
}

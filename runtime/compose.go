package runtime

import (
	"chat-gate/contract"
	"chat-gate/domain"
	"fmt"
	"log/slog"
)

type Variant string

const (
	VariantNotifying Variant = "notify"
	VariantGated     Variant = "gate"
)

// identity keeps the wrapped action's metadata for introspection by the runner.
type identity struct {
	action domain.Action
}

func identityOf(action domain.Action) identity {
	return identity{action: action}
}

func (i identity) Name() string   { return i.action.Name }
func (i identity) Doc() string    { return i.action.Doc }
func (i identity) Module() string { return i.action.Module }

// Dependencies are the collaborators shared by every composed task.
type Dependencies struct {
	Executor contract.Executor
	Resolver contract.PresenceResolver
	Notifier contract.Notifier
	Log      *slog.Logger
}

// TaskOptions configures one composed task.
type TaskOptions struct {
	Notification domain.Notification
	People       []string
	Room         domain.RoomID
}

// Compose wraps action in the requested variant.
func Compose(variant Variant, action domain.Action, deps Dependencies, options TaskOptions) (contract.Task, error) {
	switch variant {
	case VariantNotifying:
		return NewNotifyingTask(action, deps.Executor, deps.Notifier, options.Notification, deps.Log), nil
	case VariantGated:
		room := options.Room
		if room == "" {
			room = domain.DefaultRoom
		}
		return NewGatedTask(action, deps.Executor, deps.Resolver, deps.Notifier,
			options.People, room, options.Notification, deps.Log), nil
	default:
		return nil, fmt.Errorf("unknown task variant %q", variant)
	}
}

package runtime

import (
	"chat-gate/contract"
	"chat-gate/domain"
	"context"
	"log/slog"
)

var _ contract.Task = (*GatedTask)(nil)

// GatedTask runs its action only when the presence check passes.
// A failed check is announced and the action is skipped; no error reaches the runner.
type GatedTask struct {
	identity
	executor contract.Executor
	resolver contract.PresenceResolver
	notifier contract.Notifier
	people   []string
	room     domain.RoomID
	template domain.Notification
	log      *slog.Logger
}

func NewGatedTask(action domain.Action, executor contract.Executor, resolver contract.PresenceResolver,
	notifier contract.Notifier, people []string, room domain.RoomID,
	template domain.Notification, log *slog.Logger) *GatedTask {
	return &GatedTask{
		identity: identityOf(action),
		executor: executor,
		resolver: resolver,
		notifier: notifier,
		people:   people,
		room:     room,
		template: template,
		log:      log,
	}
}

func (t *GatedTask) Invoke(ctx context.Context, args domain.Args) (any, error) {
	req := domain.GateRequest{People: t.people, Room: t.room, TaskName: t.action.Name}
	if err := t.resolver.Resolve(ctx, req); err != nil {
		t.log.Warn("Verification failed, action skipped", "task", t.action.Name, "room", t.room, "error", err)
		n := t.template
		n.Message = err.Error()
		n.Verb = domain.VerificationVerb
		n.Phase = domain.PhaseVerificationFailed
		n.Failure = true
		n.Notify = true
		n.ActionName = t.action.Name
		n.Args = args
		t.notifier.Send(ctx, n)
		return nil, nil
	}
	return t.executor.Execute(ctx, t.action, args)
}

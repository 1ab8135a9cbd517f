package runtime

import (
	"chat-gate/contract"
	"chat-gate/domain"
	"context"
	"log/slog"
)

type TaskState string

const (
	StatePending   TaskState = "PENDING"
	StateRunning   TaskState = "RUNNING"
	StateSucceeded TaskState = "SUCCEEDED"
	StateFailed    TaskState = "FAILED"
)

var _ contract.Task = (*NotifyingTask)(nil)

// NotifyingTask announces the start of an action, then its completion or failure.
// The action's result and error are passed through untouched.
type NotifyingTask struct {
	identity
	executor contract.Executor
	notifier contract.Notifier
	template domain.Notification
	log      *slog.Logger
}

// NewNotifyingTask wraps action. template carries the caller's notification settings
// (room, color, verb, subject...); it is copied on every invocation.
func NewNotifyingTask(action domain.Action, executor contract.Executor, notifier contract.Notifier,
	template domain.Notification, log *slog.Logger) *NotifyingTask {
	return &NotifyingTask{
		identity: identityOf(action),
		executor: executor,
		notifier: notifier,
		template: template,
		log:      log,
	}
}

func (t *NotifyingTask) Invoke(ctx context.Context, args domain.Args) (any, error) {
	state := StatePending

	start := t.notification(args, domain.PhaseStart)
	start.Verb = domain.StartVerb
	t.notifier.Send(ctx, start)
	state = t.transition(state, StateRunning)

	result, err := t.executor.Execute(ctx, t.action, args)
	if err != nil {
		failure := t.notification(args, domain.PhaseFailed)
		failure.Failure = true
		t.notifier.Send(ctx, failure)
		t.transition(state, StateFailed)
		return result, err
	}

	t.notifier.Send(ctx, t.notification(args, domain.PhaseSucceeded))
	t.transition(state, StateSucceeded)
	return result, nil
}

func (t *NotifyingTask) notification(args domain.Args, phase domain.Phase) domain.Notification {
	n := t.template
	n.Phase = phase
	n.ActionName = t.action.Name
	n.Args = args
	return n
}

func (t *NotifyingTask) transition(from, to TaskState) TaskState {
	t.log.Debug("Task state changed", "task", t.action.Name, "from", from, "to", to)
	return to
}

package runtime

import (
	"chat-gate/contract"
	"chat-gate/domain"
	"chat-gate/errors"
	"context"
	"fmt"
	"log/slog"
)

var _ contract.Executor = (*DirectExecutor)(nil)

// DirectExecutor runs actions in the calling goroutine.
// A panicking action is turned into an error so the failure notification still goes out.
type DirectExecutor struct {
	log *slog.Logger
}

func NewDirectExecutor(log *slog.Logger) *DirectExecutor {
	return &DirectExecutor{log: log}
}

func (e *DirectExecutor) Execute(ctx context.Context, action domain.Action, args domain.Args) (result any, err error) {
	if action.Run == nil {
		return nil, fmt.Errorf("action %q has nothing to run", action.Name)
	}
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Action panicked", "action", action.Name, "panic", r)
			result, err = nil, fmt.Errorf("%w: %s: %v", errors.ErrActionPanic, action.Name, r)
		}
	}()
	e.log.Debug("Executing action", "action", action.Name)
	return action.Run(ctx, args)
}

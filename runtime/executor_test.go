package runtime

import (
	"chat-gate/domain"
	"chat-gate/errors"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectExecutor_Execute(t *testing.T) {
	executor := NewDirectExecutor(slog.Default())

	t.Run("should return the action result", func(t *testing.T) {
		req := require.New(t)
		action := domain.Action{Name: "echo", Run: func(_ context.Context, args domain.Args) (any, error) {
			return args.Positional[0], nil
		}}

		result, err := executor.Execute(context.Background(), action, domain.Args{Positional: []any{"hello"}})
		req.NoError(err)
		req.Equal("hello", result)
	})

	t.Run("should turn a panic into an error", func(t *testing.T) {
		req := require.New(t)
		action := domain.Action{Name: "boom", Run: func(context.Context, domain.Args) (any, error) {
			panic("nil host list")
		}}

		result, err := executor.Execute(context.Background(), action, domain.Args{})
		req.ErrorIs(err, errors.ErrActionPanic)
		req.Contains(err.Error(), "nil host list")
		req.Nil(result)
	})

	t.Run("should refuse an action without body", func(t *testing.T) {
		_, err := executor.Execute(context.Background(), domain.Action{Name: "empty"}, domain.Args{})
		require.Error(t, err)
	})
}

package domain

import (
	"chat-gate/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgs_WithoutRouting(t *testing.T) {
	req := require.New(t)
	args := Args{
		Positional: []any{"production"},
		Keyword:    map[string]any{"hosts": []string{"web1"}, "roles": "web", "exclude_hosts": "web2", "branch": "main"},
	}

	cleaned := args.WithoutRouting()

	req.Equal(map[string]any{"branch": "main"}, cleaned.Keyword)
	req.Equal(args.Positional, cleaned.Positional)
	req.Len(args.Keyword, 4)
}

func TestFixedArity(t *testing.T) {
	req := require.New(t)
	describe := FixedArity(1, func(positional ...any) string {
		return positional[0].(string)
	})

	thing, err := describe(Args{Positional: []any{"api"}})
	req.NoError(err)
	req.Equal("api", thing)

	_, err = describe(Args{})
	req.ErrorIs(err, errors.ErrArgumentMismatch)
}

func TestSendReport_Failed(t *testing.T) {
	req := require.New(t)

	req.False(SendReport{Deliveries: []Delivery{{Status: AckSent}}}.Failed())
	req.True(SendReport{Deliveries: []Delivery{{Status: AckSent}, {Err: errors.ErrRemote}}}.Failed())
	req.True(SendReport{Err: errors.ErrNoMessage}.Failed())
}

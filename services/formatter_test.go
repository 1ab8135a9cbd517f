package services

import (
	"bytes"
	"chat-gate/domain"
	"chat-gate/errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestFormatter(user string) (Formatter, *bytes.Buffer) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	return NewFormatter(domain.RunnerEnv{User: user}, log), &logs
}

func TestFormatter_Body(t *testing.T) {
	formatter, _ := newTestFormatter("alice")

	tests := []struct {
		name         string
		notification domain.Notification
		want         string
	}{
		{
			name:         "explicit message wins",
			notification: domain.Notification{Message: "Hello room", ActionName: "deploy"},
			want:         "Hello room",
		},
		{
			name:         "action name with default verb",
			notification: domain.Notification{ActionName: "deploy_api"},
			want:         "Deployed 'deploy_api'.",
		},
		{
			name:         "start verb",
			notification: domain.Notification{ActionName: "deploy_api", Verb: domain.StartVerb},
			want:         "Started 'deploy_api'.",
		},
		{
			name:         "failure prefix",
			notification: domain.Notification{ActionName: "deploy_api", Failure: true},
			want:         "Failed to deploy 'deploy_api'.",
		},
		{
			name:         "literal subject",
			notification: domain.Notification{Subject: domain.Subject{Literal: "the api"}, Verb: "ROLLBACK"},
			want:         "Rollbacked the api.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := formatter.Body(tt.notification)
			require.NoError(t, err)
			require.Equal(t, tt.want, body)
		})
	}
}

func TestFormatter_Body_Describer(t *testing.T) {
	t.Run("should describe from the action arguments without routing keys", func(t *testing.T) {
		req := require.New(t)
		formatter, _ := newTestFormatter("alice")
		keyword := map[string]any{"hosts": "web1", "roles": "web", "exclude_hosts": "web2", "branch": "main"}
		n := domain.Notification{
			Subject: domain.Subject{Describer: func(args domain.Args) (string, error) {
				req.NotContains(args.Keyword, "hosts")
				req.NotContains(args.Keyword, "roles")
				req.NotContains(args.Keyword, "exclude_hosts")
				return fmt.Sprintf("%v to %v", args.Keyword["branch"], args.Positional[0]), nil
			}},
			Args: domain.Args{Positional: []any{"production"}, Keyword: keyword},
		}

		body, err := formatter.Body(n)
		req.NoError(err)
		req.Equal("Deployed main to production.", body)
		req.Contains(keyword, "hosts")
	})

	t.Run("should degrade to unknown on arity mismatch", func(t *testing.T) {
		req := require.New(t)
		formatter, logs := newTestFormatter("alice")
		n := domain.Notification{
			Subject: domain.Subject{Describer: domain.FixedArity(2, func(positional ...any) string {
				return fmt.Sprint(positional...)
			})},
			Args: domain.Args{Positional: []any{"only-one"}},
		}

		body, err := formatter.Body(n)
		req.NoError(err)
		req.Equal("Deployed <unknown>.", body)
		req.Contains(logs.String(), "mismatching arguments")
	})

	t.Run("should fail without message, subject or action", func(t *testing.T) {
		formatter, _ := newTestFormatter("alice")

		_, err := formatter.Body(domain.Notification{})
		require.ErrorIs(t, err, errors.ErrNoMessage)
	})
}

func TestFormatter_Sender(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		label     string
		want      string
		fallbacks int
	}{
		{name: "fits", user: "alice", label: "", want: "Fabric [alice]", fallbacks: 0},
		{name: "abbreviates default label", user: "bobbyjo", label: "Fabric", want: "Fab [bobbyjo]", fallbacks: 1},
		{name: "drops the user", user: "averyverylongusername", label: "Fabric", want: "Fabric", fallbacks: 2},
		{name: "custom label alone", user: "averyverylongusername", label: "Deployer", want: "Deployer", fallbacks: 1},
		{name: "user alone", user: "ops", label: "AVeryLongDeployBot", want: "[ops]", fallbacks: 2},
		{name: "default when nothing fits", user: "averyverylongusername", label: "AVeryLongDeployBot", want: "Fabric", fallbacks: 3},
		{name: "no user", user: "", label: "Release", want: "Release", fallbacks: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			formatter, logs := newTestFormatter(tt.user)

			sender := formatter.Sender(tt.label)
			req.Equal(tt.want, sender)
			req.LessOrEqual(len([]rune(sender)), senderBudget)
			req.Equal(tt.fallbacks, strings.Count(logs.String(), "level=WARN"))
		})
	}
}

func TestFormatter_Color(t *testing.T) {
	req := require.New(t)
	formatter, _ := newTestFormatter("alice")

	req.Equal(domain.ColorRed, formatter.Color(domain.Notification{Color: domain.ColorGreen, Failure: true}))
	req.Equal(domain.ColorPurple, formatter.Color(domain.Notification{Color: domain.ColorPurple}))
	req.Equal(domain.ColorGreen, formatter.Color(domain.Notification{}))
}

func TestFormatter_Rooms(t *testing.T) {
	req := require.New(t)
	formatter, _ := newTestFormatter("alice")

	req.Equal([]domain.RoomID{domain.DefaultRoom}, formatter.Rooms(domain.Notification{}))
	req.Equal(
		[]domain.RoomID{"ops", "deployments", "eng"},
		formatter.Rooms(domain.Notification{Room: "ops", Rooms: []domain.RoomID{"deployments", "ops", "", "eng"}}),
	)
}

func TestFormatter_Messages(t *testing.T) {
	req := require.New(t)
	formatter, _ := newTestFormatter("alice")

	messages, err := formatter.Messages(domain.Notification{
		ActionName: "deploy_api",
		Room:       "ops",
		Rooms:      []domain.RoomID{"deployments"},
		Color:      domain.ColorYellow,
		Failure:    true,
		Notify:     true,
	})
	req.NoError(err)
	req.Len(messages, 2)
	for _, msg := range messages {
		req.Equal("Failed to deploy 'deploy_api'.", msg.Body)
		req.Equal("Fabric [alice]", msg.Sender)
		req.Equal(domain.ColorRed, msg.Color)
		req.Equal(domain.FormatText, msg.Format)
		req.True(msg.Notify)
	}
}

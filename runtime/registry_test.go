package runtime

import (
	"chat-gate/domain"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskRegistry(t *testing.T) {
	req := require.New(t)
	registry := NewTaskRegistry()
	deps := Dependencies{Executor: NewDirectExecutor(slog.Default()), Log: slog.Default()}

	// Given two tasks composed from different variants
	notify, err := Compose(VariantNotifying, deployAction, deps, TaskOptions{})
	req.NoError(err)
	gated, err := Compose(VariantGated, domain.Action{Name: "check_then_deploy"}, deps,
		TaskOptions{People: []string{"alice"}})
	req.NoError(err)

	// When they are registered
	req.NoError(registry.Register(notify))
	req.NoError(registry.Register(gated))

	// Then they can be found by name
	found, ok := registry.Get("deploy_api")
	req.True(ok)
	req.Same(notify, found)
	req.Equal([]string{"check_then_deploy", "deploy_api"}, registry.Names())

	// And a duplicate name is refused
	req.Error(registry.Register(notify))

	_, ok = registry.Get("missing")
	req.False(ok)
}

func TestCompose(t *testing.T) {
	req := require.New(t)
	deps := Dependencies{Log: slog.Default()}

	task, err := Compose(VariantGated, deployAction, deps, TaskOptions{People: []string{"alice"}})
	req.NoError(err)
	gated, ok := task.(*GatedTask)
	req.True(ok)
	req.Equal(domain.DefaultRoom, gated.room)
	req.Equal("fabfile", gated.Module())

	_, err = Compose("unknown", deployAction, deps, TaskOptions{})
	req.Error(err)
}

package auth

import (
	"chat-gate/errors"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCachedProvider_Resolves_Once_Under_Concurrency(t *testing.T) {
	req := require.New(t)
	var calls atomic.Int32
	provider := NewCachedProvider(func(context.Context) (string, error) {
		calls.Add(1)
		return "secret-token", nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := provider.Token(context.Background())
			req.NoError(err)
			req.Equal("secret-token", token)
		}()
	}
	wg.Wait()

	req.Equal(int32(1), calls.Load())
}

func TestCachedProvider_Empty_Token_Is_Missing_Credential(t *testing.T) {
	req := require.New(t)
	provider := NewCachedProvider(func(context.Context) (string, error) {
		return "   ", nil
	})

	_, err := provider.Token(context.Background())
	req.ErrorIs(err, errors.ErrMissingCredential)
}

func TestCachedProvider_Source_Failure_Is_Missing_Credential(t *testing.T) {
	req := require.New(t)
	provider := NewCachedProvider(Chain(StaticSource("")))

	_, err := provider.Token(context.Background())
	req.ErrorIs(err, errors.ErrMissingCredential)
}

func TestFileSource(t *testing.T) {
	log := slog.Default()

	t.Run("should read the token field", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), ".hipfab.json")
		req.NoError(os.WriteFile(path, []byte(`{"TOKEN": "abc123"}`), 0o600))

		token, err := FileSource(path, log)(context.Background())
		req.NoError(err)
		req.Equal("abc123", token)
	})

	t.Run("should report no token when the file is missing", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "missing.json")

		_, err := FileSource(path, log)(context.Background())
		req.ErrorIs(err, ErrNoToken)
	})

	t.Run("should reject a document without token", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), ".hipfab.json")
		req.NoError(os.WriteFile(path, []byte(`{"OTHER": "x"}`), 0o600))

		_, err := FileSource(path, log)(context.Background())
		req.Error(err)
		req.NotErrorIs(err, ErrNoToken)
	})
}

func TestChain_Falls_Back_To_Next_Source(t *testing.T) {
	req := require.New(t)
	missing := filepath.Join(t.TempDir(), "missing.json")
	source := Chain(
		StaticSource(""),
		FileSource(missing, slog.Default()),
		StaticSource("from-prompt"),
	)

	token, err := source(context.Background())
	req.NoError(err)
	req.Equal("from-prompt", token)
}

func TestReadLine(t *testing.T) {
	req := require.New(t)

	token, err := readLine(strings.NewReader("  typed-token \n"))
	req.NoError(err)
	req.Equal("typed-token", token)

	_, err = readLine(strings.NewReader("\n"))
	req.ErrorIs(err, ErrNoToken)
}

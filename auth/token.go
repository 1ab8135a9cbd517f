package auth

import (
	"chat-gate/errors"
	"context"
	errs "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// CredentialProvider hands out the bearer token used against the chat endpoint.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// Source resolves a token once. ErrNoToken tells a Chain to try the next source.
type Source func(ctx context.Context) (string, error)

var ErrNoToken = fmt.Errorf("no token in source")

// CachedProvider memoizes the first resolution of its Source for the process lifetime.
// Concurrent first calls resolve only once.
type CachedProvider struct {
	source Source
	once   sync.Once
	token  string
	err    error
}

func NewCachedProvider(source Source) *CachedProvider {
	return &CachedProvider{source: source}
}

func (p *CachedProvider) Token(ctx context.Context) (string, error) {
	p.once.Do(func() {
		token, err := p.source(ctx)
		if err != nil {
			p.err = fmt.Errorf("%w: %v", errors.ErrMissingCredential, err)
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			p.err = errors.ErrMissingCredential
			return
		}
		p.token = token
	})
	return p.token, p.err
}

// StaticSource always returns token. An empty token yields ErrNoToken.
func StaticSource(token string) Source {
	return func(context.Context) (string, error) {
		if token == "" {
			return "", ErrNoToken
		}
		return token, nil
	}
}

// FileSource reads the JSON credential file at path.
// A missing file yields ErrNoToken so the chain can fall back to a prompt.
func FileSource(path string, log *slog.Logger) Source {
	return func(context.Context) (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			if errs.Is(err, os.ErrNotExist) {
				log.Warn("Couldn't find hipgate config file", "path", path)
				return "", ErrNoToken
			}
			return "", err
		}
		file, err := ParseCredentialFile(data)
		if err != nil {
			return "", fmt.Errorf("invalid credential file %s: %w", path, err)
		}
		return file.Token, nil
	}
}

// Chain tries each source in order and stops on the first token or real error.
func Chain(sources ...Source) Source {
	return func(ctx context.Context) (string, error) {
		for _, source := range sources {
			token, err := source(ctx)
			if errs.Is(err, ErrNoToken) {
				continue
			}
			return token, err
		}
		return "", ErrNoToken
	}
}

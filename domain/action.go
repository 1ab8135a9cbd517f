package domain

import (
	"context"
	"maps"
)

// Args are the positional and keyword arguments an action was invoked with.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// RoutingKeys are runner routing concerns, never message content.
var RoutingKeys = []string{"hosts", "roles", "exclude_hosts"}

// WithoutRouting returns a copy of the args without runner routing keys.
// The receiver is left untouched.
func (a Args) WithoutRouting() Args {
	keyword := maps.Clone(a.Keyword)
	for _, key := range RoutingKeys {
		delete(keyword, key)
	}
	return Args{Positional: a.Positional, Keyword: keyword}
}

type RunFunc func(ctx context.Context, args Args) (any, error)

// Action is a unit of work the runner can execute.
// Name, Doc and Module are kept so wrapped tasks can be introspected like the original.
type Action struct {
	Name   string
	Doc    string
	Module string
	Run    RunFunc
}

// RunnerEnv is the ambient context supplied by the task runner.
type RunnerEnv struct {
	User  string
	Debug bool
}

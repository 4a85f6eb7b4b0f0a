package kestrel

import (
	"context"
	"sort"
)

type Key string

const (
	// renderPropsKey stashes additional props to be merged into rendered contexts.
	renderPropsKey Key = "RenderPropsKey"

	// FormatKey stashes the Format an HTTP request asked for.
	FormatKey Key = "FormatKey"

	// IpAddrKey stashes the IP address of an HTTP request being handled by kestrel.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// ResponderKey stashes the resp.Responder handlers respond with.
	ResponderKey Key = "ResponderKey"

	// SessionKey stashes the session associated with an HTTP request.
	SessionKey Key = "SessionKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "kestrel context key: " + string(k)
}

// Key returns the bare value of k, without the decoration String adds.
func (k Key) Key() string { return string(k) }

// A ByKey is a sortable collection of Key.
type ByKey []Key

// UniqueSort sorts the set of Key and removes duplicates and zero-values from it.
func (keys ByKey) UniqueSort() ByKey {
	uniqued := make(ByKey, 0, len(keys))
	seen := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		uniqued = append(uniqued, k)
	}

	sort.Slice(uniqued, func(i, j int) bool { return uniqued[i] < uniqued[j] })
	return uniqued
}

// RenderProps passes data from middlewares and handlers into template rendering
// as a set of props needed for general page state.
// The data is carried in a context.Context and merged into every rendered context.
//
// NB: Props destined for the "json" dispatch format must be representable by
// JSON; review [encoding/json.Marshaler].
type RenderProps map[string]any

// NewRenderPropsContext adds props to ctx, returning the resulting context.
// If props have already been added to ctx, its key-value pairs are added to existing ones.
// If any keys collide, those in props overwrite previous values.
func NewRenderPropsContext(ctx context.Context, props RenderProps) context.Context {
	existing := RenderPropsFromContext(ctx)
	for k, v := range props {
		existing[k] = v
	}

	return context.WithValue(ctx, renderPropsKey, existing)
}

// RenderPropsFromContext retrieves the RenderProps in ctx.
// If not already set, it initializes a new RenderProps.
func RenderPropsFromContext(ctx context.Context) RenderProps {
	props, ok := ctx.Value(renderPropsKey).(RenderProps)
	if !ok {
		props = make(RenderProps)
	}

	return props
}

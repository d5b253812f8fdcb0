package core

import "context"

// PropertyKeyLastProvider remembers the provider of the last successful
// connect across restarts.
const PropertyKeyLastProvider = "last_provider"

type PropertyStore interface {
	Get(ctx context.Context, key string, value any) error
	Set(ctx context.Context, key string, value any) error
}

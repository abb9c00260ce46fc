package editor

import (
	"context"

	"github.com/goliatone/go-intake/pkg/schema"
)

// Store is the persistence collaborator. It receives forms that already
// passed validation and returns the durably stored snapshot, which may carry
// server-assigned metadata. The editor makes a single best-effort call per
// save; retry policy, timeouts and cancellation belong to the implementation.
type Store interface {
	Save(ctx context.Context, form schema.Form) (schema.Form, error)
}

// StoreFunc adapts a function into a Store.
type StoreFunc func(ctx context.Context, form schema.Form) (schema.Form, error)

// Save delegates to the underlying function.
func (fn StoreFunc) Save(ctx context.Context, form schema.Form) (schema.Form, error) {
	return fn(ctx, form)
}

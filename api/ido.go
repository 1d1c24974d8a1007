package api

import "context"

// IDO groups the /ido endpoints.
type IDO struct {
	exec *executor
}

// NewIDO creates an IDO façade with its own executor.
func NewIDO(opts ...Option) *IDO {
	return &IDO{exec: newExecutor(opts...)}
}

// GetPoolKeys fetches IDO pool keys by IDO ID.
func (i *IDO) GetPoolKeys(ctx context.Context, ids []string) []any {
	return call(ctx, i.exec, idoKeysByIDs, ids)
}

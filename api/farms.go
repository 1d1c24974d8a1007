package api

import "context"

// Farms groups the /farms endpoints.
type Farms struct {
	exec *executor
}

// NewFarms creates a Farms façade with its own executor.
func NewFarms(opts ...Option) *Farms {
	return &Farms{exec: newExecutor(opts...)}
}

// GetInfoByIDs fetches farm pool details by farm ID.
func (f *Farms) GetInfoByIDs(ctx context.Context, ids []string) []any {
	return call(ctx, f.exec, farmInfoByIDs, ids)
}

// GetInfoByLPs fetches farm pool details by LP mint address.
func (f *Farms) GetInfoByLPs(ctx context.Context, lpMints []string) []any {
	return call(ctx, f.exec, farmInfoByLPs, lpMints)
}

// GetKeysByIDs fetches farm account keys.
func (f *Farms) GetKeysByIDs(ctx context.Context, ids []string) []any {
	return call(ctx, f.exec, farmKeysByIDs, ids)
}

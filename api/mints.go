package api

import "context"

// Mints groups the /mint endpoints.
type Mints struct {
	exec *executor
}

// NewMints creates a Mints façade with its own executor.
func NewMints(opts ...Option) *Mints {
	return &Mints{exec: newExecutor(opts...)}
}

// GetList fetches the default mint list.
func (m *Mints) GetList(ctx context.Context) []any {
	return call(ctx, m.exec, mintList, nil)
}

// GetInfo fetches details for specific mints.
func (m *Mints) GetInfo(ctx context.Context, mints []string) []any {
	return call(ctx, m.exec, mintInfo, mints)
}

// GetPrice fetches current prices keyed by mint address. The prices are
// read from the "data" field of the response.
func (m *Mints) GetPrice(ctx context.Context, mints []string) map[string]any {
	return call(ctx, m.exec, mintPrice, mints)
}

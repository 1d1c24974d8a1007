package api

import "context"

// Pools groups the /pools endpoints.
type Pools struct {
	exec *executor
}

// NewPools creates a Pools façade with its own executor.
func NewPools(opts ...Option) *Pools {
	return &Pools{exec: newExecutor(opts...)}
}

// GetInfoByIDs fetches pool details for the given pool IDs.
func (p *Pools) GetInfoByIDs(ctx context.Context, ids []string) []any {
	return call(ctx, p.exec, poolInfoByIDs, ids)
}

// GetInfoByLPs fetches pool details by LP mint address.
func (p *Pools) GetInfoByLPs(ctx context.Context, lpMints []string) []any {
	return call(ctx, p.exec, poolInfoByLPs, lpMints)
}

// GetAll fetches every pool listed on the platform.
func (p *Pools) GetAll(ctx context.Context) []any {
	return call(ctx, p.exec, poolList, nil)
}

// GetInfoByTokenMints fetches pools trading the given token mints.
func (p *Pools) GetInfoByTokenMints(ctx context.Context, tokenMints []string) []any {
	return call(ctx, p.exec, poolInfoByMint, tokenMints)
}

// GetKeysByIDs fetches pool account keys.
func (p *Pools) GetKeysByIDs(ctx context.Context, ids []string) []any {
	return call(ctx, p.exec, poolKeysByIDs, ids)
}

// GetLiquidityHistory fetches the liquidity line for the given pools.
func (p *Pools) GetLiquidityHistory(ctx context.Context, ids []string) []any {
	return call(ctx, p.exec, poolLiquidityLine, ids)
}

// GetPositionHistory fetches the position line for the given pools.
func (p *Pools) GetPositionHistory(ctx context.Context, ids []string) []any {
	return call(ctx, p.exec, poolPositionLine, ids)
}

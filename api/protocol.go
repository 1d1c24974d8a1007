package api

import "context"

// Main groups the /main endpoints: protocol version, RPCs, chain time,
// TVL and volume, and the AMM configurations.
type Main struct {
	exec *executor
}

// NewMain creates a Main façade with its own executor.
func NewMain(opts ...Option) *Main {
	return &Main{exec: newExecutor(opts...)}
}

// GetVersion returns the UI version, or Unknown.
func (m *Main) GetVersion(ctx context.Context) string {
	return call(ctx, m.exec, mainVersion, nil)
}

// GetRPCs returns the RPC endpoints advertised by the UI.
func (m *Main) GetRPCs(ctx context.Context) []any {
	return call(ctx, m.exec, mainRPCs, nil)
}

// GetChainTime returns the chain time, or Unknown.
func (m *Main) GetChainTime(ctx context.Context) string {
	return call(ctx, m.exec, mainChainTime, nil)
}

// GetInfo returns TVL and 24h volume. The whole response body is read
// rather than a single field.
func (m *Main) GetInfo(ctx context.Context) ProtocolInfo {
	return call(ctx, m.exec, mainInfo, nil)
}

// GetStakePools returns the RAY stake pools.
func (m *Main) GetStakePools(ctx context.Context) []any {
	return call(ctx, m.exec, mainStakePools, nil)
}

// GetMigrateLP returns the LP pools available for migration.
func (m *Main) GetMigrateLP(ctx context.Context) []any {
	return call(ctx, m.exec, mainMigrateLP, nil)
}

// GetAutoFee returns the transaction auto-fee configuration.
func (m *Main) GetAutoFee(ctx context.Context) []any {
	return call(ctx, m.exec, mainAutoFee, nil)
}

// GetClmmConfig returns the concentrated-liquidity AMM configuration.
func (m *Main) GetClmmConfig(ctx context.Context) map[string]any {
	return call(ctx, m.exec, mainClmmConfig, nil)
}

// GetCpmmConfig returns the constant-product AMM configuration.
func (m *Main) GetCpmmConfig(ctx context.Context) map[string]any {
	return call(ctx, m.exec, mainCpmmConfig, nil)
}

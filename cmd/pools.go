package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/raydium-go/api"
)

var poolsCmd = &cobra.Command{
	Use:   "pools",
	Short: "Query liquidity pools",
	Long: `Query Raydium liquidity pools by pool ID, LP mint or token mint, and
read their keys and history lines.

Examples:
  raydium pools list
  raydium pools ids 58oQChx4yWmvKdwLLZzBi4ChoCc2fqCUWBkwMihLYQo2
  raydium pools mint So11111111111111111111111111111111111111112 -o json`,
}

func init() {
	poolsCmd.AddCommand(
		idsCommand("ids", "Pool info by pool IDs", "",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Pools.GetInfoByIDs(ctx, ids) }),
		idsCommand("lps", "Pool info by LP mints", "",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Pools.GetInfoByLPs(ctx, ids) }),
		listCommand("list", "Info for every pool",
			func(ctx context.Context, c *api.Client) any { return c.Pools.GetAll(ctx) }),
		idsCommand("mint", "Pools trading the given token mints", "",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Pools.GetInfoByTokenMints(ctx, ids) }),
		idsCommand("keys", "Pool keys by pool IDs", "",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Pools.GetKeysByIDs(ctx, ids) }),
		idsCommand("liquidity", "Liquidity history by pool IDs", "",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Pools.GetLiquidityHistory(ctx, ids) }),
		idsCommand("positions", "Position history by pool IDs", "",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Pools.GetPositionHistory(ctx, ids) }),
	)
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/raydium-go/api"
)

var farmsCmd = &cobra.Command{
	Use:   "farms",
	Short: "Query farm pools",
}

func init() {
	farmsCmd.AddCommand(
		idsCommand("ids", "Farm info by farm IDs", "  raydium farms ids <farm-id>",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Farms.GetInfoByIDs(ctx, ids) }),
		idsCommand("lp", "Farm info by LP mints", "  raydium farms lp <lp-mint>",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Farms.GetInfoByLPs(ctx, ids) }),
		idsCommand("keys", "Farm keys by farm IDs", "",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Farms.GetKeysByIDs(ctx, ids) }),
	)
}

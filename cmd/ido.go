package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/raydium-go/api"
)

var idoCmd = &cobra.Command{
	Use:   "ido",
	Short: "Query IDO launch pools",
}

func init() {
	idoCmd.AddCommand(
		idsCommand("keys", "IDO pool keys by IDO IDs", "  raydium ido keys <ido-id>",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.IDO.GetPoolKeys(ctx, ids) }),
	)
}

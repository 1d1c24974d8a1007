package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/raydium-go/api"
	"github.com/chinmay1088/raydium-go/output"
)

var mainCmd = &cobra.Command{
	Use:   "main",
	Short: "Protocol-wide data: version, RPCs, TVL, configs",
	Long: `Read protocol-wide data from the /main endpoints.

Examples:
  raydium main version
  raydium main info
  raydium main clmm-config -o yaml`,
}

var mainInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Total value locked and 24h volume",
	Args:  cobra.NoArgs,
	RunE:  runMainInfo,
}

func init() {
	mainCmd.AddCommand(
		listCommand("version", "UI version",
			func(ctx context.Context, c *api.Client) any { return c.Main.GetVersion(ctx) }),
		listCommand("rpcs", "RPC endpoints used by the UI",
			func(ctx context.Context, c *api.Client) any { return c.Main.GetRPCs(ctx) }),
		listCommand("chain-time", "Current chain time",
			func(ctx context.Context, c *api.Client) any { return c.Main.GetChainTime(ctx) }),
		mainInfoCmd,
		listCommand("stake-pools", "RAY stake pools",
			func(ctx context.Context, c *api.Client) any { return c.Main.GetStakePools(ctx) }),
		listCommand("migrate-lp", "LP pools available for migration",
			func(ctx context.Context, c *api.Client) any { return c.Main.GetMigrateLP(ctx) }),
		listCommand("auto-fee", "Transaction auto-fee configuration",
			func(ctx context.Context, c *api.Client) any { return c.Main.GetAutoFee(ctx) }),
		listCommand("clmm-config", "Concentrated-liquidity AMM configuration",
			func(ctx context.Context, c *api.Client) any { return c.Main.GetClmmConfig(ctx) }),
		listCommand("cpmm-config", "Constant-product AMM configuration",
			func(ctx context.Context, c *api.Client) any { return c.Main.GetCpmmConfig(ctx) }),
	)
}

func runMainInfo(cmd *cobra.Command, _ []string) error {
	info := newClient().Main.GetInfo(cmd.Context())

	if outputFormat() != output.FormatTable {
		return render(cmd, info)
	}
	return render(cmd, infoTable(info))
}

func infoTable(info api.ProtocolInfo) output.Data {
	return output.Data{
		Headers: []string{"metric", "value (USD)"},
		Rows: [][]string{
			{"TVL", "$" + info.TVL.StringFixed(2)},
			{"24h volume", "$" + info.Volume24h.StringFixed(2)},
		},
	}
}

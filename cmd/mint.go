package cmd

import (
	"context"
	"sort"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/raydium-go/api"
	"github.com/chinmay1088/raydium-go/output"
)

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Query token mints and prices",
	Long: `Query the default mint list, mint details and current prices.

Examples:
  raydium mint list
  raydium mint info 4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R
  raydium mint price So11111111111111111111111111111111111111112`,
}

var mintPriceCmd = &cobra.Command{
	Use:   "price <mint>[,<mint>...]",
	Short: "Current prices by mint",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMintPrice,
}

func init() {
	mintCmd.AddCommand(
		listCommand("list", "Default mint list",
			func(ctx context.Context, c *api.Client) any { return c.Mints.GetList(ctx) }),
		idsCommand("info", "Mint details by mint address", "",
			func(ctx context.Context, c *api.Client, ids []string) any { return c.Mints.GetInfo(ctx, ids) }),
		mintPriceCmd,
	)
}

func runMintPrice(cmd *cobra.Command, args []string) error {
	mints, err := parseIDs(args)
	if err != nil {
		return err
	}

	prices := newClient().Mints.GetPrice(cmd.Context(), mints)
	if outputFormat() != output.FormatTable {
		return render(cmd, prices)
	}
	return render(cmd, priceTable(prices))
}

// priceTable renders prices with decimal formatting. Values that are not
// numbers are shown as returned.
func priceTable(prices map[string]any) output.Data {
	mints := make([]string, 0, len(prices))
	for mint := range prices {
		mints = append(mints, mint)
	}
	sort.Strings(mints)

	data := output.Data{Headers: []string{"mint", "price (USD)"}}
	for _, mint := range mints {
		raw := output.Cell(prices[mint])
		cell := raw
		if d, err := decimal.NewFromString(raw); err == nil {
			cell = color.GreenString("$%s", d.String())
		}
		data.Rows = append(data.Rows, []string{mint, cell})
	}
	if len(data.Rows) == 0 {
		data.Rows = [][]string{{"(none)", ""}}
	}
	return data
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chinmay1088/raydium-go/api"
	"github.com/chinmay1088/raydium-go/config"
)

var networkCmd = &cobra.Command{
	Use:   "network [mainnet|devnet]",
	Short: "Show or change network",
	Long: `Show the current network or switch between mainnet and devnet.

The selection is stored in ~/.raydium/network.txt and used whenever
--network and --base-url are not given.

Examples:
  raydium network            # Show current network
  raydium network mainnet    # Switch to mainnet
  raydium network devnet     # Switch to devnet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return showCurrentNetwork(cmd)
	}

	network := strings.ToLower(strings.TrimSpace(args[0]))
	if err := config.WriteNetwork(network); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🌐 Switched to %s network\n", strings.ToUpper(network))
	fmt.Fprintf(out, "   API: %s\n", api.HostForNetwork(network))
	if settings != nil && settings.BaseURL != "" {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "⚠️  --base-url / RAYDIUM_BASE_URL is set to %s and takes precedence\n", settings.BaseURL)
	}
	return nil
}

func showCurrentNetwork(cmd *cobra.Command) error {
	network := config.ReadNetwork()
	if settings != nil && settings.Network != "" {
		network = settings.Network
	}

	label := cases.Title(language.English).String(network)
	if network == api.NetworkDevnet {
		label = color.YellowString(label)
	} else {
		label = color.GreenString(label)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🌐 Current network: %s\n", label)
	fmt.Fprintf(out, "   API: %s\n", api.HostForNetwork(network))
	if settings != nil && settings.BaseURL != "" {
		fmt.Fprintf(out, "   Override: %s\n", settings.BaseURL)
	}
	return nil
}

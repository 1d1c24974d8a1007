package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/raydium-go/api"
	"github.com/chinmay1088/raydium-go/config"
	"github.com/chinmay1088/raydium-go/output"
)

// newClient builds an API client from the resolved settings.
func newClient() *api.Client {
	if settings == nil {
		settings = &config.Config{Network: api.NetworkMainnet, Timeout: api.DefaultTimeout}
	}
	return api.NewClient(settings.ClientOptions()...)
}

// parseIDs accepts IDs as separate arguments, comma-separated lists, or
// both. Every ID must be a base58 Solana address unless --no-validate is
// set.
func parseIDs(args []string) ([]string, error) {
	var ids []string
	for _, arg := range args {
		for _, id := range strings.Split(arg, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if !noValidate {
				if _, err := solana.PublicKeyFromBase58(id); err != nil {
					return nil, fmt.Errorf("invalid address %q: %w", id, err)
				}
			}
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one ID is required")
	}
	return ids, nil
}

// outputFormat returns the format selected by --output, detected when unset.
func outputFormat() output.Format {
	var format output.Format
	if settings != nil {
		format = output.Format(settings.Output)
	}
	return output.DetectFormat(format)
}

// render writes data in the selected output format.
func render(cmd *cobra.Command, data any) error {
	return output.NewFormatter(outputFormat()).Format(cmd.OutOrStdout(), data)
}

// idsCommand builds a subcommand that takes a list of IDs.
func idsCommand(use, short, example string, fetch func(context.Context, *api.Client, []string) any) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <id>[,<id>...]",
		Short:   short,
		Example: example,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return render(cmd, fetch(cmd.Context(), newClient(), ids))
		},
	}
}

// listCommand builds a subcommand that takes no input.
func listCommand(use, short string, fetch func(context.Context, *api.Client) any) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, fetch(cmd.Context(), newClient()))
		},
	}
}

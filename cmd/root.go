package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/raydium-go/config"
	"github.com/chinmay1088/raydium-go/logging"
	"github.com/chinmay1088/raydium-go/output"
)

var (
	version = "0.3.0"

	configFile string
	verbose    bool
	quiet      bool
	noColor    bool
	noValidate bool

	// settings is resolved in PersistentPreRunE before any command runs.
	settings *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "raydium",
	Short: "Query the Raydium v3 API from the command line",
	Long: `Raydium is a command-line client for the Raydium v3 REST API.
It reads pools, farms, mints, IDO pools and protocol-wide stats.

Requests never fail hard: when the API is unreachable or returns something
unexpected, the error is logged to stderr and an empty result is printed.

Examples:
  raydium main info                        # TVL and 24h volume
  raydium pools ids <pool-id>,<pool-id>    # Pool details
  raydium mint price <mint> -o json        # Prices as JSON
  raydium network devnet                   # Use the devnet API
  raydium export ./snapshot                # Save protocol data to disk`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// Run executes the root command and returns the process exit code.
func Run() int {
	if err := Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %v\n", color.RedString("Error:"), err)
		return 1
	}
	return 0
}

func init() {
	decimal.MarshalJSONWithoutQuotes = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is $HOME/.raydium/config.yaml)")
	flags.String(config.KeyBaseURL, "", "API base URL (overrides --network)")
	flags.String(config.KeyNetwork, "", "network to query: mainnet or devnet")
	flags.Duration(config.KeyTimeout, 0, "HTTP timeout (default 10s)")
	flags.StringP(config.KeyOutput, "o", "", "output format: table, json, yaml")
	flags.String(config.KeyLogLevel, "", "log level: debug, info, warn, error")
	flags.String(config.KeyLogFormat, "", "log format: auto, console, json")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&noValidate, "no-validate", false, "skip Solana address validation of IDs")

	rootCmd.AddCommand(poolsCmd)
	rootCmd.AddCommand(farmsCmd)
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(idoCmd)
	rootCmd.AddCommand(mainCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(endpointsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads settings and configures logging and colors.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if _, err := output.ParseFormat(cfg.Output); err != nil {
		return err
	}
	settings = cfg

	level := cfg.LogLevel
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "warn"
	}
	logging.Configure(logging.Config{Level: level, Format: cfg.LogFormat, Output: os.Stderr})

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	if verbose && cfg.ConfigFile != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", cfg.ConfigFile)
	}
	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Raydium CLI v%s\n", version)
	},
}

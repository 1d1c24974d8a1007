package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/raydium-go/api"
	"github.com/chinmay1088/raydium-go/config"
	"github.com/chinmay1088/raydium-go/output"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export a snapshot of protocol data",
	Long: `Export protocol-wide data and the default mint list to disk.

File formats:
  --json       Export to JSON format (default)
  --yaml       Export to YAML format

Data exported:
  • UI version, chain time, TVL and 24h volume
  • RPC endpoints, stake pools, migrate LP pools and auto-fee settings
  • CLMM and CPMM configuration
  • Default mint list
  • Every pool (with --pools; this is a large download)

Files are written to ~/.raydium/exports unless a directory is given.

Examples:
  raydium export                    # Export to JSON (default)
  raydium export --yaml ./snapshot  # Export to YAML in ./snapshot
  raydium export --json --yaml      # Export to both formats`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportJSON  bool
	exportYAML  bool
	exportPools bool
)

func init() {
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Export to JSON format")
	exportCmd.Flags().BoolVar(&exportYAML, "yaml", false, "Export to YAML format")
	exportCmd.Flags().BoolVar(&exportPools, "pools", false, "Include the full pool list")
}

// Snapshot is the exported document.
type Snapshot struct {
	ExportDate string           `json:"export_date" yaml:"export_date"`
	Network    string           `json:"network" yaml:"network"`
	BaseURL    string           `json:"base_url" yaml:"base_url"`
	Version    string           `json:"version" yaml:"version"`
	ChainTime  string           `json:"chain_time" yaml:"chain_time"`
	Info       api.ProtocolInfo `json:"info" yaml:"info"`
	RPCs       []any            `json:"rpcs" yaml:"rpcs"`
	StakePools []any            `json:"stake_pools" yaml:"stake_pools"`
	MigrateLP  []any            `json:"migrate_lp" yaml:"migrate_lp"`
	AutoFee    []any            `json:"auto_fee" yaml:"auto_fee"`
	ClmmConfig map[string]any   `json:"clmm_config" yaml:"clmm_config"`
	CpmmConfig map[string]any   `json:"cpmm_config" yaml:"cpmm_config"`
	Mints      []any            `json:"mints" yaml:"mints"`
	Pools      []any            `json:"pools,omitempty" yaml:"pools,omitempty"`
}

type exportStep struct {
	name string
	run  func(context.Context, *api.Client, *Snapshot)
}

func exportSteps(withPools bool) []exportStep {
	steps := []exportStep{
		{"version", func(ctx context.Context, c *api.Client, s *Snapshot) { s.Version = c.Main.GetVersion(ctx) }},
		{"chain time", func(ctx context.Context, c *api.Client, s *Snapshot) { s.ChainTime = c.Main.GetChainTime(ctx) }},
		{"protocol info", func(ctx context.Context, c *api.Client, s *Snapshot) { s.Info = c.Main.GetInfo(ctx) }},
		{"RPCs", func(ctx context.Context, c *api.Client, s *Snapshot) { s.RPCs = c.Main.GetRPCs(ctx) }},
		{"stake pools", func(ctx context.Context, c *api.Client, s *Snapshot) { s.StakePools = c.Main.GetStakePools(ctx) }},
		{"migrate LP", func(ctx context.Context, c *api.Client, s *Snapshot) { s.MigrateLP = c.Main.GetMigrateLP(ctx) }},
		{"auto fee", func(ctx context.Context, c *api.Client, s *Snapshot) { s.AutoFee = c.Main.GetAutoFee(ctx) }},
		{"CLMM config", func(ctx context.Context, c *api.Client, s *Snapshot) { s.ClmmConfig = c.Main.GetClmmConfig(ctx) }},
		{"CPMM config", func(ctx context.Context, c *api.Client, s *Snapshot) { s.CpmmConfig = c.Main.GetCpmmConfig(ctx) }},
		{"mint list", func(ctx context.Context, c *api.Client, s *Snapshot) { s.Mints = c.Mints.GetList(ctx) }},
	}
	if withPools {
		steps = append(steps, exportStep{"pools", func(ctx context.Context, c *api.Client, s *Snapshot) { s.Pools = c.Pools.GetAll(ctx) }})
	}
	return steps
}

func runExport(cmd *cobra.Command, args []string) error {
	formats := exportFormats()

	exportDir, err := prepareExportDirectory(args)
	if err != nil {
		return fmt.Errorf("failed to prepare export directory: %w", err)
	}

	client := newClient()
	network := settings.Network
	snapshot := &Snapshot{
		ExportDate: time.Now().Format("2006-01-02 15:04:05"),
		Network:    network,
		BaseURL:    client.BaseURL(),
	}

	steps := exportSteps(exportPools)
	bar := progressbar.NewOptions(len(steps)+len(formats),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/2][reset] Collecting data..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:     "[green]=[reset]",
			SaucerHead: "[green]>[reset]",
			BarStart:   "[",
			BarEnd:     "]",
		}),
	)

	ctx := cmd.Context()
	for _, step := range steps {
		bar.Describe(fmt.Sprintf("[cyan][1/2][reset] Fetching %s...", step.name))
		step.run(ctx, client, snapshot)
		_ = bar.Add(1)
	}

	bar.Describe("[cyan][2/2][reset] Writing export files...")
	files, err := writeExportFiles(snapshot, exportDir, formats, bar)
	if err != nil {
		return fmt.Errorf("failed to write export files: %w", err)
	}
	bar.Describe("[green][✓][reset] Export completed!")
	_ = bar.Finish()
	fmt.Fprintln(cmd.ErrOrStderr())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "📁 Export completed successfully!")
	for _, f := range files {
		fmt.Fprintf(out, "📍 %s\n", f)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "📊 Export Summary:")
	fmt.Fprintf(out, "   Network: %s\n", strings.ToUpper(network))
	fmt.Fprintf(out, "   TVL: $%s\n", snapshot.Info.TVL.StringFixed(2))
	fmt.Fprintf(out, "   Mints: %d\n", len(snapshot.Mints))
	if exportPools {
		fmt.Fprintf(out, "   Pools: %d\n", len(snapshot.Pools))
	}
	return nil
}

func exportFormats() []output.Format {
	var formats []output.Format
	if exportJSON {
		formats = append(formats, output.FormatJSON)
	}
	if exportYAML {
		formats = append(formats, output.FormatYAML)
	}
	if len(formats) == 0 {
		formats = append(formats, output.FormatJSON)
	}
	return formats
}

func prepareExportDirectory(args []string) (string, error) {
	var exportDir string
	if len(args) > 0 {
		exportDir = args[0]
	} else {
		dir, err := config.Dir()
		if err != nil {
			return "", err
		}
		exportDir = filepath.Join(dir, "exports")
	}

	if err := os.MkdirAll(exportDir, 0700); err != nil {
		return "", err
	}
	return exportDir, nil
}

func writeExportFiles(snapshot *Snapshot, exportDir string, formats []output.Format, bar *progressbar.ProgressBar) ([]string, error) {
	timestamp := time.Now().Format("20060102_150405")

	var files []string
	for _, format := range formats {
		filename := filepath.Join(exportDir, fmt.Sprintf("raydium_%s_%s.%s", snapshot.Network, timestamp, format))
		if err := writeSnapshot(filename, snapshot, format); err != nil {
			return files, err
		}
		files = append(files, filename)
		_ = bar.Add(1)
	}
	return files, nil
}

func writeSnapshot(filename string, snapshot *Snapshot, format output.Format) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	data := *snapshot
	if format == output.FormatYAML {
		data = snapshot.plain()
	}
	if err := output.NewFormatter(format).Format(file, data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// plain returns a copy with JSON numbers converted for YAML encoding.
func (s *Snapshot) plain() Snapshot {
	out := *s
	out.RPCs = plainList(s.RPCs)
	out.StakePools = plainList(s.StakePools)
	out.MigrateLP = plainList(s.MigrateLP)
	out.AutoFee = plainList(s.AutoFee)
	out.Mints = plainList(s.Mints)
	out.Pools = plainList(s.Pools)
	out.ClmmConfig, _ = output.Plain(s.ClmmConfig).(map[string]any)
	out.CpmmConfig, _ = output.Plain(s.CpmmConfig).(map[string]any)
	return out
}

func plainList(v []any) []any {
	if v == nil {
		return nil
	}
	return output.Plain(v).([]any)
}

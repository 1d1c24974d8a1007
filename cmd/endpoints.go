package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chinmay1088/raydium-go/api"
	"github.com/chinmay1088/raydium-go/output"
)

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List the API endpoints this client knows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog := api.Catalog()
		if outputFormat() != output.FormatTable {
			return render(cmd, catalog)
		}
		return render(cmd, catalogTable(catalog))
	},
}

func catalogTable(catalog []api.Descriptor) output.Data {
	data := output.Data{Headers: []string{"path", "param", "key"}}
	for _, d := range catalog {
		key := d.Key
		if key == "" {
			key = "(envelope)"
		}
		data.Rows = append(data.Rows, []string{d.Path, d.Param, key})
	}
	return data
}

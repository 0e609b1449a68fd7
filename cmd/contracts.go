package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nounish/govscope/contracts"
	"github.com/nounish/govscope/ui"
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List the governance contracts govscope knows about",
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		all := contracts.Nouns().All()
		rows := make([][]string, 0, len(all))
		for _, c := range all {
			rows = append(rows, []string{c.Name, c.Address, c.Description})
		}
		u.Table([]string{"Name", "Address", "Description"}, rows)
	},
}

func init() {
	rootCmd.AddCommand(contractsCmd)
}

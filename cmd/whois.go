package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nounish/govscope/contracts"
	"github.com/nounish/govscope/ui"
)

var whoisCmd = &cobra.Command{
	Use:   "whois [name or address]",
	Short: "Look up a known governance contract by name or address",
	Long: `Whois looks a query up in the contract directory. An exact address match
wins; otherwise the query is fuzzy-matched against contract names, and when
that finds nothing a full-text search over names and descriptions runs as a
last resort.

Examples:

	govscope whois treasury
	govscope whois 0xb1a32FC9F9D8b2cf86C068Cae13108809547ef71
	govscope whois "auction reserve"`,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		if len(args) == 0 {
			u.Error("whois needs a name or address to look up")
			return
		}
		query := strings.Join(args, " ")
		dir := contracts.Nouns()

		if c, ok := dir.Lookup(query); ok {
			u.Success("%s is a known governance contract", c.Address)
			u.KeyValue([][2]string{
				{"Name", c.Name},
				{"Address", c.Address},
				{"Description", c.Description},
			})
			return
		}

		results := dir.Search(query)
		if len(results) == 0 {
			// fuzzy matching is literal about name tokens; fall back to
			// full-text search over names and descriptions
			stop := u.Spinner("Building contract index...")
			idx, err := contracts.NewIndex(dir)
			stop()
			if err != nil {
				u.Error("building contract index: %s", err)
				return
			}
			defer idx.Close()
			results, err = idx.Query(query, 10)
			if err != nil {
				u.Error("searching contracts: %s", err)
				return
			}
		}
		if len(results) == 0 {
			u.Warn("No known contract matches %q", query)
			return
		}

		rows := make([][]string, 0, len(results))
		for _, c := range results {
			rows = append(rows, []string{c.Name, c.Address, c.Description})
		}
		u.Table([]string{"Name", "Address", "Description"}, rows)
	},
}

func init() {
	rootCmd.AddCommand(whoisCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nounish/govscope/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "govscope",
	Short: "Explain Nouns DAO governance transactions in plain language",
	Long: `Govscope decodes and classifies Nouns DAO governance transactions so voters
can see what a proposal actually does before voting on it.

Given a target address, a function signature and calldata, govscope:

	1. Decodes the calldata against the signature, falling back to raw
	word slicing when no schema matches, so every input yields a result.

	2. Substitutes friendly names for the governance contracts it knows
	about and flags recipients, operators and admins among the decoded
	parameters.

	3. Classifies the action (payment, stream, upgrade, ...) and rates
	how much review attention it deserves.

Results render for the terminal by default; pass --json for piping into
other tools.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&config.JSONOutput, "json", false, "print results as JSON instead of formatted text")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "verbose output, including raw calldata and debug logs")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

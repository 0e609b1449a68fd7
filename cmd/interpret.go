package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/config"
	"github.com/nounish/govscope/logger"
	"github.com/nounish/govscope/render"
	"github.com/nounish/govscope/txinterpreter"
	"github.com/nounish/govscope/ui"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret",
	Short: "Decode and explain one governance transaction",
	Long: `Interpret decodes a single transaction and prints what it does, who it
pays and how much review attention it deserves.

Examples:

	govscope interpret \
		--target 0xb1a32FC9F9D8b2cf86C068Cae13108809547ef71 \
		--signature "sendETH(address,uint256)" \
		--calldata 0x000...

	govscope interpret --target 0x1234... --value 2.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New(config.Verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer log.Sync()

		if config.Target == "" {
			return fmt.Errorf("--target is required")
		}

		c := txinterpreter.TxContext{
			Target:    config.Target,
			Value:     common.EthToWei(config.Value),
			Signature: config.Signature,
			Calldata:  config.Calldata,
		}
		log.Debug("interpreting transaction",
			zap.String("target", c.Target),
			zap.String("signature", c.Signature),
			zap.Int("calldata_bytes", len(c.Calldata)/2),
		)

		tx := txinterpreter.NewNounsRegistry().Interpret(c)
		display := render.BuildTxDisplay(tx, config.Verbose)

		u := ui.NewTerminalUI()
		if config.JSONOutput {
			return render.PrintJSON(u.Writer(), display)
		}
		render.PrintTxDisplay(u, display)
		return nil
	},
}

func init() {
	interpretCmd.Flags().StringVarP(&config.Target, "target", "t", "", "target contract or recipient address (hex)")
	interpretCmd.Flags().Float64VarP(&config.Value, "value", "a", 0, "attached ETH amount, e.g. 1.5")
	interpretCmd.Flags().StringVarP(&config.Signature, "signature", "s", "", `function signature, e.g. "sendETH(address,uint256)"`)
	interpretCmd.Flags().StringVarP(&config.Calldata, "calldata", "d", "", "hex calldata, with or without the 4-byte selector")
	rootCmd.AddCommand(interpretCmd)
}

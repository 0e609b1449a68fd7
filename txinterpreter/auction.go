package txinterpreter

import (
	"fmt"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
)

// Auction interprets administrative calls on the auction house proxy.
// Pausing is critical: it stops the daily auction, the DAO's only revenue.
type Auction struct {
	base
}

func NewAuction(dir *contracts.Directory) *Auction {
	return &Auction{newBase(dir, contracts.AuctionHouseAddress,
		"Nouns Auction House", "Daily Noun auctions",
		abis.AuctionHouse(), CategoryAuction, map[string]string{
			"pause":                        "Stop the daily auction",
			"unpause":                      "Resume the daily auction",
			"setReservePrice":              "Minimum winning bid",
			"setTimeBuffer":                "Seconds a late bid extends the auction",
			"setMinBidIncrementPercentage": "Minimum percentage a new bid must add",
			"setSanctionsOracle":           "Oracle consulted to block sanctioned bidders",
		})}
}

func (a *Auction) Interpret(c TxContext) *InterpretedTx {
	return a.interpretWith(c, a.dispatch)
}

func (a *Auction) ExtractAddresses(c TxContext) []string {
	return a.Interpret(c).AddressesToResolve
}

func (a *Auction) dispatch(c TxContext, fn *call) *InterpretedTx {
	switch fn.Name {
	case "pause":
		return a.assemble(c, fn, "Pause the auction house", CategoryAuction, SeverityCritical)

	case "unpause":
		return a.assemble(c, fn, "Unpause the auction house", CategoryAuction, SeverityElevated)

	case "setReservePrice":
		price := fn.bigAt(0)
		if len(fn.Params) > 0 {
			fn.Params[0].DisplayValue = common.FormatEth(price)
			fn.Params[0].Format = FormatAmount
			fn.Params[0].Decimals = 18
			fn.Params[0].Symbol = "ETH"
		}
		summary := fmt.Sprintf("Set the auction reserve price to %s", common.FormatEth(price))
		return a.assemble(c, fn, summary, CategoryAuction, SeverityElevated)

	case "setTimeBuffer":
		secs := fn.bigAt(0)
		if len(fn.Params) > 0 {
			fn.Params[0].DisplayValue = secs.String() + " seconds"
			fn.Params[0].Format = FormatDuration
		}
		summary := fmt.Sprintf("Set the auction time buffer to %s seconds", secs.String())
		return a.assemble(c, fn, summary, CategoryAuction, SeverityNormal)

	case "setMinBidIncrementPercentage":
		pct := fn.bigAt(0)
		if len(fn.Params) > 0 {
			fn.Params[0].DisplayValue = pct.String() + "%"
			fn.Params[0].Format = FormatPercentage
		}
		summary := fmt.Sprintf("Set the minimum bid increment to %s%%", pct.String())
		return a.assemble(c, fn, summary, CategoryAuction, SeverityNormal)

	case "setSanctionsOracle":
		summary := fmt.Sprintf("Set the sanctions oracle to %s", a.recipientDisplay(fn, 0))
		return a.assemble(c, fn, summary, CategoryConfiguration, SeverityElevated)
	}
	return nil
}

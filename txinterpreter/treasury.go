package txinterpreter

import (
	"fmt"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
)

// Payments above this are flagged for extra review attention.
var treasuryElevatedEthThreshold = common.EthToWei(10)

// Treasury interprets calls to the DAO's timelocked executor, which holds
// the treasury and is the admin of every other governance contract.
type Treasury struct {
	base
}

func NewTreasury(dir *contracts.Directory) *Treasury {
	return &Treasury{newBase(dir, contracts.TreasuryAddress,
		"Nouns DAO Treasury", "Timelocked executor holding and disbursing the DAO treasury",
		abis.Treasury(), CategoryTreasury, map[string]string{
			"sendETH":          "Send ETH from the treasury",
			"sendERC20":        "Send an ERC20 token from the treasury",
			"setDelay":         "Change the timelock delay before queued transactions execute",
			"setPendingAdmin":  "Nominate a new treasury admin",
			"acceptAdmin":      "Accept the pending treasury admin role",
			"queueTransaction": "Queue a transaction behind the timelock",
			"cancelTransaction": "Cancel a queued transaction",
			"executeTransaction": "Execute a queued transaction after its delay",
			"upgradeTo":        "Replace the treasury implementation contract",
			"upgradeToAndCall": "Replace the treasury implementation and call into it",
		})}
}

func (t *Treasury) Interpret(c TxContext) *InterpretedTx {
	return t.interpretWith(c, t.dispatch)
}

func (t *Treasury) ExtractAddresses(c TxContext) []string {
	return t.Interpret(c).AddressesToResolve
}

func (t *Treasury) dispatch(c TxContext, fn *call) *InterpretedTx {
	switch fn.Name {
	case "sendETH":
		amount := fn.bigAt(1)
		if p := fn.param("ethToSend"); p != nil {
			p.DisplayValue = common.FormatEth(amount)
			p.Format = FormatAmount
			p.Decimals = 18
			p.Symbol = "ETH"
		}
		severity := SeverityNormal
		if amount.Cmp(treasuryElevatedEthThreshold) > 0 {
			severity = SeverityElevated
		}
		summary := fmt.Sprintf("Send %s to %s", common.FormatEth(amount), t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryPayment, severity)

	case "sendERC20":
		token := fn.addressAt(1)
		amount := fn.bigAt(2)
		display := formatKnownAmount(amount, token)
		if p := fn.param("tokensToSend"); p != nil {
			p.DisplayValue = display
			p.Format = FormatAmount
			if info, ok := tokenInfo(token); ok {
				p.Decimals = info.Decimals
				p.Symbol = info.Symbol
			}
		}
		summary := fmt.Sprintf("Send %s to %s", display, t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryPayment, SeverityNormal)

	case "setDelay":
		delay := fn.bigAt(0)
		if p := fn.param("delay_"); p != nil {
			p.DisplayValue = common.FormatSecondsAsHours(delay)
			p.Format = FormatDuration
		}
		summary := fmt.Sprintf("Set the timelock delay to %s", common.FormatSecondsAsHours(delay))
		return t.assemble(c, fn, summary, CategoryConfiguration, SeverityNormal)

	case "setPendingAdmin":
		summary := fmt.Sprintf("Nominate %s as treasury admin", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryOwnership, SeverityCritical)

	case "acceptAdmin":
		return t.assemble(c, fn, "Accept the treasury admin role", CategoryOwnership, SeverityCritical)

	case "queueTransaction", "cancelTransaction", "executeTransaction":
		verbs := map[string]string{
			"queueTransaction":   "Queue",
			"cancelTransaction":  "Cancel",
			"executeTransaction": "Execute",
		}
		summary := fmt.Sprintf("%s a timelocked transaction targeting %s", verbs[fn.Name], t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryTreasury, SeverityNormal)

	case "upgradeTo", "upgradeToAndCall":
		summary := fmt.Sprintf("Upgrade the treasury implementation to %s", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryUpgrade, SeverityCritical)
	}
	return nil
}


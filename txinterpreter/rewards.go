package txinterpreter

import (
	"fmt"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
)

// Rewards interprets calls on the client incentives contract, which pays
// clients that facilitate auctions, proposals, and votes.
type Rewards struct {
	base
}

func NewRewards(dir *contracts.Directory) *Rewards {
	return &Rewards{newBase(dir, contracts.RewardsAddress,
		"Nouns Client Rewards", "Rewards for clients facilitating proposals and votes",
		abis.Rewards(), CategoryRewards, map[string]string{
			"registerClient":    "Register a new client for rewards",
			"setClientApproval": "Approve or revoke a client's reward eligibility",
			"updateRewardsForAuctions": "Distribute auction rewards up to a Noun id",
			"updateRewardsForProposalWritingAndVoting": "Distribute proposal and voting rewards",
			"withdrawClientBalance":                    "Withdraw a client's accrued rewards",
			"pause":                                    "Pause reward distribution",
			"unpause":                                  "Resume reward distribution",
			"upgradeTo":                                "Replace the rewards implementation contract",
			"upgradeToAndCall":                         "Replace the rewards implementation and call into it",
		})}
}

func (r *Rewards) Interpret(c TxContext) *InterpretedTx {
	return r.interpretWith(c, r.dispatch)
}

func (r *Rewards) ExtractAddresses(c TxContext) []string {
	return r.Interpret(c).AddressesToResolve
}

func (r *Rewards) dispatch(c TxContext, fn *call) *InterpretedTx {
	switch fn.Name {
	case "registerClient":
		name := ""
		if len(fn.Values) > 0 {
			name, _ = fn.Values[0].(string)
		}
		summary := "Register a rewards client"
		if name != "" {
			summary = fmt.Sprintf("Register rewards client %q", name)
		}
		return r.assemble(c, fn, summary, CategoryRewards, SeverityNormal)

	case "setClientApproval":
		approved := false
		if len(fn.Values) > 1 {
			approved, _ = fn.Values[1].(bool)
		}
		verb := "Revoke"
		if approved {
			verb = "Approve"
		}
		summary := fmt.Sprintf("%s rewards for client %s", verb, fn.bigAt(0).String())
		return r.assemble(c, fn, summary, CategoryRewards, SeverityNormal)

	case "updateRewardsForAuctions":
		summary := fmt.Sprintf("Distribute auction rewards through Noun %s", fn.bigAt(0).String())
		return r.assemble(c, fn, summary, CategoryRewards, SeverityNormal)

	case "updateRewardsForProposalWritingAndVoting":
		summary := fmt.Sprintf("Distribute proposal rewards through proposal %s", fn.bigAt(0).String())
		return r.assemble(c, fn, summary, CategoryRewards, SeverityNormal)

	case "withdrawClientBalance":
		amount := fn.bigAt(2)
		display := common.FormatTokenAmount(amount, 18, "WETH")
		if p := fn.param("amount"); p != nil {
			p.DisplayValue = display
			p.Format = FormatAmount
			p.Decimals = 18
			p.Symbol = "WETH"
		}
		summary := fmt.Sprintf("Withdraw %s for client %s to %s",
			display, fn.bigAt(0).String(), r.recipientDisplay(fn, 1))
		return r.assemble(c, fn, summary, CategoryRewards, SeverityNormal)

	case "pause":
		return r.assemble(c, fn, "Pause reward distribution", CategoryRewards, SeverityElevated)

	case "unpause":
		return r.assemble(c, fn, "Unpause reward distribution", CategoryRewards, SeverityNormal)

	case "upgradeTo", "upgradeToAndCall":
		summary := fmt.Sprintf("Upgrade the rewards implementation to %s", r.recipientDisplay(fn, 0))
		return r.assemble(c, fn, summary, CategoryUpgrade, SeverityCritical)

	case "transferOwnership":
		summary := fmt.Sprintf("Transfer rewards ownership to %s", r.recipientDisplay(fn, 0))
		return r.assemble(c, fn, summary, CategoryOwnership, SeverityCritical)
	}
	return nil
}

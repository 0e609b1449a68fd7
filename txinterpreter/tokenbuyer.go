package txinterpreter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
)

// buyETH orders above this much USDC are flagged for extra attention.
var buyETHElevatedThreshold = new(big.Int).Mul(big.NewInt(100_000), big.NewInt(1_000_000))

// TokenBuyer interprets calls on the contract that swaps treasury ETH for
// USDC. Amounts here are denominated in the payment token.
type TokenBuyer struct {
	base
}

func NewTokenBuyer(dir *contracts.Directory) *TokenBuyer {
	return &TokenBuyer{newBase(dir, contracts.TokenBuyerAddress,
		"Nouns Token Buyer", "Swaps treasury ETH for the payment token",
		abis.TokenBuyer(), CategoryTreasury, map[string]string{
			"buyETH":      "Sell ETH for the payment token at the oracle price",
			"setPayer":    "Change the payer contract receiving bought tokens",
			"setAdmin":    "Change the token buyer admin",
			"withdrawETH": "Withdraw ETH held by the token buyer",
			"pause":       "Pause token buying",
			"unpause":     "Resume token buying",
		})}
}

func (t *TokenBuyer) Interpret(c TxContext) *InterpretedTx {
	return t.interpretWith(c, t.dispatch)
}

func (t *TokenBuyer) ExtractAddresses(c TxContext) []string {
	return t.Interpret(c).AddressesToResolve
}

func (t *TokenBuyer) dispatch(c TxContext, fn *call) *InterpretedTx {
	switch fn.Name {
	case "buyETH":
		amount := fn.bigAt(0)
		display := common.FormatTokenAmount(amount, 6, "USDC")
		if p := fn.param("tokenAmount"); p != nil {
			p.DisplayValue = display
			p.Format = FormatAmount
			p.Decimals = 6
			p.Symbol = "USDC"
		}
		severity := SeverityNormal
		if amount.Cmp(buyETHElevatedThreshold) > 0 {
			severity = SeverityElevated
		}
		summary := fmt.Sprintf("Buy ETH with %s", display)
		return t.assemble(c, fn, summary, CategoryTreasury, severity)

	case "setPayer":
		summary := fmt.Sprintf("Set the payer contract to %s", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryConfiguration, SeverityElevated)

	case "setAdmin":
		summary := fmt.Sprintf("Set the token buyer admin to %s", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryOwnership, SeverityCritical)

	case "withdrawETH":
		amount := fn.bigAt(1)
		if p := fn.param("amount"); p != nil {
			p.DisplayValue = common.FormatEth(amount)
			p.Format = FormatAmount
			p.Decimals = 18
			p.Symbol = "ETH"
		}
		summary := fmt.Sprintf("Withdraw %s to %s", common.FormatEth(amount), t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryTreasury, SeverityElevated)

	case "pause":
		return t.assemble(c, fn, "Pause the token buyer", CategoryTreasury, SeverityElevated)

	case "unpause":
		return t.assemble(c, fn, "Unpause the token buyer", CategoryTreasury, SeverityNormal)

	case "transferOwnership":
		summary := fmt.Sprintf("Transfer token buyer ownership to %s", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryOwnership, SeverityCritical)
	}

	// The BPs and baseline-amount setters share one shape: a single numeric
	// knob, named well enough to not need a per-function summary.
	if strings.HasPrefix(fn.Name, "set") && len(fn.Params) == 1 {
		if strings.Contains(fn.Name, "BPs") {
			pct := common.FormatBPS(fn.bigAt(0))
			fn.Params[0].DisplayValue = pct
			fn.Params[0].Format = FormatPercentage
			summary := fmt.Sprintf("Set %s to %s", setterLabel(fn.Name), pct)
			return t.assemble(c, fn, summary, CategoryConfiguration, SeverityNormal)
		}
		if strings.Contains(fn.Name, "PaymentTokenAmount") {
			display := common.FormatTokenAmount(fn.bigAt(0), 6, "USDC")
			fn.Params[0].DisplayValue = display
			fn.Params[0].Format = FormatAmount
			fn.Params[0].Decimals = 6
			fn.Params[0].Symbol = "USDC"
			summary := fmt.Sprintf("Set %s to %s", setterLabel(fn.Name), display)
			return t.assemble(c, fn, summary, CategoryConfiguration, SeverityNormal)
		}
	}
	return nil
}

// setterLabel turns "setBotDiscountBPs" into "bot discount BPs" for
// summaries. Capital runs (acronyms) keep their case.
func setterLabel(name string) string {
	name = strings.TrimPrefix(name, "set")
	var b strings.Builder
	for i, r := range name {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
			b.WriteByte(' ')
		}
		nextLower := i+1 < len(name) && name[i+1] >= 'a' && name[i+1] <= 'z'
		if upper && (i == 0 || nextLower) && !(i > 0 && name[i-1] >= 'A' && name[i-1] <= 'Z') {
			r = r + ('a' - 'A')
		}
		b.WriteRune(r)
	}
	return b.String()
}

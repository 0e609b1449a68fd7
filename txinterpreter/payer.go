package txinterpreter

import (
	"fmt"
	"math/big"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
)

// Debt registrations above this much USDC are flagged for extra attention.
var payerElevatedThreshold = new(big.Int).Mul(big.NewInt(50_000), big.NewInt(1_000_000))

// Payer interprets calls on the USDC payer, which pays recipients directly
// when funded and registers the shortfall as debt otherwise.
type Payer struct {
	base
}

func NewPayer(dir *contracts.Directory) *Payer {
	return &Payer{newBase(dir, contracts.PayerAddress,
		"Nouns Payer", "Pays USDC obligations, registering debt when underfunded",
		abis.Payer(), CategoryPayment, map[string]string{
			"sendOrRegisterDebt":   "Pay USDC now, or record the shortfall as debt",
			"payBackDebt":          "Pay down registered debt, oldest first",
			"withdrawPaymentToken": "Withdraw the payer's USDC balance",
			"transferOwnership":    "Transfer ownership of the payer",
			"renounceOwnership":    "Renounce ownership, leaving the payer unowned",
		})}
}

func (p *Payer) Interpret(c TxContext) *InterpretedTx {
	return p.interpretWith(c, p.dispatch)
}

func (p *Payer) ExtractAddresses(c TxContext) []string {
	return p.Interpret(c).AddressesToResolve
}

func (p *Payer) dispatch(c TxContext, fn *call) *InterpretedTx {
	switch fn.Name {
	case "sendOrRegisterDebt":
		amount := fn.bigAt(1)
		display := common.FormatTokenAmount(amount, 6, "USDC")
		if prm := fn.param("amount"); prm != nil {
			prm.DisplayValue = display
			prm.Format = FormatAmount
			prm.Decimals = 6
			prm.Symbol = "USDC"
		}
		severity := SeverityNormal
		if amount.Cmp(payerElevatedThreshold) > 0 {
			severity = SeverityElevated
		}
		summary := fmt.Sprintf("Pay %s to %s", display, p.recipientDisplay(fn, 0))
		return p.assemble(c, fn, summary, CategoryPayment, severity)

	case "payBackDebt":
		display := common.FormatTokenAmount(fn.bigAt(0), 6, "USDC")
		if prm := fn.param("amount"); prm != nil {
			prm.DisplayValue = display
			prm.Format = FormatAmount
			prm.Decimals = 6
			prm.Symbol = "USDC"
		}
		summary := fmt.Sprintf("Pay back %s of registered debt", display)
		return p.assemble(c, fn, summary, CategoryPayment, SeverityNormal)

	case "withdrawPaymentToken":
		amount := fn.bigAt(1)
		display := common.FormatTokenAmount(amount, 6, "USDC")
		if prm := fn.param("amount"); prm != nil {
			prm.DisplayValue = display
			prm.Format = FormatAmount
			prm.Decimals = 6
			prm.Symbol = "USDC"
		}
		summary := fmt.Sprintf("Withdraw %s to %s", display, p.recipientDisplay(fn, 0))
		return p.assemble(c, fn, summary, CategoryTreasury, SeverityElevated)

	case "transferOwnership":
		summary := fmt.Sprintf("Transfer payer ownership to %s", p.recipientDisplay(fn, 0))
		return p.assemble(c, fn, summary, CategoryOwnership, SeverityCritical)

	case "renounceOwnership":
		return p.assemble(c, fn, "Renounce payer ownership", CategoryOwnership, SeverityCritical)
	}
	return nil
}

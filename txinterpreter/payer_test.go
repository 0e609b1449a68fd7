package txinterpreter_test

import (
	"math/big"
	"testing"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/contracts"
	"github.com/nounish/govscope/txinterpreter"
)

func TestPayerSendOrRegisterDebtSeverity(t *testing.T) {
	in := txinterpreter.NewPayer(contracts.Nouns())
	sig := "sendOrRegisterDebt(address,uint256)"

	tx := in.Interpret(txinterpreter.TxContext{
		Target:    contracts.PayerAddress,
		Signature: sig,
		Calldata:  packInput(t, abis.Payer(), sig, grantee, big.NewInt(60_000_000_000)),
	})
	assertCategory(t, tx, txinterpreter.CategoryPayment)
	assertSeverity(t, tx, txinterpreter.SeverityElevated)
	assertSummaryContains(t, tx, "$60,000.00")

	tx = in.Interpret(txinterpreter.TxContext{
		Target:    contracts.PayerAddress,
		Signature: sig,
		Calldata:  packInput(t, abis.Payer(), sig, grantee, big.NewInt(10_000_000_000)),
	})
	assertSeverity(t, tx, txinterpreter.SeverityNormal)

	if len(tx.AddressesToResolve) != 1 || tx.AddressesToResolve[0] != grantee.Hex() {
		t.Errorf("addresses to resolve: want [%s], got %v", grantee.Hex(), tx.AddressesToResolve)
	}
}

func TestPayerPayBackDebt(t *testing.T) {
	in := txinterpreter.NewPayer(contracts.Nouns())
	tx := in.Interpret(txinterpreter.TxContext{
		Target:    contracts.PayerAddress,
		Signature: "payBackDebt(uint256)",
		Calldata:  packInput(t, abis.Payer(), "payBackDebt(uint256)", big.NewInt(5_000_000_000)),
	})

	assertCategory(t, tx, txinterpreter.CategoryPayment)
	assertSummaryContains(t, tx, "$5,000.00")
}

func TestPayerOwnershipFunctionsAreCritical(t *testing.T) {
	in := txinterpreter.NewPayer(contracts.Nouns())

	tx := in.Interpret(txinterpreter.TxContext{
		Target:    contracts.PayerAddress,
		Signature: "renounceOwnership()",
		Calldata:  "0x",
	})
	assertCategory(t, tx, txinterpreter.CategoryOwnership)
	assertSeverity(t, tx, txinterpreter.SeverityCritical)
}

package txinterpreter_test

import (
	"math/big"
	"testing"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/contracts"
	"github.com/nounish/govscope/txinterpreter"
)

func TestAuctionPauseIsCritical(t *testing.T) {
	in := txinterpreter.NewAuction(contracts.Nouns())
	tx := in.Interpret(txinterpreter.TxContext{
		Target:    contracts.AuctionHouseAddress,
		Signature: "pause()",
		Calldata:  "0x",
	})

	assertCategory(t, tx, txinterpreter.CategoryAuction)
	assertSeverity(t, tx, txinterpreter.SeverityCritical)
}

func TestAuctionUnpauseIsElevated(t *testing.T) {
	in := txinterpreter.NewAuction(contracts.Nouns())
	tx := in.Interpret(txinterpreter.TxContext{
		Target:    contracts.AuctionHouseAddress,
		Signature: "unpause()",
		Calldata:  "0x",
	})

	assertSeverity(t, tx, txinterpreter.SeverityElevated)
}

func TestAuctionSetReservePrice(t *testing.T) {
	in := txinterpreter.NewAuction(contracts.Nouns())
	sig := "setReservePrice(uint192)"
	tx := in.Interpret(txinterpreter.TxContext{
		Target:    contracts.AuctionHouseAddress,
		Signature: sig,
		Calldata:  packInput(t, abis.AuctionHouse(), sig, big.NewInt(2e18)),
	})

	assertSeverity(t, tx, txinterpreter.SeverityElevated)
	assertSummaryContains(t, tx, "2.0000 ETH")
}

func TestAuctionTimeBufferAndBidIncrementAreNormal(t *testing.T) {
	in := txinterpreter.NewAuction(contracts.Nouns())

	tx := in.Interpret(txinterpreter.TxContext{
		Target:    contracts.AuctionHouseAddress,
		Signature: "setTimeBuffer(uint56)",
		Calldata:  packInput(t, abis.AuctionHouse(), "setTimeBuffer(uint56)", big.NewInt(300)),
	})
	assertSeverity(t, tx, txinterpreter.SeverityNormal)
	assertSummaryContains(t, tx, "300 seconds")

	sig := "setMinBidIncrementPercentage(uint8)"
	tx = in.Interpret(txinterpreter.TxContext{
		Target:    contracts.AuctionHouseAddress,
		Signature: sig,
		Calldata:  packInput(t, abis.AuctionHouse(), sig, uint8(5)),
	})
	assertSeverity(t, tx, txinterpreter.SeverityNormal)
	assertSummaryContains(t, tx, "5%")
}

func TestAuctionSanctionsOracleIsElevated(t *testing.T) {
	in := txinterpreter.NewAuction(contracts.Nouns())
	sig := "setSanctionsOracle(address)"
	tx := in.Interpret(txinterpreter.TxContext{
		Target:    contracts.AuctionHouseAddress,
		Signature: sig,
		Calldata:  packInput(t, abis.AuctionHouse(), sig, grantee),
	})

	assertSeverity(t, tx, txinterpreter.SeverityElevated)
}

package txinterpreter_test

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/contracts"
	"github.com/nounish/govscope/txinterpreter"
)

func TestRewardsRegisterClientShowsName(t *testing.T) {
	tx := txinterpreter.NewRewards(contracts.Nouns()).Interpret(txinterpreter.TxContext{
		Target:    contracts.RewardsAddress,
		Signature: "registerClient(string,string)",
		Calldata:  packInput(t, abis.Rewards(), "registerClient(string,string)", "nouns.camp", "A governance client"),
	})

	assertCategory(t, tx, txinterpreter.CategoryRewards)
	assertSeverity(t, tx, txinterpreter.SeverityNormal)
	assertSummaryContains(t, tx, `Register rewards client "nouns.camp"`)
}

func TestRewardsSetClientApproval(t *testing.T) {
	r := txinterpreter.NewRewards(contracts.Nouns())

	tx := r.Interpret(txinterpreter.TxContext{
		Target:    contracts.RewardsAddress,
		Signature: "setClientApproval(uint32,bool)",
		Calldata:  packInput(t, abis.Rewards(), "setClientApproval(uint32,bool)", uint32(7), true),
	})
	assertSummaryContains(t, tx, "Approve rewards for client 7")

	tx = r.Interpret(txinterpreter.TxContext{
		Target:    contracts.RewardsAddress,
		Signature: "setClientApproval(uint32,bool)",
		Calldata:  packInput(t, abis.Rewards(), "setClientApproval(uint32,bool)", uint32(7), false),
	})
	assertSummaryContains(t, tx, "Revoke rewards for client 7")
}

func TestRewardsWithdrawClientBalanceFormatsWETH(t *testing.T) {
	to := ethcommon.HexToAddress("0x3333333333333333333333333333333333333333")
	amount := new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18)) // 2 WETH
	tx := txinterpreter.NewRewards(contracts.Nouns()).Interpret(txinterpreter.TxContext{
		Target:    contracts.RewardsAddress,
		Signature: "withdrawClientBalance(uint32,address,uint96)",
		Calldata:  packInput(t, abis.Rewards(), "withdrawClientBalance(uint32,address,uint96)", uint32(4), to, amount),
	})

	assertCategory(t, tx, txinterpreter.CategoryRewards)
	assertSummaryContains(t, tx, "Withdraw 2 WETH for client 4")
	assertSummaryContains(t, tx, to.Hex())

	if len(tx.AddressesToResolve) != 1 || tx.AddressesToResolve[0] != to.Hex() {
		t.Errorf("recipient should need resolution, got %v", tx.AddressesToResolve)
	}
}

func TestRewardsPauseUnpauseSeverity(t *testing.T) {
	r := txinterpreter.NewRewards(contracts.Nouns())

	tx := r.Interpret(txinterpreter.TxContext{
		Target:    contracts.RewardsAddress,
		Signature: "pause()",
		Calldata:  "0x",
	})
	assertSeverity(t, tx, txinterpreter.SeverityElevated)

	tx = r.Interpret(txinterpreter.TxContext{
		Target:    contracts.RewardsAddress,
		Signature: "unpause()",
		Calldata:  "0x",
	})
	assertSeverity(t, tx, txinterpreter.SeverityNormal)
}

func TestRewardsUpgradeIsCritical(t *testing.T) {
	impl := ethcommon.HexToAddress("0x4444444444444444444444444444444444444444")
	tx := txinterpreter.NewRewards(contracts.Nouns()).Interpret(txinterpreter.TxContext{
		Target:    contracts.RewardsAddress,
		Signature: "upgradeTo(address)",
		Calldata:  packInput(t, abis.Rewards(), "upgradeTo(address)", impl),
	})

	assertCategory(t, tx, txinterpreter.CategoryUpgrade)
	assertSeverity(t, tx, txinterpreter.SeverityCritical)
	assertSummaryContains(t, tx, "Upgrade the rewards implementation")
}

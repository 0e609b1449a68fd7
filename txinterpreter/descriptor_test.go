package txinterpreter_test

import (
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/contracts"
	"github.com/nounish/govscope/txinterpreter"
)

func TestDescriptorSetRendererIsElevated(t *testing.T) {
	renderer := ethcommon.HexToAddress("0x1111111111111111111111111111111111111111")
	tx := txinterpreter.NewDescriptor(contracts.Nouns()).Interpret(txinterpreter.TxContext{
		Target:    contracts.DescriptorAddress,
		Signature: "setRenderer(address)",
		Calldata:  packInput(t, abis.Descriptor(), "setRenderer(address)", renderer),
	})

	assertCategory(t, tx, txinterpreter.CategoryArt)
	assertSeverity(t, tx, txinterpreter.SeverityElevated)
	assertSummaryContains(t, tx, "Set the renderer to")
	assertSummaryContains(t, tx, renderer.Hex())
}

func TestDescriptorSetPaletteIsNormal(t *testing.T) {
	tx := txinterpreter.NewDescriptor(contracts.Nouns()).Interpret(txinterpreter.TxContext{
		Target:    contracts.DescriptorAddress,
		Signature: "setPalette(uint8,bytes)",
		Calldata:  packInput(t, abis.Descriptor(), "setPalette(uint8,bytes)", uint8(3), []byte{0xde, 0xad}),
	})

	assertCategory(t, tx, txinterpreter.CategoryArt)
	assertSeverity(t, tx, txinterpreter.SeverityNormal)
	assertSummaryContains(t, tx, "Replace color palette 3")
}

func TestDescriptorLockPartsIsCritical(t *testing.T) {
	tx := txinterpreter.NewDescriptor(contracts.Nouns()).Interpret(txinterpreter.TxContext{
		Target:    contracts.DescriptorAddress,
		Signature: "lockParts()",
		Calldata:  "0x",
	})

	assertCategory(t, tx, txinterpreter.CategoryArt)
	assertSeverity(t, tx, txinterpreter.SeverityCritical)
	assertSummaryContains(t, tx, "Permanently lock the artwork parts")
	if len(tx.Params) != 0 {
		t.Errorf("lockParts has no parameters, got %d", len(tx.Params))
	}
}

func TestDescriptorOwnershipHandoffIsCritical(t *testing.T) {
	newOwner := ethcommon.HexToAddress("0x2222222222222222222222222222222222222222")
	d := txinterpreter.NewDescriptor(contracts.Nouns())

	tx := d.Interpret(txinterpreter.TxContext{
		Target:    contracts.DescriptorAddress,
		Signature: "transferOwnership(address)",
		Calldata:  packInput(t, abis.Descriptor(), "transferOwnership(address)", newOwner),
	})
	assertCategory(t, tx, txinterpreter.CategoryOwnership)
	assertSeverity(t, tx, txinterpreter.SeverityCritical)

	tx = d.Interpret(txinterpreter.TxContext{
		Target:    contracts.DescriptorAddress,
		Signature: "renounceOwnership()",
		Calldata:  "0x",
	})
	assertCategory(t, tx, txinterpreter.CategoryOwnership)
	assertSeverity(t, tx, txinterpreter.SeverityCritical)
	assertSummaryContains(t, tx, "Renounce descriptor ownership")
}

func TestDescriptorUnknownFunctionDegrades(t *testing.T) {
	tx := txinterpreter.NewDescriptor(contracts.Nouns()).Interpret(txinterpreter.TxContext{
		Target:    contracts.DescriptorAddress,
		Signature: "setGlasses(uint256)",
		Calldata:  "0xzz",
	})

	assertCategory(t, tx, txinterpreter.CategoryUnknown)
	assertSummaryContains(t, tx, "Unknown function `setGlasses`")
}

package txinterpreter_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/nounish/govscope/decoder"
	"github.com/nounish/govscope/txinterpreter"
)

// packInput builds hex calldata for the function identified by sig in the
// contract schema, the same encoding the governance proposal payloads carry.
func packInput(t *testing.T, contract *abi.ABI, sig string, args ...interface{}) string {
	t.Helper()
	method, err := decoder.FindMethod(contract, sig)
	if err != nil {
		t.Fatalf("find method %q: %s", sig, err)
	}
	data, err := method.Inputs.Pack(args...)
	if err != nil {
		t.Fatalf("pack %q: %s", sig, err)
	}
	return "0x" + hex.EncodeToString(data)
}

func assertCategory(t *testing.T, tx *txinterpreter.InterpretedTx, want txinterpreter.Category) {
	t.Helper()
	if tx.Category != want {
		t.Errorf("category: want %q, got %q (summary: %q)", want, tx.Category, tx.Summary)
	}
}

func assertSeverity(t *testing.T, tx *txinterpreter.InterpretedTx, want txinterpreter.Severity) {
	t.Helper()
	if tx.Severity != want {
		t.Errorf("severity: want %q, got %q (summary: %q)", want, tx.Severity, tx.Summary)
	}
}

func assertSummaryContains(t *testing.T, tx *txinterpreter.InterpretedTx, substr string) {
	t.Helper()
	if !strings.Contains(tx.Summary, substr) {
		t.Errorf("summary: want substring %q, got %q", substr, tx.Summary)
	}
}

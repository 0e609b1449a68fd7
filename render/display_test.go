package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
	"github.com/nounish/govscope/render"
	"github.com/nounish/govscope/txinterpreter"
	"github.com/nounish/govscope/ui"
)

func sendETHDisplay(t *testing.T, verbose bool) *render.TxDisplay {
	t.Helper()
	tx := txinterpreter.NewTreasury(contracts.Nouns()).Interpret(txinterpreter.TxContext{
		Target:    contracts.TreasuryAddress,
		Signature: "sendETH(address,uint256)",
		Calldata: "0x" +
			"000000000000000000000000aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" +
			"000000000000000000000000000000000000000000000000d02ab486cedc0000", // 15 ETH
	})
	return render.BuildTxDisplay(tx, verbose)
}

func TestPrintTxDisplayElevatedSummaryIsWarn(t *testing.T) {
	rec := ui.NewRecordingUI()
	render.PrintTxDisplay(rec, sendETHDisplay(t, false))

	entries := rec.Entries()
	if len(entries) < 2 {
		t.Fatalf("want a section header and a summary, got %+v", entries)
	}
	if entries[0].Method != "Section" {
		t.Errorf("output should open with a section header, got %+v", entries[0])
	}
	if entries[1].Method != "Warn" {
		t.Fatalf("elevated summary should print via Warn, got %+v", entries[1])
	}
	if !strings.Contains(entries[1].Value, "15.0000 ETH") {
		t.Errorf("summary: want the formatted amount, got %q", entries[1].Value)
	}
}

func TestPrintTxDisplayMetadataAndParams(t *testing.T) {
	rec := ui.NewRecordingUI()
	render.PrintTxDisplay(rec, sendETHDisplay(t, false))

	if !rec.HasMessage("Nouns DAO Treasury") {
		t.Error("target line should carry the contract name")
	}
	if !rec.HasMessage("Category | payment") {
		t.Error("metadata should include the category")
	}
	if !rec.HasMessage("recipient (Recipient) (address)") {
		t.Error("recipient parameter should carry its role label")
	}
	if !rec.HasMessage("Unresolved addresses: 1") {
		t.Error("the unknown recipient should be reported for resolution")
	}
}

func TestPrintTxDisplayCriticalUsesCritical(t *testing.T) {
	tx := txinterpreter.NewToken(contracts.Nouns()).Interpret(txinterpreter.TxContext{
		Target:    contracts.TokenAddress,
		Signature: "lockDescriptor()",
		Calldata:  "0x",
	})
	rec := ui.NewRecordingUI()
	render.PrintTxDisplay(rec, render.BuildTxDisplay(tx, false))

	if got := rec.CriticalMessages(); len(got) == 0 {
		t.Fatal("critical interpretation should print via Critical")
	}
}

func TestPrintJSONIsPlainText(t *testing.T) {
	var buf bytes.Buffer
	if err := render.PrintJSON(&buf, sendETHDisplay(t, true)); err != nil {
		t.Fatalf("encode: %s", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %s", err)
	}
	if _, ok := decoded["summary"].(string); !ok {
		t.Errorf("summary should serialize as a plain string, got %T", decoded["summary"])
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("JSON output must not contain ANSI escapes")
	}
	if _, ok := decoded["calldata"]; !ok {
		t.Error("verbose display should carry calldata")
	}
}

func TestPrintJSONThroughUIWriter(t *testing.T) {
	rec := ui.NewRecordingUI()
	if err := render.PrintJSON(rec.Writer(), sendETHDisplay(t, false)); err != nil {
		t.Fatalf("encode: %s", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(rec.Output()), &decoded); err != nil {
		t.Fatalf("output via UI writer is not valid JSON: %s", err)
	}
	if decoded["severity"] != "elevated" {
		t.Errorf("severity: want elevated, got %v", decoded["severity"])
	}
}

func TestValueFormattedForPlainTransfer(t *testing.T) {
	g := txinterpreter.NewGeneric(contracts.Nouns(), nil)
	tx := g.Interpret(txinterpreter.TxContext{
		Target: "0xEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEEE",
		Value:  common.EthToWei(2),
	})
	d := render.BuildTxDisplay(tx, false)
	if d.Value != "2.0000 ETH" {
		t.Errorf("value: want 2.0000 ETH, got %q", d.Value)
	}
}

// Package render turns interpreted governance transactions into terminal and
// JSON output. It is split into a build phase (pure view-model construction,
// no side effects) and a print phase (reads only from the view-model, colours
// via ui.Style), so the same display data backs both output formats and tests
// can assert on either.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nounish/govscope/txinterpreter"
	"github.com/nounish/govscope/ui"
)

// ParamDisplay is the human-readable view-model for one decoded parameter.
// Value is a StyledText — the plain text serializes cleanly to JSON while the
// Severity annotation drives terminal coloring via u.Style.
type ParamDisplay struct {
	Name  string        `json:"name"`
	Type  string        `json:"type"`
	Value ui.StyledText `json:"value"` // serializes as string
	Role  string        `json:"role,omitempty"`
}

// TxDisplay is the complete human-readable view-model for one interpreted
// transaction.
type TxDisplay struct {
	Summary  ui.StyledText `json:"summary"` // serializes as string
	Target   ui.StyledText `json:"target"`  // serializes as string
	Contract string        `json:"contract,omitempty"`

	Function            string `json:"function,omitempty"`
	FunctionDescription string `json:"function_description,omitempty"`

	Value    string `json:"value"`
	Category string `json:"category"`
	Severity string `json:"severity"`

	Params []ParamDisplay `json:"params,omitempty"`

	// UnresolvedAddresses lists addresses the caller may want to resolve to
	// names off-chain before presenting the transaction to voters.
	UnresolvedAddresses []string `json:"unresolved_addresses,omitempty"`

	// Calldata is carried only in verbose output.
	Calldata string `json:"calldata,omitempty"`
}

// severityStyle maps an interpretation severity to the visual weight its
// summary line gets on the terminal.
func severityStyle(s txinterpreter.Severity) ui.Severity {
	switch s {
	case txinterpreter.SeverityCritical:
		return ui.SeverityCritical
	case txinterpreter.SeverityElevated:
		return ui.SeverityWarn
	default:
		return ui.SeverityInfo
	}
}

// styledTarget renders known contracts as "Name (0x...)" in green; unknown
// addresses stay raw and yellow so they stand out without being alarming.
func styledTarget(tx *txinterpreter.InterpretedTx) ui.StyledText {
	if tx.IsKnownContract && tx.ContractName != "" {
		return ui.StyledText{
			Text:     fmt.Sprintf("%s (%s)", tx.ContractName, tx.Target),
			Severity: ui.SeveritySuccess,
		}
	}
	return ui.StyledText{Text: tx.Target, Severity: ui.SeverityWarn}
}

func styledParam(p txinterpreter.InterpretedParam) ui.StyledText {
	sev := ui.SeverityInfo
	if p.Format == txinterpreter.FormatAddress {
		sev = ui.SeverityWarn
		if p.IsRecipient {
			sev = ui.SeverityCritical
		}
	}
	text := p.DisplayValue
	if text == "" {
		text = fmt.Sprintf("%v", p.Value)
	}
	return ui.StyledText{Text: text, Severity: sev}
}

// BuildTxDisplay constructs the view-model for one interpreted transaction.
// verbose additionally carries the raw calldata through.
func BuildTxDisplay(tx *txinterpreter.InterpretedTx, verbose bool) *TxDisplay {
	d := &TxDisplay{
		Summary:             ui.StyledText{Text: tx.Summary, Severity: severityStyle(tx.Severity)},
		Target:              styledTarget(tx),
		Contract:            tx.ContractDescription,
		Function:            tx.FunctionSignature,
		FunctionDescription: tx.FunctionDescription,
		Value:               tx.ValueFormatted,
		Category:            string(tx.Category),
		Severity:            string(tx.Severity),
		UnresolvedAddresses: tx.AddressesToResolve,
	}
	for _, p := range tx.Params {
		d.Params = append(d.Params, ParamDisplay{
			Name:  p.Name,
			Type:  p.Type,
			Value: styledParam(p),
			Role:  p.RecipientRole,
		})
	}
	if verbose {
		d.Calldata = tx.Calldata
	}
	return d
}

// PrintTxDisplay renders the view-model to the terminal. The summary line's
// severity decides its weight: critical interpretations print bold, elevated
// ones yellow.
func PrintTxDisplay(u ui.UI, d *TxDisplay) {
	u.Section("Transaction Review")
	switch d.Severity {
	case string(txinterpreter.SeverityCritical):
		u.Critical("%s", u.Style(d.Summary))
	case string(txinterpreter.SeverityElevated):
		u.Warn("%s", u.Style(d.Summary))
	default:
		u.Info("%s", u.Style(d.Summary))
	}

	rows := [][2]string{
		{"Target", u.Style(d.Target)},
	}
	if d.Contract != "" {
		rows = append(rows, [2]string{"Contract", d.Contract})
	}
	if d.Function != "" {
		rows = append(rows, [2]string{"Function", d.Function})
	}
	if d.FunctionDescription != "" {
		rows = append(rows, [2]string{"Description", d.FunctionDescription})
	}
	rows = append(rows,
		[2]string{"Value", d.Value},
		[2]string{"Category", d.Category},
		[2]string{"Severity", d.Severity},
	)
	u.KeyValue(rows)

	if len(d.Params) > 0 {
		paramRows := make([][]string, 0, len(d.Params))
		for _, p := range d.Params {
			label := p.Name
			if p.Role != "" {
				label = fmt.Sprintf("%s (%s)", p.Name, p.Role)
			}
			paramRows = append(paramRows, []string{
				fmt.Sprintf("%s (%s)", label, p.Type),
				u.Style(p.Value),
			})
		}
		u.Table([]string{"Parameter", "Value"}, paramRows)
	}

	if len(d.UnresolvedAddresses) > 0 {
		u.Warn("Unresolved addresses: %d", len(d.UnresolvedAddresses))
		for _, addr := range d.UnresolvedAddresses {
			u.Indent().Info("%s", addr)
		}
	}
	if d.Calldata != "" {
		u.Indent().Info("calldata: %s", d.Calldata)
	}
}

// PrintJSON writes the view-model as indented JSON. StyledText fields
// serialize as their plain text, so piped output carries no ANSI noise.
func PrintJSON(w io.Writer, d *TxDisplay) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

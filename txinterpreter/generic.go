package txinterpreter

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
	"github.com/nounish/govscope/decoder"
)

// Generic is the fallback interpreter for targets without a dedicated one.
// It carries no schema of its own: it recognizes a handful of well-known
// function shapes by raw calldata slicing, decodes against a caller-supplied
// ABI when one exists, and otherwise produces a best-effort raw description.
type Generic struct {
	base
	supplier ABISupplier
}

// NewGeneric builds the bare fallback, labeled "External Contract". supplier
// may be nil.
func NewGeneric(dir *contracts.Directory, supplier ABISupplier) *Generic {
	return NewGenericNamed(dir, supplier, "External Contract", "")
}

// NewGenericNamed builds a fallback pre-seeded with a contract identity, used
// when the target is known by name but has no dedicated interpreter.
func NewGenericNamed(dir *contracts.Directory, supplier ABISupplier, name, desc string) *Generic {
	return &Generic{
		base: base{
			name:     name,
			desc:     desc,
			dir:      dir,
			category: CategoryUnknown,
		},
		supplier: supplier,
	}
}

// CanHandle always reports true; the generic interpreter is the end of every
// dispatch chain.
func (g *Generic) CanHandle(c TxContext) bool {
	return true
}

func (g *Generic) ExtractAddresses(c TxContext) []string {
	return g.Interpret(c).AddressesToResolve
}

// Interpret walks the fallback ladder: plain ETH transfer, known external
// token, supplied ABI, well-known raw shapes, raw description. Each rung
// passes to the next when its preconditions fail, so the ladder as a whole
// never fails.
func (g *Generic) Interpret(c TxContext) *InterpretedTx {
	if strings.TrimSpace(c.Signature) == "" {
		if c.ValueWei().Sign() > 0 {
			return g.plainTransfer(c)
		}
		return g.unknownFunction(c)
	}
	name := decoder.FunctionName(c.Signature)
	if info, ok := tokenInfo(c.Target); ok {
		if tx := g.tokenCall(c, name, info); tx != nil {
			return tx
		}
	}
	if g.supplier != nil {
		if schema := g.supplier(c.Target); schema != nil {
			if tx := g.suppliedCall(c, schema); tx != nil {
				return tx
			}
		}
	}
	if tx := g.rawSpecialCall(c, name); tx != nil {
		return tx
	}
	return g.rawFallback(c, name)
}

// tokenCall handles deposit/withdraw/transfer/approve on the recognized
// external tokens by fixed-offset calldata slicing, with no schema involved.
func (g *Generic) tokenCall(c TxContext, fnName string, info TokenInfo) *InterpretedTx {
	w := decoder.SliceCalldata(c.Calldata)
	switch fnName {
	case "deposit":
		summary := fmt.Sprintf("Wrap %s into %s", common.FormatEth(c.ValueWei()), info.Symbol)
		return g.result(c, nil, summary, CategoryPayment, SeverityNormal)

	case "withdraw":
		amount, ok := w.Big(0)
		if !ok {
			return nil
		}
		display := common.FormatTokenAmount(amount, info.Decimals, info.Symbol)
		params := []InterpretedParam{{
			Name: "amount", Type: "uint256", Value: amount,
			DisplayValue: display, Format: FormatAmount,
			Decimals: info.Decimals, Symbol: info.Symbol,
		}}
		summary := fmt.Sprintf("Unwrap %s to ETH", display)
		return g.result(c, params, summary, CategoryPayment, SeverityNormal)

	case "transfer":
		to, ok := w.Address(0)
		if !ok {
			return nil
		}
		amount, ok := w.Big(1)
		if !ok {
			return nil
		}
		display := common.FormatTokenAmount(amount, info.Decimals, info.Symbol)
		params := []InterpretedParam{
			{
				Name: "to", Type: "address", Value: to, DisplayValue: to,
				IsRecipient: true, RecipientRole: "Recipient", Format: FormatAddress,
			},
			{
				Name: "amount", Type: "uint256", Value: amount,
				DisplayValue: display, Format: FormatAmount,
				Decimals: info.Decimals, Symbol: info.Symbol,
			},
		}
		summary := fmt.Sprintf("Transfer %s to %s", display, g.displayAddr(to))
		cat := CategoryPayment
		if isStreamFundingTarget(to) {
			cat = CategoryStream
			summary = fmt.Sprintf("Fund a payment stream with %s", display)
		}
		return g.result(c, params, summary, cat, SeverityNormal)

	case "approve":
		spender, ok := w.Address(0)
		if !ok {
			return nil
		}
		amount, ok := w.Big(1)
		if !ok {
			return nil
		}
		display := common.FormatTokenAmount(amount, info.Decimals, info.Symbol)
		params := []InterpretedParam{
			{
				Name: "spender", Type: "address", Value: spender, DisplayValue: spender,
				IsRecipient: true, RecipientRole: "Approved Spender", Format: FormatAddress,
			},
			{
				Name: "amount", Type: "uint256", Value: amount,
				DisplayValue: display, Format: FormatAmount,
				Decimals: info.Decimals, Symbol: info.Symbol,
			},
		}
		summary := fmt.Sprintf("Approve %s to spend %s", g.displayAddr(spender), display)
		return g.result(c, params, summary, CategoryToken, SeverityNormal)
	}
	return nil
}

// isStreamFundingTarget reports whether a token transfer recipient is a
// payment stream awaiting funding. Stream addresses are created per proposal
// and not tracked here, so this always answers false for now.
func isStreamFundingTarget(addr string) bool {
	return false
}

// suppliedCall decodes against a caller-supplied schema. Without any contract
// knowledge the only enrichment possible is treating the first address
// parameter as the recipient.
func (g *Generic) suppliedCall(c TxContext, schema *abi.ABI) *InterpretedTx {
	method, values, err := decoder.DecodeCall(schema, c.Signature, c.Calldata)
	if err != nil {
		return nil
	}
	params := enrichParams(method, values)
	flagged := false
	for i := range params {
		if params[i].IsRecipient {
			flagged = true
			break
		}
	}
	if !flagged {
		for i := range params {
			if params[i].Format == FormatAddress {
				params[i].IsRecipient = true
				params[i].RecipientRole = "Recipient"
				break
			}
		}
	}
	summary := fmt.Sprintf("Execute `%s`", method.RawName)
	return g.result(c, params, summary, CategoryUnknown, SeverityNormal)
}

// rawSpecialCall decodes the two function shapes recognized without any ABI:
// setApprovalForAll(address,bool) and the ENS reverse-registrar
// setName(address,string,string,bytes32).
func (g *Generic) rawSpecialCall(c TxContext, fnName string) *InterpretedTx {
	w := decoder.SliceCalldata(c.Calldata)
	switch fnName {
	case "setApprovalForAll":
		operator, ok := w.Address(0)
		if !ok {
			return nil
		}
		approved, ok := w.Bool(1)
		if !ok {
			return nil
		}
		params := []InterpretedParam{
			{
				Name: "operator", Type: "address", Value: operator, DisplayValue: operator,
				IsRecipient: true, RecipientRole: "Approved Operator", Format: FormatAddress,
			},
			{
				Name: "approved", Type: "bool", Value: approved,
				DisplayValue: fmt.Sprintf("%t", approved), Format: FormatBoolean,
			},
		}
		summary := fmt.Sprintf("Revoke %s as operator for all tokens", g.displayAddr(operator))
		severity := SeverityNormal
		if approved {
			summary = fmt.Sprintf("Approve %s as operator for all tokens", g.displayAddr(operator))
			severity = SeverityElevated
		}
		return g.result(c, params, summary, CategoryToken, severity)

	case "setName":
		addr, ok := w.Address(0)
		if !ok {
			return nil
		}
		ensName, ok := w.String(1)
		if !ok {
			return nil
		}
		keyOrLabel, _ := w.String(2)
		params := []InterpretedParam{
			{
				Name: "addr", Type: "address", Value: addr,
				DisplayValue: addr, Format: FormatAddress,
			},
			{
				Name: "name", Type: "string", Value: ensName,
				DisplayValue: ensName, Format: FormatText,
			},
		}
		if keyOrLabel != "" {
			params = append(params, InterpretedParam{
				Name: "key", Type: "string", Value: keyOrLabel,
				DisplayValue: keyOrLabel, Format: FormatText,
			})
		}
		summary := fmt.Sprintf("Set the ENS name of %s to %q", g.displayAddr(addr), ensName)
		return g.result(c, params, summary, CategoryConfiguration, SeverityNormal)
	}
	return nil
}

// rawFallback is the unconditional last rung: no decoded parameters, just the
// function name and the raw calldata carried through.
func (g *Generic) rawFallback(c TxContext, fnName string) *InterpretedTx {
	summary := fmt.Sprintf("Execute `%s` on %s", fnName, g.displayTarget(c.Target))
	return g.result(c, nil, summary, CategoryUnknown, SeverityNormal)
}

func (g *Generic) displayAddr(addr string) string {
	if name := g.dir.Name(addr); name != "" {
		return name
	}
	return addr
}

func (g *Generic) displayTarget(target string) string {
	if name := g.dir.Name(target); name != "" {
		return name
	}
	if g.name != "" && g.name != "External Contract" {
		return g.name
	}
	return target
}

// result assembles a fallback interpretation from explicitly built params.
func (g *Generic) result(c TxContext, params []InterpretedParam, summary string, cat Category, sev Severity) *InterpretedTx {
	tx := &InterpretedTx{
		Target:              c.Target,
		ContractName:        g.name,
		ContractDescription: g.desc,
		IsKnownContract:     g.dir.Contains(c.Target),
		Value:               c.ValueWei(),
		ValueFormatted:      common.FormatEth(c.ValueWei()),
		Calldata:            c.Calldata,
		FunctionName:        decoder.FunctionName(c.Signature),
		FunctionSignature:   decoder.CanonicalSignature(c.Signature),
		Params:              params,
		Summary:             summary,
		Category:            cat,
		Severity:            sev,
	}
	tx.AddressesToResolve = g.addressesToResolve(c, params)
	return tx
}

package txinterpreter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
	"github.com/nounish/govscope/decoder"
)

// call is one successfully decoded function invocation, shared by every
// interpreter's dispatch code.
type call struct {
	Name   string
	Sig    string
	Method *abi.Method
	Values []interface{}
	Params []InterpretedParam
}

// bigAt returns the decoded value at index i as a big integer, converting the
// fixed-width integer types go-ethereum unpacks for narrow uints. Missing or
// non-numeric values yield zero so handlers never have to branch on decode
// shape.
func (f *call) bigAt(i int) *big.Int {
	if i < 0 || i >= len(f.Values) {
		return big.NewInt(0)
	}
	switch v := f.Values[i].(type) {
	case *big.Int:
		return v
	case uint8:
		return big.NewInt(int64(v))
	case uint16:
		return big.NewInt(int64(v))
	case uint32:
		return big.NewInt(int64(v))
	case uint64:
		return new(big.Int).SetUint64(v)
	default:
		return big.NewInt(0)
	}
}

// addressAt returns the normalized hex address at parameter index i, or the
// empty string.
func (f *call) addressAt(i int) string {
	if i < 0 || i >= len(f.Params) {
		return ""
	}
	if s, ok := f.Params[i].Value.(string); ok && strings.HasPrefix(s, "0x") && len(s) == 42 {
		return s
	}
	return ""
}

// param returns the parameter named name, or nil.
func (f *call) param(name string) *InterpretedParam {
	for i := range f.Params {
		if f.Params[i].Name == name {
			return &f.Params[i]
		}
	}
	return nil
}

// base carries the shared state and behavior of every contract-specific
// interpreter: the pinned address, the contract identity shown in results,
// the decode schema, and the result-assembly helpers.
type base struct {
	address  string
	name     string
	desc     string
	schema   *abi.ABI
	dir      *contracts.Directory
	category Category // default category for functions without a dedicated handler

	// one-line human descriptions per function name, shown under the summary
	descriptions map[string]string
}

// newBase wires the shared interpreter state, preferring the directory's
// name and description for the pinned address when present.
func newBase(dir *contracts.Directory, addr, name, desc string, schema *abi.ABI, cat Category, descriptions map[string]string) base {
	if c, ok := dir.Lookup(addr); ok {
		name, desc = c.Name, c.Description
	}
	return base{
		address:      addr,
		name:         name,
		desc:         desc,
		schema:       schema,
		dir:          dir,
		category:     cat,
		descriptions: descriptions,
	}
}

func (b *base) Address() string {
	return b.address
}

// recipientDisplay shows the address at parameter index i, substituting the
// directory name when the address is a known contract.
func (b *base) recipientDisplay(fn *call, i int) string {
	addr := fn.addressAt(i)
	if addr == "" {
		return "unknown"
	}
	if name := b.dir.Name(addr); name != "" {
		return name
	}
	return addr
}

func (b *base) CanHandle(c TxContext) bool {
	return strings.EqualFold(c.Target, b.address)
}

// decodeCall resolves the function from the context's signature and decodes
// and enriches its parameters. Callers treat any error as "fall back to a
// degraded description" — it never propagates past the interpreter.
func (b *base) decodeCall(c TxContext) (*call, error) {
	method, values, err := decoder.DecodeCall(b.schema, c.Signature, c.Calldata)
	if err != nil {
		return nil, err
	}
	return &call{
		Name:   method.RawName,
		Sig:    method.Sig,
		Method: method,
		Values: values,
		Params: enrichParams(method, values),
	}, nil
}

// isPlainTransfer reports whether the context is a bare ETH transfer: no
// function signature and a nonzero value.
func isPlainTransfer(c TxContext) bool {
	return strings.TrimSpace(c.Signature) == "" && c.ValueWei().Sign() > 0
}

// assemble builds the final result. The addresses-to-resolve list collects
// the target (for plain transfers) and every recipient-flagged parameter,
// dropping anything the contract directory already knows by name.
func (b *base) assemble(c TxContext, fn *call, summary string, cat Category, sev Severity) *InterpretedTx {
	tx := &InterpretedTx{
		Target:              c.Target,
		ContractName:        b.name,
		ContractDescription: b.desc,
		IsKnownContract:     b.dir.Contains(c.Target) || b.address != "",
		Value:               c.ValueWei(),
		ValueFormatted:      common.FormatEth(c.ValueWei()),
		Calldata:            c.Calldata,
		Summary:             summary,
		Category:            cat,
		Severity:            sev,
	}
	if fn != nil {
		tx.FunctionName = fn.Name
		tx.FunctionSignature = fn.Sig
		tx.FunctionDescription = b.descriptions[fn.Name]
		tx.Params = fn.Params
	} else if name := decoder.FunctionName(c.Signature); name != "" {
		tx.FunctionName = name
		tx.FunctionSignature = decoder.CanonicalSignature(c.Signature)
	}
	tx.AddressesToResolve = b.addressesToResolve(c, tx.Params)
	return tx
}

func (b *base) addressesToResolve(c TxContext, params []InterpretedParam) []string {
	seen := map[string]bool{}
	out := []string{}
	add := func(addr string) {
		if addr == "" {
			return
		}
		key := strings.ToLower(addr)
		if seen[key] || b.dir.Contains(addr) {
			return
		}
		seen[key] = true
		out = append(out, addr)
	}
	if isPlainTransfer(c) {
		add(c.Target)
	}
	for _, p := range params {
		if !p.IsRecipient {
			continue
		}
		if s, ok := p.Value.(string); ok {
			add(s)
		}
	}
	return out
}

// plainTransfer describes a bare ETH transfer to this contract's address.
func (b *base) plainTransfer(c TxContext) *InterpretedTx {
	dest := c.Target
	if name := b.dir.Name(c.Target); name != "" {
		dest = name
	}
	summary := fmt.Sprintf("Transfer %s to %s", common.FormatEth(c.ValueWei()), dest)
	return b.assemble(c, nil, summary, CategoryPayment, SeverityNormal)
}

// unknownFunction is the degraded result for a call whose parameters could
// not be decoded. The parameter list stays empty; the function name (if any)
// still comes through from the signature.
func (b *base) unknownFunction(c TxContext) *InterpretedTx {
	name := decoder.FunctionName(c.Signature)
	summary := "Unknown function"
	if name != "" {
		summary = fmt.Sprintf("Unknown function `%s`", name)
	}
	return b.assemble(c, nil, summary, CategoryUnknown, SeverityNormal)
}

// genericCall describes a successfully decoded function that has no
// dedicated handler.
func (b *base) genericCall(c TxContext, fn *call) *InterpretedTx {
	return b.assemble(c, fn, fmt.Sprintf("Execute `%s`", fn.Name), b.category, SeverityNormal)
}

// interpretWith runs the shared interpretation skeleton: plain transfers
// short-circuit, decode failures degrade, and everything else goes through
// the contract's dispatch function.
func (b *base) interpretWith(c TxContext, dispatch func(c TxContext, fn *call) *InterpretedTx) *InterpretedTx {
	if strings.TrimSpace(c.Signature) == "" {
		if isPlainTransfer(c) {
			return b.plainTransfer(c)
		}
		return b.unknownFunction(c)
	}
	fn, err := b.decodeCall(c)
	if err != nil {
		return b.unknownFunction(c)
	}
	if result := dispatch(c, fn); result != nil {
		return result
	}
	return b.genericCall(c, fn)
}

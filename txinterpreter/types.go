// Package txinterpreter decodes and classifies raw governance transactions
// into structured, human-readable descriptions.
//
// One interpreter exists per known governance contract, all sharing a common
// decode-and-enrich pipeline; a registry dispatches each transaction to the
// interpreter pinned to its target address, falling back to a generic
// interpreter that works without any registered schema. The whole package is
// a stateless function of its input: interpreters hold only compiled-in
// knowledge, perform no I/O, and may be shared freely across goroutines.
package txinterpreter

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// TxContext is the raw transaction under interpretation. Values are never
// mutated; Signature may be empty for plain ETH transfers and Calldata may be
// empty or carry a leading function selector.
type TxContext struct {
	Target    string   // contract or recipient address, hex
	Value     *big.Int // attached ETH in wei, nil means zero
	Signature string   // textual function signature, e.g. "sendETH(address,uint256)"
	Calldata  string   // hex-encoded ABI parameters, with or without selector
}

// ValueWei returns the attached value, treating nil as zero.
func (c TxContext) ValueWei() *big.Int {
	if c.Value == nil {
		return big.NewInt(0)
	}
	return c.Value
}

// ParamFormat tags how a decoded parameter's display value was produced so a
// UI can choose an appropriate widget.
type ParamFormat string

const (
	FormatAddress    ParamFormat = "address"
	FormatAmount     ParamFormat = "amount"
	FormatPercentage ParamFormat = "percentage"
	FormatDuration   ParamFormat = "duration"
	FormatText       ParamFormat = "text"
	FormatBoolean    ParamFormat = "boolean"
	FormatBytes      ParamFormat = "bytes"
)

// Category classifies what a governance transaction does.
type Category string

const (
	CategoryPayment       Category = "payment"
	CategoryStream        Category = "stream"
	CategoryTreasury      Category = "treasury"
	CategoryGovernance    Category = "governance"
	CategoryAuction       Category = "auction"
	CategoryToken         Category = "token"
	CategoryArt           Category = "art"
	CategoryRewards       Category = "rewards"
	CategoryOwnership     Category = "ownership"
	CategoryUpgrade       Category = "upgrade"
	CategoryConfiguration Category = "configuration"
	CategoryUnknown       Category = "unknown"
)

// Severity flags how much review attention a transaction deserves. It says
// nothing about correctness; critical marks irreversible or
// authority-transferring operations.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityElevated Severity = "elevated"
	SeverityCritical Severity = "critical"
)

// InterpretedParam is one decoded function parameter, enriched for display.
type InterpretedParam struct {
	Name          string
	Type          string      // ABI type string
	Value         interface{} // decoded native value (string for addresses, *big.Int for ints, ...)
	DisplayValue  string
	IsRecipient   bool
	RecipientRole string // e.g. "Stream Recipient", "Approved Spender"; empty unless IsRecipient
	Format        ParamFormat
	Decimals      int64  // token decimals backing an amount display, 0 otherwise
	Symbol        string // token symbol backing an amount display
}

// InterpretedTx is the fully-assembled description of one transaction. It is
// derived purely from the TxContext plus compiled-in contract knowledge and
// is never mutated after construction.
type InterpretedTx struct {
	Target              string
	ContractName        string
	ContractDescription string
	IsKnownContract     bool

	FunctionName        string
	FunctionSignature   string
	FunctionDescription string

	Value          *big.Int
	ValueFormatted string

	Params   []InterpretedParam
	Calldata string

	Summary  string
	Category Category
	Severity Severity

	// AddressesToResolve lists every address in the transaction that needs
	// off-chain name resolution, deduplicated. Addresses the contract
	// directory already identifies by name are excluded.
	AddressesToResolve []string
}

// Interpreter is the capability every contract interpreter provides.
//
// Interpret never fails: any internal decode error degrades to a less
// detailed but well-formed result.
type Interpreter interface {
	// Address is the fixed contract address this interpreter is pinned to,
	// empty for the generic fallback.
	Address() string
	// CanHandle reports whether this interpreter owns the context's target.
	CanHandle(c TxContext) bool
	Interpret(c TxContext) *InterpretedTx
	// ExtractAddresses returns the same addresses Interpret would report in
	// AddressesToResolve, usable independently of full interpretation.
	ExtractAddresses(c TxContext) []string
}

// ABISupplier optionally hands the generic interpreter a parameter schema for
// an otherwise-unknown target. Returning nil means no schema is available.
// The supplier is the caller's collaborator; the core never fetches anything.
type ABISupplier func(target string) *abi.ABI

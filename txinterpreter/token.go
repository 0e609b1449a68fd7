package txinterpreter

import (
	"fmt"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/contracts"
)

// Token interprets calls on the Nouns ERC721. The lock functions are
// one-way: once locked, the minter, descriptor, or seeder can never be
// changed again.
type Token struct {
	base
}

func NewToken(dir *contracts.Directory) *Token {
	return &Token{newBase(dir, contracts.TokenAddress,
		"Nouns Token", "The Nouns ERC721 governance token",
		abis.Token(), CategoryToken, map[string]string{
			"transferFrom":       "Move a Noun between accounts",
			"safeTransferFrom":   "Move a Noun between accounts, checking the receiver",
			"approve":            "Approve one Noun for transfer by a spender",
			"setApprovalForAll":  "Approve or revoke an operator for every Noun held",
			"delegate":           "Delegate voting power",
			"setMinter":          "Change the account allowed to mint Nouns",
			"lockMinter":         "Permanently freeze the minter",
			"setDescriptor":      "Change the artwork descriptor contract",
			"lockDescriptor":     "Permanently freeze the artwork descriptor",
			"setSeeder":          "Change the trait seeder contract",
			"lockSeeder":         "Permanently freeze the trait seeder",
			"setContractURIHash": "Change the collection metadata hash",
			"transferOwnership":  "Transfer ownership of the token contract",
		})}
}

func (t *Token) Interpret(c TxContext) *InterpretedTx {
	return t.interpretWith(c, t.dispatch)
}

func (t *Token) ExtractAddresses(c TxContext) []string {
	return t.Interpret(c).AddressesToResolve
}

func (t *Token) dispatch(c TxContext, fn *call) *InterpretedTx {
	switch fn.Name {
	case "transferFrom", "safeTransferFrom":
		summary := fmt.Sprintf("Transfer Noun %s from %s to %s",
			fn.bigAt(2).String(), t.recipientDisplay(fn, 0), t.recipientDisplay(fn, 1))
		return t.assemble(c, fn, summary, CategoryToken, SeverityNormal)

	case "approve":
		summary := fmt.Sprintf("Approve %s to transfer Noun %s",
			t.recipientDisplay(fn, 0), fn.bigAt(1).String())
		return t.assemble(c, fn, summary, CategoryToken, SeverityNormal)

	case "setApprovalForAll":
		operator := t.recipientDisplay(fn, 0)
		approved := false
		if len(fn.Values) > 1 {
			approved, _ = fn.Values[1].(bool)
		}
		if len(fn.Params) > 0 {
			fn.Params[0].IsRecipient = true
			fn.Params[0].RecipientRole = "Approved Operator"
		}
		summary := fmt.Sprintf("Revoke %s as operator for all Nouns", operator)
		severity := SeverityNormal
		if approved {
			summary = fmt.Sprintf("Approve %s as operator for all Nouns", operator)
			severity = SeverityElevated
		}
		return t.assemble(c, fn, summary, CategoryToken, severity)

	case "delegate":
		summary := fmt.Sprintf("Delegate voting power to %s", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryGovernance, SeverityNormal)

	case "setMinter":
		summary := fmt.Sprintf("Set the minter to %s", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryToken, SeverityCritical)

	case "lockMinter":
		return t.assemble(c, fn, "Permanently lock the minter", CategoryToken, SeverityCritical)

	case "setDescriptor":
		summary := fmt.Sprintf("Set the artwork descriptor to %s", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryArt, SeverityCritical)

	case "lockDescriptor":
		return t.assemble(c, fn, "Permanently lock the artwork descriptor", CategoryArt, SeverityCritical)

	case "setSeeder":
		summary := fmt.Sprintf("Set the trait seeder to %s", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryArt, SeverityCritical)

	case "lockSeeder":
		return t.assemble(c, fn, "Permanently lock the trait seeder", CategoryArt, SeverityCritical)

	case "setContractURIHash":
		return t.assemble(c, fn, "Set the collection metadata hash", CategoryConfiguration, SeverityNormal)

	case "transferOwnership":
		summary := fmt.Sprintf("Transfer token ownership to %s", t.recipientDisplay(fn, 0))
		return t.assemble(c, fn, summary, CategoryOwnership, SeverityCritical)
	}
	return nil
}

// Package decoder turns a textual function signature plus a hex calldata blob
// into decoded positional parameter values, using an explicit per-contract
// parameter schema (a parsed ABI fragment).
//
// It is the single point where malformed or mismatched calldata is detected:
// callers catch DecodeError and degrade to a generic description instead of
// letting the failure reach the display boundary.
package decoder

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/crypto/sha3"
)

// DecodeError reports why a calldata blob could not be decoded against a
// declared function schema.
type DecodeError struct {
	Signature string
	Reason    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %q: %s", e.Signature, e.Reason)
}

// CanonicalSignature strips whitespace from a textual function signature so
// that "sendETH(address, uint256)" and "sendETH(address,uint256)" hash to the
// same selector.
func CanonicalSignature(signature string) string {
	return strings.Join(strings.Fields(signature), "")
}

// FunctionName returns the bare function name of a signature,
// e.g. "sendETH" for "sendETH(address,uint256)".
func FunctionName(signature string) string {
	if i := strings.Index(signature, "("); i >= 0 {
		return signature[:i]
	}
	return signature
}

// Selector computes the 4-byte function selector of a signature.
func Selector(signature string) [4]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(CanonicalSignature(signature)))
	var sel [4]byte
	copy(sel[:], h.Sum(nil)[:4])
	return sel
}

// FindMethod locates the method matching signature in the contract schema.
// Matching is by canonical signature, so overloads sharing a name resolve to
// the correct parameter layout.
func FindMethod(contract *abi.ABI, signature string) (*abi.Method, error) {
	if contract == nil {
		return nil, &DecodeError{Signature: signature, Reason: "no contract schema available"}
	}
	canonical := CanonicalSignature(signature)
	for _, m := range contract.Methods {
		if m.Sig == canonical {
			m := m
			return &m, nil
		}
	}
	return nil, &DecodeError{Signature: signature, Reason: "function not found in contract schema"}
}

// NormalizeCalldata hex-decodes calldata and strips any leading occurrences
// of the signature's 4-byte selector. Calldata in governance proposals is
// inconsistent about including the selector (the signature field already
// identifies the function), so both forms — and the occasional duplicated
// selector — must decode identically.
func NormalizeCalldata(signature, calldata string) ([]byte, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(calldata), "0x")
	if len(raw)%2 != 0 {
		return nil, &DecodeError{Signature: signature, Reason: "calldata has odd hex length"}
	}
	data, err := hex.DecodeString(raw)
	if err != nil {
		return nil, &DecodeError{Signature: signature, Reason: "calldata is not valid hex"}
	}
	sel := Selector(signature)
	for len(data) >= 4 && bytes.Equal(data[:4], sel[:]) {
		data = data[4:]
	}
	// ABI-encoded parameters always occupy whole 32-byte words, so a
	// selector-shaped remainder means the calldata carries some other
	// function's selector. Decoding the shifted words would yield
	// plausible-looking garbage, so reject it here instead.
	if len(data)%32 == 4 {
		return nil, &DecodeError{
			Signature: signature,
			Reason:    fmt.Sprintf("calldata selector %#x does not match signature selector %#x", data[:4], sel[:]),
		}
	}
	return data, nil
}

// DecodeCall decodes calldata against the function identified by signature in
// the contract schema, returning the resolved method and the decoded values
// in declaration order.
func DecodeCall(contract *abi.ABI, signature, calldata string) (*abi.Method, []interface{}, error) {
	method, err := FindMethod(contract, signature)
	if err != nil {
		return nil, nil, err
	}
	data, err := NormalizeCalldata(signature, calldata)
	if err != nil {
		return nil, nil, err
	}
	// Every parameter occupies at least one 32-byte head slot, so anything
	// shorter cannot possibly decode.
	if min := 32 * len(method.Inputs); len(data) < min {
		return nil, nil, &DecodeError{
			Signature: signature,
			Reason:    fmt.Sprintf("calldata too short: %d bytes, need at least %d", len(data), min),
		}
	}
	values, err := method.Inputs.UnpackValues(data)
	if err != nil {
		return nil, nil, &DecodeError{Signature: signature, Reason: err.Error()}
	}
	return method, values, nil
}

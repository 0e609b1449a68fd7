package txinterpreter

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/nounish/govscope/common"
)

// Parameter names that always denote a payment or authority recipient.
var recipientNames = map[string]string{
	"to":        "Recipient",
	"recipient": "Recipient",
	"account":   "Account",
	"newOwner":  "New Owner",
	"delegatee": "Delegatee",
	"spender":   "Approved Spender",
}

// Function names whose first address parameter is a recipient even when the
// parameter name says nothing. Keys are lower-cased for comparison.
var recipientVerbs = map[string]string{
	"transfer":           "Recipient",
	"send":               "Recipient",
	"sendeth":            "Payment Recipient",
	"senderc20":          "Payment Recipient",
	"sendorregisterdebt": "Debt Recipient",
}

// enrichParams builds the annotated parameter set for a decoded call, in
// declaration order. Recipient detection: the parameter name matches the
// known recipient-name set, or it is the first address parameter of a
// function in the recipient-verb set.
func enrichParams(method *abi.Method, values []interface{}) []InterpretedParam {
	params := make([]InterpretedParam, 0, len(method.Inputs))
	firstAddressIdx := -1
	for i, input := range method.Inputs {
		if input.Type.T == abi.AddressTy && firstAddressIdx < 0 {
			firstAddressIdx = i
		}
		var value interface{}
		if i < len(values) {
			value = values[i]
		}
		p := buildParam(input, value)
		if role, ok := recipientNames[input.Name]; ok && input.Type.T == abi.AddressTy {
			p.IsRecipient = true
			p.RecipientRole = role
		}
		params = append(params, p)
	}
	if firstAddressIdx >= 0 && !params[firstAddressIdx].IsRecipient {
		if role, ok := recipientVerbs[strings.ToLower(method.RawName)]; ok {
			params[firstAddressIdx].IsRecipient = true
			params[firstAddressIdx].RecipientRole = role
		}
	}
	return params
}

// buildParam converts one decoded ABI value into its display form. The
// native value is normalized so results serialize cleanly: addresses become
// hex strings, byte blobs become 0x-prefixed hex.
func buildParam(input abi.Argument, value interface{}) InterpretedParam {
	p := InterpretedParam{
		Name: input.Name,
		Type: input.Type.String(),
	}
	switch v := value.(type) {
	case nil:
		p.Value = nil
		p.DisplayValue = ""
		p.Format = FormatText
	case ethcommon.Address:
		p.Value = v.Hex()
		p.DisplayValue = v.Hex()
		p.Format = FormatAddress
	case bool:
		p.Value = v
		p.DisplayValue = fmt.Sprintf("%t", v)
		p.Format = FormatBoolean
	case string:
		p.Value = v
		p.DisplayValue = v
		p.Format = FormatText
	case []byte:
		p.Value = hexutil.Encode(v)
		p.DisplayValue = hexutil.Encode(v)
		p.Format = FormatBytes
	default:
		if input.Type.T == abi.FixedBytesTy {
			p.Value = fmt.Sprintf("0x%x", v)
			p.DisplayValue = fmt.Sprintf("0x%x", v)
			p.Format = FormatBytes
			break
		}
		if input.Type.T == abi.SliceTy || input.Type.T == abi.ArrayTy {
			p.Value = v
			p.DisplayValue = displayList(v)
			p.Format = FormatText
			break
		}
		// integers of any width, including *big.Int
		p.Value = v
		p.DisplayValue = common.GroupDigits(fmt.Sprintf("%d", v))
		p.Format = FormatText
	}
	return p
}

func displayList(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return "[" + strings.Join(strings.Fields(s), ", ") + "]"
}

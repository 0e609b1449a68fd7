package txinterpreter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/contracts"
)

// StreamFactory interprets stream creation calls. createStream is overloaded
// three ways; the layouts differ only in whether a payer address precedes the
// recipient, so parameter positions are derived from the resolved overload's
// declared inputs rather than hardcoded per signature.
type StreamFactory struct {
	base
}

func NewStreamFactory(dir *contracts.Directory) *StreamFactory {
	return &StreamFactory{newBase(dir, contracts.StreamFactoryAddress,
		"Nouns Stream Factory", "Creates token payment streams for funded proposals",
		abis.StreamFactory(), CategoryStream, map[string]string{
			"createStream":        "Create a token payment stream",
			"createAndFundStream": "Create a payment stream and fund it immediately",
		})}
}

func (s *StreamFactory) Interpret(c TxContext) *InterpretedTx {
	return s.interpretWith(c, s.dispatch)
}

func (s *StreamFactory) ExtractAddresses(c TxContext) []string {
	return s.Interpret(c).AddressesToResolve
}

func (s *StreamFactory) dispatch(c TxContext, fn *call) *InterpretedTx {
	switch fn.Name {
	case "createStream", "createAndFundStream":
		return s.describeStream(c, fn)
	}
	return nil
}

// recipientIndex locates the stream recipient among the overload's inputs.
// In every layout the recipient address is followed by the token amount, so a
// second input of integer type means recipient-first; otherwise a payer
// address comes first and the recipient sits at index 1. Anything
// inconclusive falls back to recipient-first, the oldest layout.
func (s *StreamFactory) recipientIndex(fn *call) int {
	if fn.Method == nil || len(fn.Method.Inputs) < 2 {
		return 0
	}
	if strings.HasPrefix(fn.Method.Inputs[1].Type.String(), "uint") {
		return 0
	}
	return 1
}

func (s *StreamFactory) describeStream(c TxContext, fn *call) *InterpretedTx {
	recipIdx := s.recipientIndex(fn)
	amount := fn.bigAt(recipIdx + 1)
	token := fn.addressAt(recipIdx + 2)
	start := fn.bigAt(recipIdx + 3)
	stop := fn.bigAt(recipIdx + 4)

	if recipIdx < len(fn.Params) {
		fn.Params[recipIdx].IsRecipient = true
		fn.Params[recipIdx].RecipientRole = "Stream Recipient"
	}
	display := formatKnownAmount(amount, token)
	if p := fn.param("tokenAmount"); p != nil {
		p.DisplayValue = display
		p.Format = FormatAmount
		if info, ok := tokenInfo(token); ok {
			p.Decimals = info.Decimals
			p.Symbol = info.Symbol
		}
	}

	summary := fmt.Sprintf("Stream %s to %s", display, s.recipientDisplay(fn, recipIdx))
	if rate := streamRatePerDay(amount, start, stop); rate != nil {
		summary += fmt.Sprintf(" (%s per day)", formatKnownAmount(rate, token))
	}
	return s.assemble(c, fn, summary, CategoryStream, SeverityNormal)
}

// streamRatePerDay returns the per-day flow rate of a stream, or nil when the
// time bounds are missing or inverted.
func streamRatePerDay(amount, start, stop *big.Int) *big.Int {
	if amount == nil || start == nil || stop == nil {
		return nil
	}
	window := new(big.Int).Sub(stop, start)
	if window.Sign() <= 0 {
		return nil
	}
	rate := new(big.Int).Mul(amount, big.NewInt(86400))
	return rate.Div(rate, window)
}

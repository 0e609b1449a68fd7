package txinterpreter

import (
	"math/big"
	"strings"

	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
)

// TokenInfo is the display metadata of a recognized external token.
type TokenInfo struct {
	Symbol   string
	Decimals int64
}

// The fixed set of external tokens the interpreter can format amounts for
// without any on-chain lookup. Keyed by lower-cased address.
var knownTokens = map[string]TokenInfo{
	strings.ToLower(contracts.WETHAddress): {Symbol: "WETH", Decimals: 18},
	strings.ToLower(contracts.USDCAddress): {Symbol: "USDC", Decimals: 6},
}

func tokenInfo(addr string) (TokenInfo, bool) {
	info, ok := knownTokens[strings.ToLower(addr)]
	return info, ok
}

// formatKnownAmount renders amount using the token's metadata when the token
// address is recognized, and as a plain grouped integer otherwise.
func formatKnownAmount(amount *big.Int, tokenAddr string) string {
	if info, ok := tokenInfo(tokenAddr); ok {
		return common.FormatTokenAmount(amount, info.Decimals, info.Symbol)
	}
	return common.GroupDigits(amount.String())
}

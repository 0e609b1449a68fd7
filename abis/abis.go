// Package abis embeds the parameter schemas for the governance contracts the
// interpreter knows how to decode. Each fragment declares exactly the
// functions its interpreter dispatches on; decoding is always driven by these
// schemas, never by positional guesswork (the raw fallback paths live in
// decoder and are used only when no schema applies).
package abis

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

func mustABI(raw string) *abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("abis: invalid embedded ABI fragment: " + err.Error())
	}
	return &parsed
}

var (
	treasury      = mustABI(treasuryABI)
	daoAdmin      = mustABI(daoAdminABI)
	auctionHouse  = mustABI(auctionHouseABI)
	token         = mustABI(tokenABI)
	descriptor    = mustABI(descriptorABI)
	streamFactory = mustABI(streamFactoryABI)
	tokenBuyer    = mustABI(tokenBuyerABI)
	rewards       = mustABI(rewardsABI)
	payer         = mustABI(payerABI)
	erc20         = mustABI(erc20ABI)
)

func Treasury() *abi.ABI      { return treasury }
func DAOAdmin() *abi.ABI      { return daoAdmin }
func AuctionHouse() *abi.ABI  { return auctionHouse }
func Token() *abi.ABI         { return token }
func Descriptor() *abi.ABI    { return descriptor }
func StreamFactory() *abi.ABI { return streamFactory }
func TokenBuyer() *abi.ABI    { return tokenBuyer }
func Rewards() *abi.ABI       { return rewards }
func Payer() *abi.ABI         { return payer }

// ERC20 is the generic token schema used by the fallback interpreter when a
// caller supplies no contract-specific ABI.
func ERC20() *abi.ABI { return erc20 }

package contracts

// Mainnet addresses of the Nouns DAO governance contracts. Interpreters pin
// themselves to these addresses; the extra entries exist only so their names
// show up in decoded parameters instead of raw hex.
const (
	TreasuryAddress      = "0xb1a32FC9F9D8b2cf86C068Cae13108809547ef71"
	DAOProxyAddress      = "0x6f3E6272A167e8AcCb32072d08E0957F9c79223d"
	AuctionHouseAddress  = "0x830BD73E4184ceF73443C15111a1DF14e495C706"
	TokenAddress         = "0x9C8fF314C9Bc7F6e59A9d9225Fb22946427eDC03"
	DescriptorAddress    = "0x6229c811D04501523C6058bfAAc29c91bb586268"
	StreamFactoryAddress = "0x0fd206FC7A7dBcD5661157eDCb1FFDD0D02A61ff"
	TokenBuyerAddress    = "0x4f2aCdc74f6941390d9b1804faBc3E780388cfe5"
	RewardsAddress       = "0x883860178F95d0C82413eDc1D6De530cB4771d55"
	PayerAddress         = "0xd97Bcd9f47cEe35c0a9ec1dc40C1269afc9E8E1D"

	TreasuryV1Address = "0x0BC3807Ec262cB779b38D65b38158acC3bfedE10"
	ForkEscrowAddress = "0x44d97D22B3d37d837cE4b22773aAd9d1566055D9"

	WETHAddress = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	USDCAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

var nounsContracts = []Contract{
	{TreasuryAddress, "Nouns DAO Treasury", "Timelocked executor holding and disbursing the DAO treasury"},
	{DAOProxyAddress, "Nouns DAO Governor", "Proposal lifecycle and governance parameter administration"},
	{AuctionHouseAddress, "Nouns Auction House", "Daily Noun auctions"},
	{TokenAddress, "Nouns Token", "The Nouns ERC721 governance token"},
	{DescriptorAddress, "Nouns Descriptor", "On-chain artwork parts and rendering configuration"},
	{StreamFactoryAddress, "Nouns Stream Factory", "Creates token payment streams for funded proposals"},
	{TokenBuyerAddress, "Nouns Token Buyer", "Swaps treasury ETH for the payment token"},
	{RewardsAddress, "Nouns Client Rewards", "Rewards for clients facilitating proposals and votes"},
	{PayerAddress, "Nouns Payer", "Pays USDC obligations, registering debt when underfunded"},
	{TreasuryV1Address, "Nouns DAO Treasury V1", "Predecessor timelock, retained for old proposals"},
	{ForkEscrowAddress, "Nouns Fork Escrow", "Escrows Nouns during a DAO fork window"},
	{WETHAddress, "WETH", "Canonical wrapped ether"},
	{USDCAddress, "USDC", "USD Coin"},
}

// Nouns returns the compiled-in directory of mainnet Nouns governance
// contracts.
func Nouns() *Directory {
	return NewDirectory(nounsContracts)
}

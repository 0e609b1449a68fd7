package abis

// Schema fragments for the mainnet Nouns governance contracts. Only the
// functions the interpreters dispatch on are declared; anything else falls
// through to the generic handlers.

const treasuryABI = `[
{"type":"function","name":"sendETH","inputs":[{"name":"recipient","type":"address"},{"name":"ethToSend","type":"uint256"}]},
{"type":"function","name":"sendERC20","inputs":[{"name":"recipient","type":"address"},{"name":"erc20Token","type":"address"},{"name":"tokensToSend","type":"uint256"}]},
{"type":"function","name":"setDelay","inputs":[{"name":"delay_","type":"uint256"}]},
{"type":"function","name":"setPendingAdmin","inputs":[{"name":"pendingAdmin_","type":"address"}]},
{"type":"function","name":"acceptAdmin","inputs":[]},
{"type":"function","name":"queueTransaction","inputs":[{"name":"target","type":"address"},{"name":"value","type":"uint256"},{"name":"signature","type":"string"},{"name":"data","type":"bytes"},{"name":"eta","type":"uint256"}]},
{"type":"function","name":"cancelTransaction","inputs":[{"name":"target","type":"address"},{"name":"value","type":"uint256"},{"name":"signature","type":"string"},{"name":"data","type":"bytes"},{"name":"eta","type":"uint256"}]},
{"type":"function","name":"executeTransaction","inputs":[{"name":"target","type":"address"},{"name":"value","type":"uint256"},{"name":"signature","type":"string"},{"name":"data","type":"bytes"},{"name":"eta","type":"uint256"}]},
{"type":"function","name":"upgradeTo","inputs":[{"name":"newImplementation","type":"address"}]},
{"type":"function","name":"upgradeToAndCall","inputs":[{"name":"newImplementation","type":"address"},{"name":"data","type":"bytes"}]}
]`

const daoAdminABI = `[
{"type":"function","name":"_setVotingDelay","inputs":[{"name":"newVotingDelay","type":"uint256"}]},
{"type":"function","name":"_setVotingPeriod","inputs":[{"name":"newVotingPeriod","type":"uint256"}]},
{"type":"function","name":"_setProposalThresholdBPS","inputs":[{"name":"newProposalThresholdBPS","type":"uint256"}]},
{"type":"function","name":"_setMinQuorumVotesBPS","inputs":[{"name":"newMinQuorumVotesBPS","type":"uint16"}]},
{"type":"function","name":"_setMaxQuorumVotesBPS","inputs":[{"name":"newMaxQuorumVotesBPS","type":"uint16"}]},
{"type":"function","name":"_setQuorumCoefficient","inputs":[{"name":"newQuorumCoefficient","type":"uint32"}]},
{"type":"function","name":"_setObjectionPeriodDurationInBlocks","inputs":[{"name":"newObjectionPeriodDurationInBlocks","type":"uint32"}]},
{"type":"function","name":"_setLastMinuteWindowInBlocks","inputs":[{"name":"newLastMinuteWindowInBlocks","type":"uint32"}]},
{"type":"function","name":"_setProposalUpdatablePeriodInBlocks","inputs":[{"name":"newProposalUpdatablePeriodInBlocks","type":"uint32"}]},
{"type":"function","name":"_setForkPeriod","inputs":[{"name":"newForkPeriod","type":"uint256"}]},
{"type":"function","name":"_setForkThresholdBPS","inputs":[{"name":"newForkThresholdBPS","type":"uint256"}]},
{"type":"function","name":"_setPendingAdmin","inputs":[{"name":"newPendingAdmin","type":"address"}]},
{"type":"function","name":"_acceptAdmin","inputs":[]},
{"type":"function","name":"_setVetoer","inputs":[{"name":"newVetoer","type":"address"}]},
{"type":"function","name":"_burnVetoPower","inputs":[]}
]`

const auctionHouseABI = `[
{"type":"function","name":"pause","inputs":[]},
{"type":"function","name":"unpause","inputs":[]},
{"type":"function","name":"setReservePrice","inputs":[{"name":"_reservePrice","type":"uint192"}]},
{"type":"function","name":"setTimeBuffer","inputs":[{"name":"_timeBuffer","type":"uint56"}]},
{"type":"function","name":"setMinBidIncrementPercentage","inputs":[{"name":"_minBidIncrementPercentage","type":"uint8"}]},
{"type":"function","name":"setSanctionsOracle","inputs":[{"name":"newSanctionsOracle","type":"address"}]}
]`

const tokenABI = `[
{"type":"function","name":"transferFrom","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}]},
{"type":"function","name":"safeTransferFrom","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}]},
{"type":"function","name":"approve","inputs":[{"name":"spender","type":"address"},{"name":"tokenId","type":"uint256"}]},
{"type":"function","name":"setApprovalForAll","inputs":[{"name":"operator","type":"address"},{"name":"approved","type":"bool"}]},
{"type":"function","name":"delegate","inputs":[{"name":"delegatee","type":"address"}]},
{"type":"function","name":"setMinter","inputs":[{"name":"_minter","type":"address"}]},
{"type":"function","name":"lockMinter","inputs":[]},
{"type":"function","name":"setDescriptor","inputs":[{"name":"_descriptor","type":"address"}]},
{"type":"function","name":"lockDescriptor","inputs":[]},
{"type":"function","name":"setSeeder","inputs":[{"name":"_seeder","type":"address"}]},
{"type":"function","name":"lockSeeder","inputs":[]},
{"type":"function","name":"setContractURIHash","inputs":[{"name":"newContractURIHash","type":"string"}]},
{"type":"function","name":"transferOwnership","inputs":[{"name":"newOwner","type":"address"}]}
]`

const descriptorABI = `[
{"type":"function","name":"setArt","inputs":[{"name":"_art","type":"address"}]},
{"type":"function","name":"setRenderer","inputs":[{"name":"_renderer","type":"address"}]},
{"type":"function","name":"setArtDescriptor","inputs":[{"name":"descriptor","type":"address"}]},
{"type":"function","name":"setArtInflator","inputs":[{"name":"inflator","type":"address"}]},
{"type":"function","name":"setPalette","inputs":[{"name":"paletteIndex","type":"uint8"},{"name":"palette","type":"bytes"}]},
{"type":"function","name":"addBackground","inputs":[{"name":"_background","type":"string"}]},
{"type":"function","name":"addManyBackgrounds","inputs":[{"name":"_backgrounds","type":"string[]"}]},
{"type":"function","name":"setBaseURI","inputs":[{"name":"_baseURI","type":"string"}]},
{"type":"function","name":"toggleDataURIEnabled","inputs":[]},
{"type":"function","name":"lockParts","inputs":[]},
{"type":"function","name":"transferOwnership","inputs":[{"name":"newOwner","type":"address"}]},
{"type":"function","name":"renounceOwnership","inputs":[]}
]`

const streamFactoryABI = `[
{"type":"function","name":"createStream","inputs":[{"name":"recipient","type":"address"},{"name":"tokenAmount","type":"uint256"},{"name":"tokenAddress","type":"address"},{"name":"startTime","type":"uint256"},{"name":"stopTime","type":"uint256"}]},
{"type":"function","name":"createStream","inputs":[{"name":"recipient","type":"address"},{"name":"tokenAmount","type":"uint256"},{"name":"tokenAddress","type":"address"},{"name":"startTime","type":"uint256"},{"name":"stopTime","type":"uint256"},{"name":"nonce","type":"uint8"}]},
{"type":"function","name":"createStream","inputs":[{"name":"payer","type":"address"},{"name":"recipient","type":"address"},{"name":"tokenAmount","type":"uint256"},{"name":"tokenAddress","type":"address"},{"name":"startTime","type":"uint256"},{"name":"stopTime","type":"uint256"},{"name":"nonce","type":"uint8"}]},
{"type":"function","name":"createAndFundStream","inputs":[{"name":"recipient","type":"address"},{"name":"tokenAmount","type":"uint256"},{"name":"tokenAddress","type":"address"},{"name":"startTime","type":"uint256"},{"name":"stopTime","type":"uint256"},{"name":"nonce","type":"uint8"}]}
]`

const tokenBuyerABI = `[
{"type":"function","name":"buyETH","inputs":[{"name":"tokenAmount","type":"uint256"}]},
{"type":"function","name":"buyETH","inputs":[{"name":"tokenAmount","type":"uint256"},{"name":"to","type":"address"},{"name":"data","type":"bytes"}]},
{"type":"function","name":"setBotDiscountBPs","inputs":[{"name":"newBotDiscountBPs","type":"uint16"}]},
{"type":"function","name":"setBaselinePaymentTokenAmount","inputs":[{"name":"newBaselinePaymentTokenAmount","type":"uint256"}]},
{"type":"function","name":"setMinAdminBotDiscountBPs","inputs":[{"name":"newMinAdminBotDiscountBPs","type":"uint16"}]},
{"type":"function","name":"setMaxAdminBotDiscountBPs","inputs":[{"name":"newMaxAdminBotDiscountBPs","type":"uint16"}]},
{"type":"function","name":"setMinAdminBaselinePaymentTokenAmount","inputs":[{"name":"newMinAdminBaselinePaymentTokenAmount","type":"uint256"}]},
{"type":"function","name":"setMaxAdminBaselinePaymentTokenAmount","inputs":[{"name":"newMaxAdminBaselinePaymentTokenAmount","type":"uint256"}]},
{"type":"function","name":"setPayer","inputs":[{"name":"newPayer","type":"address"}]},
{"type":"function","name":"setAdmin","inputs":[{"name":"newAdmin","type":"address"}]},
{"type":"function","name":"withdrawETH","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]},
{"type":"function","name":"pause","inputs":[]},
{"type":"function","name":"unpause","inputs":[]},
{"type":"function","name":"transferOwnership","inputs":[{"name":"newOwner","type":"address"}]}
]`

const rewardsABI = `[
{"type":"function","name":"registerClient","inputs":[{"name":"name","type":"string"},{"name":"description","type":"string"}]},
{"type":"function","name":"setClientApproval","inputs":[{"name":"clientId","type":"uint32"},{"name":"approved","type":"bool"}]},
{"type":"function","name":"updateRewardsForAuctions","inputs":[{"name":"lastNounId","type":"uint256"}]},
{"type":"function","name":"updateRewardsForProposalWritingAndVoting","inputs":[{"name":"lastProposalId","type":"uint32"},{"name":"votingClientIds","type":"uint32[]"}]},
{"type":"function","name":"withdrawClientBalance","inputs":[{"name":"clientId","type":"uint32"},{"name":"to","type":"address"},{"name":"amount","type":"uint96"}]},
{"type":"function","name":"pause","inputs":[]},
{"type":"function","name":"unpause","inputs":[]},
{"type":"function","name":"upgradeTo","inputs":[{"name":"newImplementation","type":"address"}]},
{"type":"function","name":"upgradeToAndCall","inputs":[{"name":"newImplementation","type":"address"},{"name":"data","type":"bytes"}]},
{"type":"function","name":"transferOwnership","inputs":[{"name":"newOwner","type":"address"}]}
]`

const payerABI = `[
{"type":"function","name":"sendOrRegisterDebt","inputs":[{"name":"account","type":"address"},{"name":"amount","type":"uint256"}]},
{"type":"function","name":"payBackDebt","inputs":[{"name":"amount","type":"uint256"}]},
{"type":"function","name":"withdrawPaymentToken","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]},
{"type":"function","name":"transferOwnership","inputs":[{"name":"newOwner","type":"address"}]},
{"type":"function","name":"renounceOwnership","inputs":[]}
]`

const erc20ABI = `[
{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]},
{"type":"function","name":"transferFrom","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]},
{"type":"function","name":"approve","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}]},
{"type":"function","name":"deposit","inputs":[]},
{"type":"function","name":"withdraw","inputs":[{"name":"amount","type":"uint256"}]},
{"type":"function","name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
{"type":"function","name":"allowance","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
{"type":"function","name":"decimals","inputs":[],"outputs":[{"name":"","type":"uint8"}],"stateMutability":"view"},
{"type":"function","name":"symbol","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"}
]`

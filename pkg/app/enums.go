package app

import "github.com/goliatone/go-appgen/pkg/enum"

// Network identifies a supported blockchain network.
type Network string

// AppTag classifies an app.
type AppTag string

// AppAction is a capability an app offers on a network.
type AppAction string

// GroupType is the kind of position a group holds.
type GroupType string

const (
	NetworkEthereumMainnet          Network = "ethereum"
	NetworkPolygonMainnet           Network = "polygon"
	NetworkOptimismMainnet          Network = "optimism"
	NetworkGnosisMainnet            Network = "gnosis"
	NetworkBinanceSmartChainMainnet Network = "binance-smart-chain"
	NetworkFantomOperaMainnet       Network = "fantom"
	NetworkAvalancheMainnet         Network = "avalanche"
	NetworkArbitrumMainnet          Network = "arbitrum"
	NetworkCeloMainnet              Network = "celo"
	NetworkHarmonyMainnet           Network = "harmony"
	NetworkMoonriverMainnet         Network = "moonriver"
	NetworkBitcoinMainnet           Network = "bitcoin"
	NetworkCronosMainnet            Network = "cronos"
	NetworkAuroraMainnet            Network = "aurora"
	NetworkEvmosMainnet             Network = "evmos"
)

const (
	AppTagAssetManagement       AppTag = "asset-management"
	AppTagBonds                 AppTag = "bonds"
	AppTagBridge                AppTag = "bridge"
	AppTagCollectible           AppTag = "collectible"
	AppTagConstruction          AppTag = "construction"
	AppTagCrossChain            AppTag = "cross-chain"
	AppTagDao                   AppTag = "dao"
	AppTagDecentralizedExchange AppTag = "decentralized-exchange"
	AppTagDerivatives           AppTag = "derivatives"
	AppTagElasticFinance        AppTag = "elastic-finance"
	AppTagFarming               AppTag = "farming"
	AppTagFundManager           AppTag = "fund-manager"
	AppTagGaming                AppTag = "gaming"
	AppTagInfrastructure        AppTag = "infrastructure"
	AppTagInsurance             AppTag = "insurance"
	AppTagLaunchpad             AppTag = "launchpad"
	AppTagLending               AppTag = "lending"
	AppTagLeveragedFarming      AppTag = "leveraged-farming"
	AppTagLiquidStaking         AppTag = "liquid-staking"
	AppTagLiquidityPool         AppTag = "liquidity-pool"
	AppTagMarginTrading         AppTag = "margin-trading"
	AppTagNftMarketplace        AppTag = "nft-marketplace"
	AppTagOptions               AppTag = "options"
	AppTagPayments              AppTag = "payments"
	AppTagPerpetualsExchange    AppTag = "perpetuals-exchange"
	AppTagPredictionMarket      AppTag = "prediction-market"
	AppTagPrivacy               AppTag = "privacy"
	AppTagRealEstate            AppTag = "real-estate"
	AppTagStablecoin            AppTag = "stablecoin"
	AppTagStaking               AppTag = "staking"
	AppTagSynthetics            AppTag = "synthetics"
	AppTagYieldAggregator       AppTag = "yield-aggregator"
)

const (
	AppActionView     AppAction = "view"
	AppActionTransact AppAction = "transact"
)

const (
	GroupTypeToken    GroupType = "token"
	GroupTypePosition GroupType = "contract-position"
)

// Networks declares the Network domain. Go constant names are the kind
// followed by the title-cased symbolic name (NetworkEthereumMainnet).
var Networks = enum.MustNew("Network",
	enum.Member[Network]{Name: "ETHEREUM_MAINNET", Value: NetworkEthereumMainnet},
	enum.Member[Network]{Name: "POLYGON_MAINNET", Value: NetworkPolygonMainnet},
	enum.Member[Network]{Name: "OPTIMISM_MAINNET", Value: NetworkOptimismMainnet},
	enum.Member[Network]{Name: "GNOSIS_MAINNET", Value: NetworkGnosisMainnet},
	enum.Member[Network]{Name: "BINANCE_SMART_CHAIN_MAINNET", Value: NetworkBinanceSmartChainMainnet},
	enum.Member[Network]{Name: "FANTOM_OPERA_MAINNET", Value: NetworkFantomOperaMainnet},
	enum.Member[Network]{Name: "AVALANCHE_MAINNET", Value: NetworkAvalancheMainnet},
	enum.Member[Network]{Name: "ARBITRUM_MAINNET", Value: NetworkArbitrumMainnet},
	enum.Member[Network]{Name: "CELO_MAINNET", Value: NetworkCeloMainnet},
	enum.Member[Network]{Name: "HARMONY_MAINNET", Value: NetworkHarmonyMainnet},
	enum.Member[Network]{Name: "MOONRIVER_MAINNET", Value: NetworkMoonriverMainnet},
	enum.Member[Network]{Name: "BITCOIN_MAINNET", Value: NetworkBitcoinMainnet},
	enum.Member[Network]{Name: "CRONOS_MAINNET", Value: NetworkCronosMainnet},
	enum.Member[Network]{Name: "AURORA_MAINNET", Value: NetworkAuroraMainnet},
	enum.Member[Network]{Name: "EVMOS_MAINNET", Value: NetworkEvmosMainnet},
)

// AppTags declares the AppTag domain.
var AppTags = enum.MustNew("AppTag",
	enum.Member[AppTag]{Name: "ASSET_MANAGEMENT", Value: AppTagAssetManagement},
	enum.Member[AppTag]{Name: "BONDS", Value: AppTagBonds},
	enum.Member[AppTag]{Name: "BRIDGE", Value: AppTagBridge},
	enum.Member[AppTag]{Name: "COLLECTIBLE", Value: AppTagCollectible},
	enum.Member[AppTag]{Name: "CONSTRUCTION", Value: AppTagConstruction},
	enum.Member[AppTag]{Name: "CROSS_CHAIN", Value: AppTagCrossChain},
	enum.Member[AppTag]{Name: "DAO", Value: AppTagDao},
	enum.Member[AppTag]{Name: "DECENTRALIZED_EXCHANGE", Value: AppTagDecentralizedExchange},
	enum.Member[AppTag]{Name: "DERIVATIVES", Value: AppTagDerivatives},
	enum.Member[AppTag]{Name: "ELASTIC_FINANCE", Value: AppTagElasticFinance},
	enum.Member[AppTag]{Name: "FARMING", Value: AppTagFarming},
	enum.Member[AppTag]{Name: "FUND_MANAGER", Value: AppTagFundManager},
	enum.Member[AppTag]{Name: "GAMING", Value: AppTagGaming},
	enum.Member[AppTag]{Name: "INFRASTRUCTURE", Value: AppTagInfrastructure},
	enum.Member[AppTag]{Name: "INSURANCE", Value: AppTagInsurance},
	enum.Member[AppTag]{Name: "LAUNCHPAD", Value: AppTagLaunchpad},
	enum.Member[AppTag]{Name: "LENDING", Value: AppTagLending},
	enum.Member[AppTag]{Name: "LEVERAGED_FARMING", Value: AppTagLeveragedFarming},
	enum.Member[AppTag]{Name: "LIQUID_STAKING", Value: AppTagLiquidStaking},
	enum.Member[AppTag]{Name: "LIQUIDITY_POOL", Value: AppTagLiquidityPool},
	enum.Member[AppTag]{Name: "MARGIN_TRADING", Value: AppTagMarginTrading},
	enum.Member[AppTag]{Name: "NFT_MARKETPLACE", Value: AppTagNftMarketplace},
	enum.Member[AppTag]{Name: "OPTIONS", Value: AppTagOptions},
	enum.Member[AppTag]{Name: "PAYMENTS", Value: AppTagPayments},
	enum.Member[AppTag]{Name: "PERPETUALS_EXCHANGE", Value: AppTagPerpetualsExchange},
	enum.Member[AppTag]{Name: "PREDICTION_MARKET", Value: AppTagPredictionMarket},
	enum.Member[AppTag]{Name: "PRIVACY", Value: AppTagPrivacy},
	enum.Member[AppTag]{Name: "REAL_ESTATE", Value: AppTagRealEstate},
	enum.Member[AppTag]{Name: "STABLECOIN", Value: AppTagStablecoin},
	enum.Member[AppTag]{Name: "STAKING", Value: AppTagStaking},
	enum.Member[AppTag]{Name: "SYNTHETICS", Value: AppTagSynthetics},
	enum.Member[AppTag]{Name: "YIELD_AGGREGATOR", Value: AppTagYieldAggregator},
)

// AppActions declares the AppAction domain.
var AppActions = enum.MustNew("AppAction",
	enum.Member[AppAction]{Name: "VIEW", Value: AppActionView},
	enum.Member[AppAction]{Name: "TRANSACT", Value: AppActionTransact},
)

// GroupTypes declares the GroupType domain.
var GroupTypes = enum.MustNew("GroupType",
	enum.Member[GroupType]{Name: "TOKEN", Value: GroupTypeToken},
	enum.Member[GroupType]{Name: "POSITION", Value: GroupTypePosition},
)

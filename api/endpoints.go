package api

// Pools endpoints
var (
	poolInfoByIDs     = Endpoint[[]any]{Path: "/pools/info/ids", Param: "ids", Key: "pools", Default: emptyList}
	poolInfoByLPs     = Endpoint[[]any]{Path: "/pools/info/lps", Param: "lpMints", Key: "pools", Default: emptyList}
	poolList          = Endpoint[[]any]{Path: "/pools/info/list", Key: "pools", Default: emptyList}
	poolInfoByMint    = Endpoint[[]any]{Path: "/pools/info/mint", Param: "tokenMints", Key: "pools", Default: emptyList}
	poolKeysByIDs     = Endpoint[[]any]{Path: "/pools/key/ids", Param: "ids", Key: "keys", Default: emptyList}
	poolLiquidityLine = Endpoint[[]any]{Path: "/pools/line/liquidity", Param: "ids", Key: "liquidityHistory", Default: emptyList}
	poolPositionLine  = Endpoint[[]any]{Path: "/pools/line/position", Param: "ids", Key: "positionHistory", Default: emptyList}
)

// Farms endpoints
var (
	farmInfoByIDs = Endpoint[[]any]{Path: "/farms/info/ids", Param: "ids", Key: "farms", Default: emptyList}
	farmInfoByLPs = Endpoint[[]any]{Path: "/farms/info/lp", Param: "lpMints", Key: "farms", Default: emptyList}
	farmKeysByIDs = Endpoint[[]any]{Path: "/farms/key/ids", Param: "ids", Key: "keys", Default: emptyList}
)

// Mint endpoints
var (
	mintList  = Endpoint[[]any]{Path: "/mint/list", Key: "mints", Default: emptyList}
	mintInfo  = Endpoint[[]any]{Path: "/mint/ids", Param: "mints", Key: "mints", Default: emptyList}
	mintPrice = Endpoint[map[string]any]{Path: "/mint/price", Param: "mints", Key: "data", Default: emptyMap}
)

// IDO endpoints
var (
	idoKeysByIDs = Endpoint[[]any]{Path: "/ido/key/ids", Param: "ids", Key: "keys", Default: emptyList}
)

// Main endpoints
var (
	mainVersion    = Endpoint[string]{Path: "/main/version", Key: "version", Default: unknown}
	mainRPCs       = Endpoint[[]any]{Path: "/main/rpcs", Key: "rpcs", Default: emptyList}
	mainChainTime  = Endpoint[string]{Path: "/main/chain-time", Key: "chainTime", Default: unknown}
	mainInfo       = Endpoint[ProtocolInfo]{Path: "/main/info", Default: zeroInfo}
	mainStakePools = Endpoint[[]any]{Path: "/main/stake-pools", Key: "stakePools", Default: emptyList}
	mainMigrateLP  = Endpoint[[]any]{Path: "/main/migrate-lp", Key: "pools", Default: emptyList}
	mainAutoFee    = Endpoint[[]any]{Path: "/main/auto-fee", Key: "fees", Default: emptyList}
	mainClmmConfig = Endpoint[map[string]any]{Path: "/main/clmm-config", Key: "config", Default: emptyMap}
	mainCpmmConfig = Endpoint[map[string]any]{Path: "/main/cpmm-config", Key: "config", Default: emptyMap}
)

// Catalog lists every endpoint the client knows, in façade order.
func Catalog() []Descriptor {
	return []Descriptor{
		poolInfoByIDs.Descriptor(),
		poolInfoByLPs.Descriptor(),
		poolList.Descriptor(),
		poolInfoByMint.Descriptor(),
		poolKeysByIDs.Descriptor(),
		poolLiquidityLine.Descriptor(),
		poolPositionLine.Descriptor(),
		farmInfoByIDs.Descriptor(),
		farmInfoByLPs.Descriptor(),
		farmKeysByIDs.Descriptor(),
		mintList.Descriptor(),
		mintInfo.Descriptor(),
		mintPrice.Descriptor(),
		idoKeysByIDs.Descriptor(),
		mainVersion.Descriptor(),
		mainRPCs.Descriptor(),
		mainChainTime.Descriptor(),
		mainInfo.Descriptor(),
		mainStakePools.Descriptor(),
		mainMigrateLP.Descriptor(),
		mainAutoFee.Descriptor(),
		mainClmmConfig.Descriptor(),
		mainCpmmConfig.Descriptor(),
	}
}

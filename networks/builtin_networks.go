package networks

var EthereumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "mainnet",
	AlternativeNames:  []string{"ethereum"},
	ChainID:           1,
	NativeTokenSymbol: "ETH",
	NodeVariableName:  "ETHEREUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"mainnet-llamarpc":   "https://eth.llamarpc.com",
		"mainnet-publicnode": "https://ethereum-rpc.publicnode.com",
	},
})

var Sepolia Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "sepolia",
	AlternativeNames:  []string{},
	ChainID:           11155111,
	NativeTokenSymbol: "ETH",
	NodeVariableName:  "ETHEREUM_SEPOLIA_NODE",
	DefaultNodes: map[string]string{
		"sepolia-publicnode": "https://ethereum-sepolia-rpc.publicnode.com",
	},
})

var BSCMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "bsc",
	AlternativeNames:  []string{"binance"},
	ChainID:           56,
	NativeTokenSymbol: "BNB",
	NodeVariableName:  "BSC_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"binance":  "https://bsc-dataseed.binance.org",
		"defibit":  "https://bsc-dataseed1.defibit.io",
		"ninicoin": "https://bsc-dataseed1.ninicoin.io",
	},
})

var Polygon Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "polygon",
	AlternativeNames:  []string{"matic"},
	ChainID:           137,
	NativeTokenSymbol: "POL",
	NodeVariableName:  "POLYGON_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"polygon-official": "https://polygon-rpc.com",
	},
})

var ArbitrumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "arbitrum",
	AlternativeNames:  []string{},
	ChainID:           42161,
	NativeTokenSymbol: "ETH",
	NodeVariableName:  "ARBITRUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"arbitrum-official": "https://arb1.arbitrum.io/rpc",
	},
})

var OptimismMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "optimism",
	AlternativeNames:  []string{"op"},
	ChainID:           10,
	NativeTokenSymbol: "ETH",
	NodeVariableName:  "OPTIMISM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"optimism-official": "https://mainnet.optimism.io",
	},
})

var BaseMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "base",
	AlternativeNames:  []string{},
	ChainID:           8453,
	NativeTokenSymbol: "ETH",
	NodeVariableName:  "BASE_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"public-base": "https://mainnet.base.org",
	},
})

var Avalanche Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "avalanche",
	AlternativeNames:  []string{"avax"},
	ChainID:           43114,
	NativeTokenSymbol: "AVAX",
	NodeVariableName:  "AVAX_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"avax-official": "https://api.avax.network/ext/bc/C/rpc",
	},
})

var GnosisChain Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "gnosis",
	AlternativeNames:  []string{"xdai"},
	ChainID:           100,
	NativeTokenSymbol: "XDAI",
	NodeVariableName:  "GNOSIS_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"gnosis-official": "https://rpc.gnosischain.com",
	},
})

var ZkSyncEra Network = NewGenericNetwork(GenericNetworkConfig{
	Name:              "zksync",
	AlternativeNames:  []string{"zksync-era"},
	ChainID:           324,
	NativeTokenSymbol: "ETH",
	NodeVariableName:  "ZKSYNC_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"zksync-official": "https://mainnet.era.zksync.io",
	},
})

package deployer

import (
	"github.com/urfave/cli/v2"

	"github.com/roothash-pay/nft-forge/pkg/service"
	svclog "github.com/roothash-pay/nft-forge/pkg/service/log"
)

const EnvVarPrefix = "NFT_FORGE"

var (
	WorkdirFlag = &cli.StringFlag{
		Name:    "workdir",
		Usage:   "Directory the project is generated into, also storing intent and state.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "WORKDIR"),
		Value:   "nft-project",
		Aliases: []string{"outdir"},
	}
	TokenNameFlag = &cli.StringFlag{
		Name:    "token-name",
		Usage:   "Display name of the ERC-721 token. Prompted for when omitted.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "TOKEN_NAME"),
	}
	TokenSymbolFlag = &cli.StringFlag{
		Name:    "token-symbol",
		Usage:   "Symbol of the ERC-721 token. Prompted for when omitted.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "TOKEN_SYMBOL"),
	}
	NetworkNameFlag = &cli.StringFlag{
		Name:    "network-name",
		Usage:   "Name of the target network in the generated config.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "NETWORK_NAME"),
	}
	RPCURLFlag = &cli.StringFlag{
		Name:    "rpc-url",
		Usage:   "RPC URL of the target network.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "RPC_URL"),
	}
	ChainIDFlag = &cli.Uint64Flag{
		Name:    "chain-id",
		Usage:   "Chain ID of the target network.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "CHAIN_ID"),
	}
	SolidityVersionFlag = &cli.StringFlag{
		Name:    "solidity-version",
		Usage:   "Solidity compiler version for the generated project.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "SOLIDITY_VERSION"),
	}
	ExplorerTxURLFlag = &cli.StringFlag{
		Name:    "explorer-tx-url",
		Usage:   "Explorer URL base a transaction hash is appended to in the mint log.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "EXPLORER_TX_URL"),
	}
	PrivateKeyFlag = &cli.StringFlag{
		Name:    "private-key",
		Usage:   "Deploy account private key. Prompted for when omitted.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "PRIVATE_KEY"),
	}
	StageFlag = &cli.StringFlag{
		Name:    "stage",
		Usage:   "Re-enter the pipeline at the named stage instead of the start.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "STAGE"),
	}
)

var GlobalFlags = svclog.CLIFlags(EnvVarPrefix)

var InitFlags = []cli.Flag{
	WorkdirFlag,
	TokenNameFlag,
	TokenSymbolFlag,
	NetworkNameFlag,
	RPCURLFlag,
	ChainIDFlag,
	SolidityVersionFlag,
	ExplorerTxURLFlag,
}

var ApplyFlags = []cli.Flag{
	WorkdirFlag,
	PrivateKeyFlag,
	StageFlag,
}

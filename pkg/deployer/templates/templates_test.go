package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderContract(t *testing.T) {
	t.Run("substitutes name then symbol", func(t *testing.T) {
		src, err := RenderContract(ContractParams{
			Name:            "Demo",
			Symbol:          "DNFT",
			SolidityVersion: "0.8.24",
		})
		require.NoError(t, err)
		require.Contains(t, src, `ERC721("Demo", "DNFT")`)
		require.Contains(t, src, "pragma solidity ^0.8.24;")
		require.Contains(t, src, "function mintTo(address recipient) external onlyOwner returns (uint256)")
		require.Contains(t, src, "function burn(uint256 tokenId) external")
		require.Contains(t, src, "event Minted(address indexed recipient, uint256 tokenId);")
	})

	t.Run("escapes quotes in name", func(t *testing.T) {
		src, err := RenderContract(ContractParams{
			Name:            `De"mo`,
			Symbol:          "DNFT",
			SolidityVersion: "0.8.24",
		})
		require.NoError(t, err)
		require.Contains(t, src, `ERC721("De\"mo", "DNFT")`)
	})

	t.Run("escapes backslashes", func(t *testing.T) {
		src, err := RenderContract(ContractParams{
			Name:            `De\mo`,
			Symbol:          "DNFT",
			SolidityVersion: "0.8.24",
		})
		require.NoError(t, err)
		require.Contains(t, src, `ERC721("De\\mo", "DNFT")`)
	})

	t.Run("rejects non-version pragma input", func(t *testing.T) {
		_, err := RenderContract(ContractParams{
			Name:            "Demo",
			Symbol:          "DNFT",
			SolidityVersion: `0.8.24"; import "evil`,
		})
		require.Error(t, err)
	})
}

func TestRenderHardhatConfig(t *testing.T) {
	cfg, err := RenderHardhatConfig(HardhatConfigParams{
		SolidityVersion: "0.8.24",
		NetworkName:     "sapphire-testnet",
		RPCURL:          "https://testnet.sapphire.oasis.io",
		ChainID:         23295,
	})
	require.NoError(t, err)
	require.Contains(t, cfg, `defaultNetwork: "sapphire-testnet"`)
	require.Contains(t, cfg, `solidity: "0.8.24"`)
	require.Contains(t, cfg, `url: "https://testnet.sapphire.oasis.io"`)
	require.Contains(t, cfg, "chainId: 23295")
	require.Contains(t, cfg, "accounts: [process.env.PRIVATE_KEY]")
}

func TestRenderDeployScript(t *testing.T) {
	script, err := RenderDeployScript(DeployScriptParams{
		ContractName: ContractName,
		AddressFile:  "contract-address.js",
	})
	require.NoError(t, err)
	require.Contains(t, script, `getContractFactory("ForgeNFT")`)
	require.Contains(t, script, `fs.writeFileSync("contract-address.js"`)
}

func TestRenderMintScript(t *testing.T) {
	script, err := RenderMintScript(MintScriptParams{
		ContractName:  ContractName,
		AddressFile:   "contract-address.js",
		MintLogFile:   "mint.log",
		ExplorerTxURL: "https://explorer.oasis.io/testnet/sapphire/tx/",
	})
	require.NoError(t, err)
	require.Contains(t, script, `getContractAt("ForgeNFT", address)`)
	require.Contains(t, script, `fs.appendFileSync("mint.log"`)
	require.True(t, strings.Contains(script, "NFT ID "))
}

// Package templates renders the project files the external toolchain
// consumes: the hardhat network config, the ERC-721 contract source, and
// the deploy and mint scripts. All operator-supplied values pass through an
// escaping function for the target format, so a name containing a quote
// produces a valid file instead of corrupting it.
package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// ContractName is the fixed Solidity identifier of the generated contract.
// Operator input only ever lands inside string literals, never in
// identifier position.
const ContractName = "ForgeNFT"

var funcs = template.FuncMap{
	"js":  template.JSEscapeString,
	"sol": solEscape,
}

// solEscape escapes a value for use inside a Solidity double-quoted string
// literal. Control characters are rejected upstream by intent validation.
func solEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func render(name, body string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return buf.String(), nil
}

// HardhatConfigParams parameterizes the network configuration file.
type HardhatConfigParams struct {
	SolidityVersion string
	NetworkName     string
	RPCURL          string
	ChainID         uint64
}

const hardhatConfigTemplate = `require("@oasisprotocol/sapphire-hardhat");
require("@nomicfoundation/hardhat-toolbox");
require("dotenv").config();

module.exports = {
  defaultNetwork: "{{js .NetworkName}}",
  solidity: "{{js .SolidityVersion}}",
  networks: {
    "{{js .NetworkName}}": {
      url: "{{js .RPCURL}}",
      chainId: {{.ChainID}},
      accounts: [process.env.PRIVATE_KEY],
    },
  },
};
`

func RenderHardhatConfig(p HardhatConfigParams) (string, error) {
	return render("hardhat-config", hardhatConfigTemplate, p)
}

// ContractParams parameterizes the ERC-721 source file. Name and Symbol are
// substituted as string literals in that order into the token constructor.
type ContractParams struct {
	Name            string
	Symbol          string
	SolidityVersion string
}

const contractTemplate = `// SPDX-License-Identifier: MIT
pragma solidity ^{{.SolidityVersion}};

import "@openzeppelin/contracts/token/ERC721/ERC721.sol";
import "@openzeppelin/contracts/access/Ownable.sol";

contract ` + ContractName + ` is ERC721, Ownable {
    uint256 private _nextTokenId;

    event Minted(address indexed recipient, uint256 tokenId);

    constructor() ERC721("{{sol .Name}}", "{{sol .Symbol}}") Ownable(msg.sender) {}

    function mintTo(address recipient) external onlyOwner returns (uint256) {
        uint256 tokenId = _nextTokenId++;
        _safeMint(recipient, tokenId);
        emit Minted(recipient, tokenId);
        return tokenId;
    }

    function burn(uint256 tokenId) external {
        require(ownerOf(tokenId) == msg.sender, "caller is not the token owner");
        _burn(tokenId);
    }
}
`

func RenderContract(p ContractParams) (string, error) {
	if err := checkSolidityVersion(p.SolidityVersion); err != nil {
		return "", err
	}
	return render("contract", contractTemplate, p)
}

// checkSolidityVersion keeps the pragma slot to version-shaped input, since
// it sits outside any string literal and cannot be escaped.
func checkSolidityVersion(v string) error {
	for _, r := range v {
		if (r < '0' || r > '9') && r != '.' {
			return fmt.Errorf("invalid solidity version %q", v)
		}
	}
	if v == "" {
		return fmt.Errorf("solidity version must not be empty")
	}
	return nil
}

// DeployScriptParams parameterizes the deployment script. AddressFile is
// the project-relative path the script writes the deployed address to.
type DeployScriptParams struct {
	ContractName string
	AddressFile  string
}

const deployScriptTemplate = `const fs = require("fs");
const hre = require("hardhat");

async function main() {
  const factory = await hre.ethers.getContractFactory("{{js .ContractName}}");
  const contract = await factory.deploy();
  await contract.waitForDeployment();
  const address = await contract.getAddress();
  fs.writeFileSync("{{js .AddressFile}}", 'module.exports = "' + address + '";\n');
  console.log("deployed to", address);
}

main().catch((err) => {
  console.error(err);
  process.exit(1);
});
`

func RenderDeployScript(p DeployScriptParams) (string, error) {
	return render("deploy-script", deployScriptTemplate, p)
}

// MintScriptParams parameterizes the mint script. The script reads the
// deployed address, mints one token to the deployer account, and appends a
// line to the mint log.
type MintScriptParams struct {
	ContractName  string
	AddressFile   string
	MintLogFile   string
	ExplorerTxURL string
}

const mintScriptTemplate = `const fs = require("fs");
const path = require("path");
const hre = require("hardhat");

async function main() {
  const address = require(path.resolve("{{js .AddressFile}}"));
  if (!address) {
    throw new Error("contract address file is empty");
  }
  const contract = await hre.ethers.getContractAt("{{js .ContractName}}", address);
  const [signer] = await hre.ethers.getSigners();
  const tx = await contract.mintTo(signer.address);
  const receipt = await tx.wait();
  const minted = receipt.logs
    .map((l) => {
      try {
        return contract.interface.parseLog(l);
      } catch {
        return null;
      }
    })
    .find((e) => e && e.name === "Minted");
  if (!minted) {
    throw new Error("no Minted event in receipt");
  }
  const tokenId = minted.args.tokenId.toString();
  fs.appendFileSync("{{js .MintLogFile}}", "NFT ID " + tokenId + " : {{js .ExplorerTxURL}}" + tx.hash + "\n");
  console.log("minted token", tokenId, "in", tx.hash);
}

main().catch((err) => {
  console.error(err);
  process.exit(1);
});
`

func RenderMintScript(p MintScriptParams) (string, error) {
	return render("mint-script", mintScriptTemplate, p)
}

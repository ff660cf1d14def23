package gen

import (
	"fmt"
	"strings"
)

// deployTimestampPlaceholder marks where a deployment pipeline should stamp
// the actual deploy time. It is a constant, so script generation stays
// deterministic.
const deployTimestampPlaceholder = "<pending-deployment-timestamp>"

// networkChains maps network names to genlayer-js chain identifiers.
// Unknown networks fall back to studionet.
var networkChains = map[string]string{
	"studionet": "studionet",
	"testnet":   "testnetAsimov",
	"localnet":  "localnet",
}

// deployScriptTemplate renders a genlayer-js deployment script.
// %s order: contract name, timestamp placeholder, contract name (file path),
// chain, args.
const deployScriptTemplate = `// Deployment script for %s
// deployed-at: %s
import { createClient, createAccount } from "genlayer-js";
import { %s } from "genlayer-js/chains";
import fs from "fs";

const contractCode = fs.readFileSync("contracts/%s.py", "utf-8");

async function deploy() {
  const account = createAccount();
  const client = createClient({ chain: %s, account });

  const txHash = await client.deployContract({
    code: contractCode,
    args: [%s],
  });
  console.log("Deployment transaction:", txHash);

  const receipt = await client.waitForTransactionReceipt({
    hash: txHash,
    status: "FINALIZED",
  });
  console.log("Contract address:", receipt.data?.contract_address);
}

deploy().catch((err) => {
  console.error("Deployment failed:", err);
  process.exit(1);
});
`

// GenerateDeploymentScript renders a TypeScript deployment script for a
// generated contract. Constructor argument values are rendered according to
// their declared type: strings quoted, numbers and booleans raw.
func GenerateDeploymentScript(contractName string, args []ConstructorArgSpec, network string) string {
	chain, ok := networkChains[strings.ToLower(network)]
	if !ok {
		chain = networkChains["studionet"]
	}

	rendered := make([]string, 0, len(args))
	for _, a := range args {
		rendered = append(rendered, renderConstructorArg(a))
	}

	return fmt.Sprintf(deployScriptTemplate,
		contractName, deployTimestampPlaceholder, chain, contractName, chain,
		strings.Join(rendered, ", "))
}

func renderConstructorArg(a ConstructorArgSpec) string {
	switch MapType(a.Type) {
	case "u256", "f64":
		return a.Value
	case "bool":
		switch strings.ToLower(a.Value) {
		case "true", "1":
			return "true"
		default:
			return "false"
		}
	default:
		return fmt.Sprintf("%q", a.Value)
	}
}

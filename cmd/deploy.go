package cmd

import (
	"fmt"

	"github.com/ericglau/nile/internal/starknet"
	"github.com/ericglau/nile/internal/ui"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var (
	deployMaxFee string
	deployToken  string
	deploySalt   string
)

var deployCmd = &cobra.Command{
	Use:   "deploy <contract> [param...]",
	Short: "Deploy a compiled contract",
	Long: `Deploy a compiled contract class to the selected network.

Constructor parameters are classified automatically: decimal integers and
0x addresses pass through unchanged, anything else is treated as a short
string and felt-encoded.

Examples:
  nile deploy token 1000 MYT --network localhost
  nile deploy token 1000 MYT --network mainnet --token <whitelist-token>`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contractName := args[0]
		params := toAnySlice(args[1:])

		var extra []string
		if deploySalt != "" {
			extra = append(extra, "--salt", deploySalt)
		}

		command, err := builder.Build("deploy", netName, starknet.Options{
			ContractName: contractName,
			Inputs:       params,
			MaxFee:       deployMaxFee,
			MainnetToken: deployToken,
			Arguments:    extra,
		})
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Deploying %s to %s...", contractName, netName))
		spin.Start()
		output := runner.Run(command)
		spin.Stop()

		if output == "" {
			return fmt.Errorf("deployment of %q did not succeed", contractName)
		}

		receipt, err := starknet.ParseReceipt(output)
		if err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Deployed %s to %s", contractName, ui.Network(netName))))
		fmt.Println("  address:", ui.Addr(hexutil.EncodeBig(receipt.Address)))
		fmt.Println("  tx hash:", ui.Addr(hexutil.EncodeBig(receipt.TxHash)))
		fmt.Println(ui.Hint("watch it with: nile status " + hexutil.EncodeBig(receipt.TxHash) + " --watch"))
		return nil
	},
}

// toAnySlice widens positional CLI params for the encoder.
func toAnySlice(params []string) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = p
	}
	return out
}

func init() {
	deployCmd.Flags().StringVar(&deployMaxFee, "max_fee", "", "maximum transaction fee")
	deployCmd.Flags().StringVar(&deployToken, "token", "", "alpha-mainnet whitelisting token")
	deployCmd.Flags().StringVar(&deploySalt, "salt", "", "address salt")
}

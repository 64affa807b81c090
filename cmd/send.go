package cmd

import (
	"fmt"

	"github.com/ericglau/nile/internal/accounts"
	"github.com/ericglau/nile/internal/starknet"
	"github.com/ericglau/nile/internal/ui"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var (
	sendMaxFee    string
	sendQuery     string
	sendSignature []string
)

var sendCmd = &cobra.Command{
	Use:   "send <contract> <address|alias> <method> [param...]",
	Short: "Invoke a state-changing contract method",
	Long: `Invoke an external method on a deployed contract. The target can
be a literal 0x address or an alias registered with "nile account add".

Use --query simulate or --query estimate_fee to request a simulation
instead of a submission.

Examples:
  nile send token 0x1a2b transfer 0x3c4d 1000 0
  nile send token deployer transfer 0x3c4d 1000 0 --max_fee 86000000000000
  nile send token deployer transfer 0x3c4d 1000 0 --query estimate_fee`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		contractName, target, method := args[0], args[1], args[2]
		params := toAnySlice(args[3:])

		address, err := resolveTarget(target)
		if err != nil {
			return err
		}

		opts := starknet.Options{
			Inputs:    params,
			MaxFee:    sendMaxFee,
			QueryFlag: sendQuery,
			Arguments: invocationArguments(contractName, address, method),
		}
		if len(sendSignature) > 0 {
			opts.Signature = toAnySlice(sendSignature)
		}

		command, err := builder.Build("invoke", netName, opts)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Invoking %s on %s...", method, netName))
		spin.Start()
		output := runner.Run(command)
		spin.Stop()

		if output == "" {
			return fmt.Errorf("invocation of %s.%s did not succeed", contractName, method)
		}

		// Simulations and fee estimates print a report, not the two-field
		// receipt.
		if sendQuery != "" {
			fmt.Println(ui.Meta(fmt.Sprintf("%s at transaction version %s (not submitted)", sendQuery, starknet.QueryVersion)))
			fmt.Println(output)
			return nil
		}

		receipt, err := starknet.ParseReceipt(output)
		if err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Invoked %s.%s on %s", contractName, method, ui.Network(netName))))
		fmt.Println("  tx hash:", ui.Addr(hexutil.EncodeBig(receipt.TxHash)))
		return nil
	},
}

// invocationArguments builds the pass-through argument block shared by
// invoke and call.
func invocationArguments(contractName, address, method string) []string {
	return []string{
		"--address", address,
		"--abi", builder.Layout.ABIPath(contractName),
		"--function", method,
	}
}

// resolveTarget maps an alias through the account registry; literal
// addresses pass through.
func resolveTarget(target string) (string, error) {
	reg, err := accounts.LoadRegistry(configDirOrDot())
	if err != nil {
		return "", err
	}
	return reg.Resolve(target)
}

func configDirOrDot() string {
	if cfgDir == "" {
		return "."
	}
	return cfgDir
}

func init() {
	sendCmd.Flags().StringVar(&sendMaxFee, "max_fee", "", "maximum transaction fee")
	sendCmd.Flags().StringVar(&sendQuery, "query", "", "query flag: simulate or estimate_fee")
	sendCmd.Flags().StringSliceVar(&sendSignature, "signature", nil, "transaction signature components")
}

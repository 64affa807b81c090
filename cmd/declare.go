package cmd

import (
	"fmt"

	"github.com/ericglau/nile/internal/starknet"
	"github.com/ericglau/nile/internal/ui"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var (
	declareMaxFee    string
	declareToken     string
	declareSignature []string
)

var declareCmd = &cobra.Command{
	Use:   "declare <contract>",
	Short: "Declare a contract class",
	Long: `Declare a compiled contract class so it can be deployed by class
hash. The declaration is sent without a wallet; pass an externally computed
signature with --signature r s when the network requires one.

Examples:
  nile declare token
  nile declare token --max_fee 86000000000000 --signature 0x1 0x2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contractName := args[0]

		opts := starknet.Options{
			ContractName: contractName,
			MaxFee:       declareMaxFee,
			MainnetToken: declareToken,
		}
		if len(declareSignature) > 0 {
			opts.Signature = toAnySlice(declareSignature)
		}

		command, err := builder.Build("declare", netName, opts)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Declaring %s on %s...", contractName, netName))
		spin.Start()
		output := runner.Run(command)
		spin.Stop()

		if output == "" {
			return fmt.Errorf("declaration of %q did not succeed", contractName)
		}

		receipt, err := starknet.ParseReceipt(output)
		if err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Declared %s on %s", contractName, ui.Network(netName))))
		fmt.Println("  class hash:", ui.Addr(hexutil.EncodeBig(receipt.Address)))
		fmt.Println("  tx hash:   ", ui.Addr(hexutil.EncodeBig(receipt.TxHash)))
		return nil
	},
}

func init() {
	declareCmd.Flags().StringVar(&declareMaxFee, "max_fee", "", "maximum transaction fee")
	declareCmd.Flags().StringVar(&declareToken, "token", "", "alpha-mainnet whitelisting token")
	declareCmd.Flags().StringSliceVar(&declareSignature, "signature", nil, "transaction signature components")
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ericglau/nile/internal/starknet"
	"github.com/ericglau/nile/internal/ui"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var addressesCmd = &cobra.Command{
	Use:   "addresses [file]",
	Short: "Extract distinct addresses from free text",
	Long: `Scan a file (or stdin) for hex tokens and print every distinct
address found. Useful for pulling addresses out of tool output or logs.

Examples:
  nile addresses deploy.log
  starknet get_transaction --hash 0x3c4d | nile addresses`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return err
		}

		found := starknet.ExtractAddresses(string(data))
		for _, addr := range found {
			fmt.Println(ui.Addr(hexutil.EncodeBig(addr)))
		}
		fmt.Println(ui.Meta(fmt.Sprintf("%d distinct addresses", len(found))))
		return nil
	},
}

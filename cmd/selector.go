package cmd

import (
	"fmt"

	"github.com/ericglau/nile/internal/starknet"
	"github.com/ericglau/nile/internal/ui"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var selectorCmd = &cobra.Command{
	Use:   "selector <function-name>",
	Short: "Compute an entry-point selector",
	Long: `Compute the StarkNet entry-point selector for a function name
(keccak-256 truncated to 250 bits).

Example:
  nile selector transfer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := starknet.Selector(args[0])
		fmt.Println(ui.Addr(hexutil.EncodeBig(sel)))
		return nil
	},
}

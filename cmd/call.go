package cmd

import (
	"fmt"

	"github.com/ericglau/nile/internal/starknet"
	"github.com/ericglau/nile/internal/ui"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <contract> <address|alias> <method> [param...]",
	Short: "Call a read-only contract method",
	Long: `Call a view method on a deployed contract and print the raw
result felts.

Examples:
  nile call token 0x1a2b balanceOf 0x3c4d
  nile call token deployer name`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		contractName, target, method := args[0], args[1], args[2]
		params := toAnySlice(args[3:])

		address, err := resolveTarget(target)
		if err != nil {
			return err
		}

		command, err := builder.Build("call", netName, starknet.Options{
			Inputs:    params,
			Arguments: invocationArguments(contractName, address, method),
		})
		if err != nil {
			return err
		}

		output := runner.Run(command)
		if output == "" {
			return fmt.Errorf("call to %s.%s did not succeed", contractName, method)
		}

		fmt.Println(ui.Meta(contractName + "." + method + " →"))
		fmt.Println(output)
		return nil
	},
}

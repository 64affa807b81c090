package cmd

import (
	"fmt"

	"github.com/ericglau/nile/internal/ui"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage the gateway registry",
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := ui.NewTable([]ui.Column{
			{Title: "Network", Width: 16},
			{Title: "Gateway", Width: 48},
		})
		for _, name := range gateways.Names() {
			url, _ := gateways.URL(name)
			t.AddRow(ui.Row{name, url})
		}
		fmt.Println(t.Render())
		fmt.Println(ui.Meta(`"mainnet" and "goerli" are built into the starknet tool and need no registry entry`))
		return nil
	},
}

var networkAddCmd = &cobra.Command{
	Use:   "add <name> <gateway-url>",
	Short: "Register a custom network",
	Long: `Register a custom network gateway. The entry takes effect for
subsequent nile invocations.

Example:
  nile network add devnet http://localhost:9999/`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, url := args[0], args[1]
		if err := gateways.Add(name, url); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Registered %s → %s", ui.Network(name), url)))
		return nil
	},
}

func init() {
	networkCmd.AddCommand(networkListCmd, networkAddCmd)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericglau/nile/internal/artifacts"
	"github.com/ericglau/nile/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a nile project in the current directory",
	Long: `Create the project skeleton: a contracts/ directory for Cairo
sources and the gateway registry (node.json) with its default entries.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.Banner())

		dir := cfgDir
		if dir == "" {
			dir = "."
		}
		contractsDir := filepath.Join(dir, artifacts.ContractsDirectory)
		if err := os.MkdirAll(contractsDir, 0o755); err != nil {
			return fmt.Errorf("creating contracts directory: %w", err)
		}

		// The registry was already bootstrapped by the root command's
		// config load; report both.
		fmt.Println(ui.Success("created " + contractsDir + "/"))
		fmt.Println(ui.Success("gateway registry ready with networks: " + strings.Join(gateways.Names(), ", ")))
		fmt.Println(ui.Hint("put your .cairo sources under " + contractsDir + "/ and compile them to " + artifacts.BuildDirectory + "/"))
		return nil
	},
}

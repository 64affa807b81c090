// Package cmd wires the nile CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/ericglau/nile/internal/config"
	"github.com/ericglau/nile/internal/network"
	"github.com/ericglau/nile/internal/starknet"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/ericglau/nile/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir  string
	netName string
	verbose bool

	gateways *config.Gateways
	resolver *network.Resolver
	builder  *starknet.Builder
	runner   *starknet.Runner
	logger   zerolog.Logger
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "nile",
	Short: "StarkNet development workflows",
	Long: `nile — deploy, declare and interact with StarkNet contracts by
driving the starknet transaction tool.

The gateway registry (node.json) lives in the project directory and is
created with local/testnet defaults on first use. Select a target with
--network; "mainnet" and "goerli" are built into the starknet tool itself,
every other name resolves through the registry.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(verbose)

		switch cmd.Name() {
		case "help", "completion", "version":
			return nil
		}

		var err error
		gateways, err = config.LoadGateways(cfgDir)
		if err != nil {
			return fmt.Errorf("loading gateway registry: %w", err)
		}
		resolver = network.NewResolver(gateways)
		builder = starknet.NewBuilder(resolver)
		runner = starknet.NewRunner(logger)
		return nil
	},
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// NILE_CONFIG_DIR env var overrides the flag default.
	if envDir := os.Getenv("NILE_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "project config directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&netName, "network", "localhost", "target network name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		initCmd,
		deployCmd,
		declareCmd,
		sendCmd,
		callCmd,
		statusCmd,
		networkCmd,
		contractsCmd,
		accountCmd,
		selectorCmd,
		addressesCmd,
		versionCmd,
	)
}

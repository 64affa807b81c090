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

var contractsDir string

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List Cairo contracts and their build artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := contractsDir
		if dir == "" {
			dir = artifacts.ContractsDirectory
		}

		sources, err := artifacts.FindContracts(dir, "")
		if err != nil {
			return fmt.Errorf("scanning %s: %w", dir, err)
		}

		layout := artifacts.DefaultLayout()
		t := ui.NewTable([]ui.Column{
			{Title: "Contract", Width: 24},
			{Title: "Source", Width: 40},
			{Title: "Artifact", Width: 12},
			{Title: "Functions", Width: 10},
		})

		for _, src := range sources {
			name := strings.TrimSuffix(filepath.Base(src), artifacts.CairoExtension)

			artifactState := "missing"
			functions := "—"
			classPath := layout.ContractClassPath(name)
			if _, err := os.Stat(classPath); err == nil {
				artifactState = "compiled"
				if class, err := artifacts.LoadClass(classPath); err == nil {
					functions = fmt.Sprintf("%d", len(class.Functions()))
				}
			}

			t.AddRow(ui.Row{name, src, artifactState, functions})
		}

		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d contracts", len(sources))))
		return nil
	},
}

func init() {
	contractsCmd.Flags().StringVar(&contractsDir, "directory", "", "contracts directory (default: contracts/)")
}

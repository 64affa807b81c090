package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ericglau/nile/internal/starknet"
	"github.com/ericglau/nile/internal/ui"
	"github.com/spf13/cobra"
)

var (
	statusWatch    bool
	statusInterval time.Duration
)

var statusCmd = &cobra.Command{
	Use:   "status <tx_hash>",
	Short: "Query a transaction's status",
	Long: `Query the status of a transaction. With --watch, keep polling
until the transaction is accepted or rejected.

Examples:
  nile status 0x3c4d
  nile status 0x3c4d --watch --network goerli`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash := args[0]

		command, err := builder.Build("tx_status", netName, starknet.Options{
			Arguments: []string{"--hash", hash},
		})
		if err != nil {
			return err
		}

		fetch := func() (string, error) {
			output := runner.Run(command)
			if output == "" {
				return "", errors.New("status query did not succeed")
			}
			var payload struct {
				TxStatus string `json:"tx_status"`
			}
			if err := json.Unmarshal([]byte(output), &payload); err != nil {
				// Not JSON; show the raw text rather than nothing.
				return output, nil
			}
			return payload.TxStatus, nil
		}

		if !statusWatch {
			status, err := fetch()
			if err != nil {
				return err
			}
			fmt.Println(ui.Addr(hash), status)
			return nil
		}

		model := ui.StatusModel{Hash: hash, Fetch: fetch, Interval: statusInterval}
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return err
		}
		if m, ok := final.(ui.StatusModel); ok && !m.Done() {
			return errors.New("stopped before the transaction reached a terminal state")
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "poll until accepted or rejected")
	statusCmd.Flags().DurationVar(&statusInterval, "interval", starknet.RetryAfter, "delay between polls")
}

package cmd

import (
	"fmt"

	"github.com/ericglau/nile/internal/accounts"
	"github.com/ericglau/nile/internal/ui"
	"github.com/spf13/cobra"
)

var accountPrivateKey string

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage account aliases",
}

var accountAddCmd = &cobra.Command{
	Use:   "add <alias> <address>",
	Short: "Register an account under an alias",
	Long: `Register a deployed account contract under a human-chosen alias.
Aliases can stand in for addresses in send and call. With --private-key the
signer key is stored in the OS keychain, never on disk.

Examples:
  nile account add deployer 0x1a2b
  nile account add deployer 0x1a2b --private-key 0x4d5e`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias, address := args[0], args[1]

		reg, err := accounts.LoadRegistry(configDirOrDot())
		if err != nil {
			return err
		}

		account := accounts.Account{Alias: alias, Address: address}
		if accountPrivateKey != "" {
			ref, err := accounts.OpenKeystore().Store(alias, accountPrivateKey)
			if err != nil {
				return err
			}
			account.KeyRef = ref
		}

		if err := reg.Add(account); err != nil {
			return err
		}
		if err := reg.Save(); err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Registered %s → %s", alias, ui.Addr(address))))
		if account.KeyRef != "" {
			fmt.Println(ui.Hint("signer key stored in the OS keychain as " + account.KeyRef))
		}
		return nil
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := accounts.LoadRegistry(configDirOrDot())
		if err != nil {
			return err
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Alias", Width: 16},
			{Title: "Address", Width: 66},
			{Title: "Signer", Width: 10},
		})
		for _, a := range reg.Accounts {
			signer := "—"
			if a.KeyRef != "" {
				signer = "keychain"
			}
			t.AddRow(ui.Row{a.Alias, a.Address, signer})
		}
		fmt.Println(t.Render())
		return nil
	},
}

var accountKeyCmd = &cobra.Command{
	Use:   "key <alias>",
	Short: "Show the signer key stored for an alias",
	Long: `Retrieve the signer private key stored in the OS keychain for a
registered account. The key is printed to stdout.

Example:
  nile account key deployer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias := args[0]

		reg, err := accounts.LoadRegistry(configDirOrDot())
		if err != nil {
			return err
		}
		account, ok := reg.Get(alias)
		if !ok {
			return fmt.Errorf("unknown account alias %q", alias)
		}
		if account.KeyRef == "" {
			return fmt.Errorf("no signer key stored for %q", alias)
		}

		key, err := accounts.OpenKeystore().Retrieve(account.KeyRef)
		if err != nil {
			return err
		}

		fmt.Println(ui.Warn("private key follows — do not paste it anywhere public"))
		fmt.Println(key)
		return nil
	},
}

var accountRemoveCmd = &cobra.Command{
	Use:   "remove <alias>",
	Short: "Unregister an account alias",
	Long: `Remove an account from the registry. A signer key stored in the
OS keychain for the alias is deleted as well.

Example:
  nile account remove deployer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias := args[0]

		reg, err := accounts.LoadRegistry(configDirOrDot())
		if err != nil {
			return err
		}
		account, err := reg.Remove(alias)
		if err != nil {
			return err
		}
		if account.KeyRef != "" {
			if err := accounts.OpenKeystore().Delete(account.KeyRef); err != nil {
				return fmt.Errorf("removing signer key %s: %w", account.KeyRef, err)
			}
		}
		if err := reg.Save(); err != nil {
			return err
		}

		fmt.Println(ui.Success("Removed " + alias))
		if account.KeyRef != "" {
			fmt.Println(ui.Hint("signer key " + account.KeyRef + " deleted from the OS keychain"))
		}
		return nil
	},
}

func init() {
	accountAddCmd.Flags().StringVar(&accountPrivateKey, "private-key", "", "signer private key to store in the OS keychain")
	accountCmd.AddCommand(accountAddCmd, accountListCmd, accountKeyCmd, accountRemoveCmd)
}

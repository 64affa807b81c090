// Package accounts keeps the alias registry for deployed account
// contracts and the signer keys behind them.
package accounts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ericglau/nile/internal/encoding"
)

// AccountsFile is the registry file name inside the config directory.
const AccountsFile = "accounts.json"

// Account is one registered account contract.
type Account struct {
	Alias   string `json:"alias"`
	Address string `json:"address"`
	// KeyRef is the keyring reference of the signer key, empty for
	// watch-only entries.
	KeyRef string `json:"key_ref,omitempty"`
}

// Registry is the persisted alias → account mapping.
type Registry struct {
	Accounts []Account `json:"accounts"`

	path string
}

// LoadRegistry reads accounts.json from dir; a missing file is an empty
// registry.
func LoadRegistry(dir string) (*Registry, error) {
	path := filepath.Join(dir, AccountsFile)
	reg := &Registry{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return reg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading account registry: %w", err)
	}
	if err := json.Unmarshal(data, reg); err != nil {
		return nil, fmt.Errorf("parsing account registry: %w", err)
	}
	return reg, nil
}

// Save writes the registry back to disk.
func (r *Registry) Save() error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o600)
}

// Add registers an account under an alias.
func (r *Registry) Add(account Account) error {
	if !encoding.IsAlias(account.Alias) {
		return fmt.Errorf("alias %q looks like a literal value, not a name", account.Alias)
	}
	if _, ok := r.Get(account.Alias); ok {
		return fmt.Errorf("alias %q already registered", account.Alias)
	}
	r.Accounts = append(r.Accounts, account)
	return nil
}

// Remove unregisters an alias and returns the removed entry so callers can
// clean up its keyring reference.
func (r *Registry) Remove(alias string) (Account, error) {
	for i, a := range r.Accounts {
		if a.Alias == alias {
			r.Accounts = append(r.Accounts[:i], r.Accounts[i+1:]...)
			return a, nil
		}
	}
	return Account{}, fmt.Errorf("unknown account alias %q", alias)
}

// Get looks up an account by alias.
func (r *Registry) Get(alias string) (Account, bool) {
	for _, a := range r.Accounts {
		if a.Alias == alias {
			return a, true
		}
	}
	return Account{}, false
}

// Resolve maps an account reference to an address: aliases go through the
// registry, literal addresses pass through unchanged.
func (r *Registry) Resolve(ref string) (string, error) {
	if !encoding.IsAlias(ref) {
		return ref, nil
	}
	account, ok := r.Get(ref)
	if !ok {
		return "", fmt.Errorf("unknown account alias %q", ref)
	}
	return account.Address, nil
}

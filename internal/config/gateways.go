// Package config persists the StarkNet gateway registry.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// GatewaysFile is the registry file name inside the config directory.
const GatewaysFile = "node.json"

// Gateways maps a network name to its gateway URL. Loaded once at process
// start and treated as read-only afterwards.
type Gateways struct {
	urls map[string]string
	path string
}

// LoadGateways reads the gateway registry from dir (or creates defaults).
// dir defaults to the current working directory, matching a per-project
// registry checked in next to the contracts.
func LoadGateways(dir string) (*Gateways, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, GatewaysFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		g := &Gateways{urls: defaultGateways(), path: path}
		if err := g.save(); err != nil {
			return nil, fmt.Errorf("creating gateway registry: %w", err)
		}
		return g, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading gateway registry: %w", err)
	}

	urls := make(map[string]string)
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil, fmt.Errorf("parsing gateway registry: %w", err)
	}
	return &Gateways{urls: urls, path: path}, nil
}

// URL returns the gateway URL for a network name.
func (g *Gateways) URL(network string) (string, bool) {
	url, ok := g.urls[network]
	return url, ok
}

// Names returns all registered network names, sorted.
func (g *Gateways) Names() []string {
	names := make([]string, 0, len(g.urls))
	for name := range g.urls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add writes a new network entry to the registry file. The in-memory
// mapping used by the running process is not touched: resolution state is
// fixed at load time.
func (g *Gateways) Add(network, url string) error {
	if _, ok := g.urls[network]; ok {
		return fmt.Errorf("network %q already registered", network)
	}

	onDisk, err := LoadGateways(filepath.Dir(g.path))
	if err != nil {
		return err
	}
	onDisk.urls[network] = url
	return onDisk.save()
}

func (g *Gateways) save() error {
	data, err := json.MarshalIndent(g.urls, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(g.path, data, 0o600)
}

func defaultGateways() map[string]string {
	return map[string]string{
		"localhost":   "http://127.0.0.1:5050/",
		"goerli2":     "https://alpha4-2.starknet.io",
		"integration": "https://external.integration.starknet.io",
	}
}

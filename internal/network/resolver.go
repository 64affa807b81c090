// Package network maps network names to starknet CLI connection parameters.
package network

import (
	"fmt"

	"github.com/ericglau/nile/internal/config"
)

// Networks with first-class support in the starknet CLI, selected through
// the STARKNET_NETWORK environment variable instead of gateway URLs.
const (
	Mainnet = "mainnet"
	Goerli  = "goerli"

	alphaMainnet = "alpha-mainnet"
	alphaGoerli  = "alpha-goerli"

	envVar = "STARKNET_NETWORK"
)

// Params is everything the invoker needs to target a network: extra CLI
// arguments and environment entries scoped to the subprocess. The process
// environment is never mutated.
type Params struct {
	Args []string
	Env  []string
}

// Resolver resolves network names against a gateway registry.
type Resolver struct {
	gateways *config.Gateways
}

// NewResolver creates a Resolver backed by the given registry.
func NewResolver(gateways *config.Gateways) *Resolver {
	return &Resolver{gateways: gateways}
}

// Resolve returns the connection parameters for a network name. Reserved
// names map to environment directives; anything else is looked up in the
// registry. An unregistered name resolves to the literal None endpoint —
// the builder does not validate it, the external tool rejects it.
func (r *Resolver) Resolve(network string) Params {
	switch network {
	case Mainnet:
		return Params{Env: []string{envVar + "=" + alphaMainnet}}
	case Goerli:
		return Params{Env: []string{envVar + "=" + alphaGoerli}}
	}

	url, ok := r.gateways.URL(network)
	if !ok {
		url = "None"
	}
	return Params{Args: []string{
		fmt.Sprintf("--gateway_url=%s", url),
		fmt.Sprintf("--feeder_gateway_url=%s", url),
	}}
}

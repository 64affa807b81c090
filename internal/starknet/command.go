package starknet

import (
	"fmt"

	"github.com/ericglau/nile/internal/artifacts"
	"github.com/ericglau/nile/internal/encoding"
	"github.com/ericglau/nile/internal/network"
)

// Command is a fully assembled subprocess invocation: the argv token list
// (binary first) plus environment entries scoped to the subprocess.
type Command struct {
	Args []string
	Env  []string
}

// Options are the optional components of a starknet CLI invocation. Each
// field is appended to the command only when set, always in the same
// position.
type Options struct {
	// ContractName selects the compiled contract class; the path is
	// {build-dir}/{name}.json.
	ContractName string
	// Layout overrides the default artifact layout.
	Layout *artifacts.Layout
	// Inputs are constructor/call parameters; short strings are
	// felt-encoded.
	Inputs []any
	// Signature is the transaction signature parameter pair.
	Signature []any
	// MaxFee caps the transaction fee.
	MaxFee string
	// MainnetToken is the whitelisting token for alpha-mainnet deploys.
	MainnetToken string
	// QueryFlag requests simulation/estimation instead of submission
	// ("simulate" or "estimate_fee").
	QueryFlag string
	// Arguments are extra positional arguments passed through verbatim.
	Arguments []string
}

// Builder assembles starknet CLI commands.
type Builder struct {
	Binary   string
	Layout   artifacts.Layout
	Resolver *network.Resolver
}

// NewBuilder creates a Builder with the default binary and artifact layout.
func NewBuilder(resolver *network.Resolver) *Builder {
	return &Builder{
		Binary:   DefaultBinary,
		Layout:   artifacts.DefaultLayout(),
		Resolver: resolver,
	}
}

// Build assembles the full argv for an operation against a network. Token
// order is fixed and meaningful to the external tool: contract, inputs,
// signature, max fee, token, query flag, extra arguments, network
// parameters, --no_wallet.
func (b *Builder) Build(operation, netName string, opts Options) (*Command, error) {
	args := []string{b.Binary, operation}

	if opts.ContractName != "" {
		layout := b.Layout
		if opts.Layout != nil {
			layout = *opts.Layout
		}
		args = append(args, "--contract", layout.ContractClassPath(opts.ContractName))
	}

	if opts.Inputs != nil {
		inputs, err := encoding.PrepareParams(opts.Inputs)
		if err != nil {
			return nil, fmt.Errorf("encoding inputs: %w", err)
		}
		args = append(args, "--inputs")
		args = append(args, inputs...)
	}

	if opts.Signature != nil {
		sig, err := encoding.PrepareParams(opts.Signature)
		if err != nil {
			return nil, fmt.Errorf("encoding signature: %w", err)
		}
		args = append(args, "--signature")
		args = append(args, sig...)
	}

	if opts.MaxFee != "" {
		args = append(args, "--max_fee", opts.MaxFee)
	}

	if opts.MainnetToken != "" {
		args = append(args, "--token", opts.MainnetToken)
	}

	if opts.QueryFlag != "" {
		args = append(args, "--"+opts.QueryFlag)
	}

	args = append(args, opts.Arguments...)

	params := b.Resolver.Resolve(netName)
	args = append(args, params.Args...)
	args = append(args, "--no_wallet")

	return &Command{Args: args, Env: params.Env}, nil
}

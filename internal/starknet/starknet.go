// Package starknet assembles starknet CLI invocations, runs them, and
// parses the tool's output back into structured identifiers.
package starknet

import (
	"math/big"
	"time"
)

// DefaultBinary is the external transaction tool.
const DefaultBinary = "starknet"

// Protocol constants.
const (
	// TransactionVersion is the protocol transaction version the external
	// tool submits at.
	TransactionVersion = 1

	// RetryAfter is the suggested delay between status polls. It is a
	// convention for calling workflows; nothing in this package enforces it.
	RetryAfter = 30 * time.Second

	// UniversalDeployerAddress is the canonical UDC address, for workflows
	// that deploy through the UDC instead of a bare deploy transaction.
	// Subject to change between protocol releases.
	UniversalDeployerAddress = "0x041a78e741e5af2fec34b695679bc6891742439f7afb8484ecd7766661ad02bf"
)

// QueryVersion marks a simulation/estimation transaction: 2^128 + version.
var QueryVersion = new(big.Int).Add(
	new(big.Int).Lsh(big.NewInt(1), 128),
	big.NewInt(TransactionVersion),
)

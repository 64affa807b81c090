package starknet_test

import (
	"math/big"
	"testing"

	"github.com/ericglau/nile/internal/encoding"
	"github.com/ericglau/nile/internal/starknet"
	"github.com/stretchr/testify/assert"
)

func TestQueryVersionOffsetsTransactionVersion(t *testing.T) {
	want := new(big.Int).Lsh(big.NewInt(1), 128)
	want.Add(want, big.NewInt(starknet.TransactionVersion))
	assert.Equal(t, want, starknet.QueryVersion)
	assert.Equal(t, "340282366920938463463374607431768211457", starknet.QueryVersion.String())
}

// The UDC address must be usable as a literal target: a hex address, never
// an alias.
func TestUniversalDeployerAddressClassifiesAsHexAddress(t *testing.T) {
	assert.Equal(t, encoding.HexAddress, encoding.Classify(starknet.UniversalDeployerAddress))
	assert.False(t, encoding.IsAlias(starknet.UniversalDeployerAddress))
}

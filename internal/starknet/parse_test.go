package starknet_test

import (
	"math/big"
	"testing"

	"github.com/ericglau/nile/internal/starknet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deployOutput = `Deploy transaction was sent.
Contract address: 0x1a2b
Transaction hash: 0x3c4d`

func TestParseReceipt(t *testing.T) {
	receipt, err := starknet.ParseReceipt(deployOutput)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0x1a2b), receipt.Address)
	assert.Equal(t, big.NewInt(0x3c4d), receipt.TxHash)
}

func TestParseReceiptSingleTokenFails(t *testing.T) {
	_, err := starknet.ParseReceipt("only one 0xabc")
	require.Error(t, err)
	assert.ErrorIs(t, err, starknet.ErrMalformedOutput)
}

func TestParseReceiptTooManyTokensFails(t *testing.T) {
	_, err := starknet.ParseReceipt("0x1 0x2 0x3")
	assert.ErrorIs(t, err, starknet.ErrMalformedOutput)
}

func TestParseReceiptEmptyFails(t *testing.T) {
	_, err := starknet.ParseReceipt("")
	assert.ErrorIs(t, err, starknet.ErrMalformedOutput)
}

func TestExtractAddressesCollapsesDuplicates(t *testing.T) {
	addresses := starknet.ExtractAddresses("foo 0x1 bar 0x1 0x2")
	assert.ElementsMatch(t, []*big.Int{big.NewInt(1), big.NewInt(2)}, addresses)
}

// 0x1 and 0x01 decode to the same integer and must not appear twice.
func TestExtractAddressesNormalizesBeforeDeduplicating(t *testing.T) {
	addresses := starknet.ExtractAddresses("0x1 0x01 0x001")
	assert.ElementsMatch(t, []*big.Int{big.NewInt(1)}, addresses)
}

func TestExtractAddressesNone(t *testing.T) {
	assert.Empty(t, starknet.ExtractAddresses("no hex here"))
}

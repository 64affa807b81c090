package starknet_test

import (
	"testing"

	"github.com/ericglau/nile/internal/starknet"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
)

func TestSelectorKnownValues(t *testing.T) {
	cases := map[string]string{
		"transfer":    "0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e",
		"__execute__": "0x15d40a3d6ca2ac30f4031e42be28da9b056fef9bb7357ac5e85627ee876e5ad",
	}
	for name, want := range cases {
		assert.Equal(t, want, hexutil.EncodeBig(starknet.Selector(name)), name)
	}
}

func TestSelectorFitsFeltDomain(t *testing.T) {
	sel := starknet.Selector("a_very_long_entry_point_name_that_still_masks_down")
	assert.LessOrEqual(t, sel.BitLen(), 250)
}

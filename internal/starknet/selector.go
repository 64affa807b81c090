package starknet

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// selectorMask truncates a keccak-256 digest to the low 250 bits, the
// StarkNet entry-point selector domain.
var selectorMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))

// Selector computes the entry-point selector for a function name: the
// StarkNet keccak, keccak-256 masked to 250 bits.
func Selector(name string) *big.Int {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	digest := new(big.Int).SetBytes(h.Sum(nil))
	return digest.And(digest, selectorMask)
}

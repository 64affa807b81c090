package starknet

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"

	"github.com/ericglau/nile/internal/encoding"
)

// ErrMalformedOutput reports success text that does not match the external
// tool's two-field deploy/declare message shape.
var ErrMalformedOutput = errors.New("malformed starknet CLI output")

// hexToken matches the address/hash fields of the tool's output: addresses
// and tx hashes are up to 64 hex chars.
var hexToken = regexp.MustCompile(`0x[0-9a-f]{1,64}`)

// Receipt is the structured result of a deploy or declare: the contract
// (or class) address and the transaction hash, as canonical integers.
type Receipt struct {
	Address *big.Int
	TxHash  *big.Int
}

// ParseReceipt extracts the (address, tx hash) pair from deploy/declare
// success text. The tool prints exactly two hex fields in that order; any
// other count means the output contract changed and parsing cannot proceed.
func ParseReceipt(output string) (*Receipt, error) {
	matches := hexToken.FindAllString(output, -1)
	if len(matches) != 2 {
		return nil, fmt.Errorf("%w: expected 2 hex fields, found %d", ErrMalformedOutput, len(matches))
	}

	address, err := encoding.NormalizeNumber(matches[0])
	if err != nil {
		return nil, err
	}
	txHash, err := encoding.NormalizeNumber(matches[1])
	if err != nil {
		return nil, err
	}
	return &Receipt{Address: address, TxHash: txHash}, nil
}

// ExtractAddresses returns every distinct integer decoded from hex tokens
// anywhere in text. Best-effort address discovery for log scanning; order
// is not defined.
func ExtractAddresses(text string) []*big.Int {
	seen := make(map[string]struct{})
	var addresses []*big.Int
	for _, match := range hexToken.FindAllString(text, -1) {
		n, err := encoding.NormalizeNumber(match)
		if err != nil {
			continue
		}
		key := n.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		addresses = append(addresses, n)
	}
	return addresses
}

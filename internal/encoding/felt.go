// Package encoding classifies and stringifies calldata values for the
// external starknet CLI, including short-string to field-element packing.
package encoding

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind is the logical type of a single calldata value.
type Kind int

const (
	Integer Kind = iota
	HexAddress
	ShortString
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case HexAddress:
		return "hex-address"
	default:
		return "short-string"
	}
}

// maxShortStringLen is the felt capacity: 31 bytes stay below 2^248,
// which fits the 251-bit field.
const maxShortStringLen = 31

// Classify reports the logical type of a value. The fallthrough order is
// fixed: base-10 integer, then "0x"-prefixed base-16, then short string.
func Classify(value string) Kind {
	if _, ok := new(big.Int).SetString(value, 10); ok {
		return Integer
	}
	if strings.HasPrefix(value, "0x") {
		if _, ok := new(big.Int).SetString(value[2:], 16); ok {
			return HexAddress
		}
	}
	return ShortString
}

// IsAlias reports whether value is a human-chosen alias rather than a
// literal numeric address.
func IsAlias(value string) bool {
	return Classify(value) == ShortString
}

// StrToFelt packs the bytes of a short string into a single integer,
// big-endian. Strings longer than 31 bytes do not fit a felt.
func StrToFelt(s string) (*big.Int, error) {
	if len(s) > maxShortStringLen {
		return nil, fmt.Errorf("short string %q is %d bytes, max %d", s, len(s), maxShortStringLen)
	}
	return new(big.Int).SetBytes([]byte(s)), nil
}

// NormalizeNumber converts "0x"-prefixed hex or decimal text to its
// canonical integer value.
func NormalizeNumber(s string) (*big.Int, error) {
	if strings.HasPrefix(s, "0x") {
		if n, ok := new(big.Int).SetString(s[2:], 16); ok {
			return n, nil
		}
		return nil, fmt.Errorf("invalid hex number %q", s)
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return n, nil
	}
	return nil, fmt.Errorf("invalid number %q", s)
}

// Encode stringifies a value for the starknet CLI, recursing into slices
// element-wise and flattening the result in order. With processShortStrings
// set, short strings are felt-encoded first; integers and hex addresses
// always pass through in their native textual form.
func Encode(value any, processShortStrings bool) ([]string, error) {
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			enc, err := Encode(elem, processShortStrings)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil
	case []string:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			enc, err := Encode(elem, processShortStrings)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil
	case string:
		if processShortStrings && Classify(v) == ShortString {
			felt, err := StrToFelt(v)
			if err != nil {
				return nil, err
			}
			return []string{felt.String()}, nil
		}
		return []string{v}, nil
	case *big.Int:
		return []string{v.String()}, nil
	case int:
		return []string{fmt.Sprintf("%d", v)}, nil
	case int64:
		return []string{fmt.Sprintf("%d", v)}, nil
	case uint64:
		return []string{fmt.Sprintf("%d", v)}, nil
	default:
		return []string{fmt.Sprintf("%v", v)}, nil
	}
}

// PrepareParams sanitizes call, invoke, and deploy parameters. A nil
// parameter list encodes to an empty one.
func PrepareParams(params []any) ([]string, error) {
	if params == nil {
		return []string{}, nil
	}
	return Encode(params, true)
}

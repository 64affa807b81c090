package encoding_test

import (
	"math/big"
	"testing"

	"github.com/ericglau/nile/internal/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyInteger(t *testing.T) {
	for _, v := range []string{"0", "1", "42", "-7", "123456789012345678901234567890"} {
		assert.Equal(t, encoding.Integer, encoding.Classify(v), v)
	}
}

func TestClassifyHexAddress(t *testing.T) {
	for _, v := range []string{"0x0", "0x1a2b", "0xdeadbeef", "0x041a78e741e5af2fec34b695679bc6891742439f7afb8484ecd7766661ad02bf"} {
		assert.Equal(t, encoding.HexAddress, encoding.Classify(v), v)
	}
}

func TestClassifyShortString(t *testing.T) {
	for _, v := range []string{"abc", "my_token", "0xzz", "USDC", "0x"} {
		assert.Equal(t, encoding.ShortString, encoding.Classify(v), v)
	}
}

// Digits-only strings must classify as Integer even though they would also
// parse as hex: the fallthrough order is Integer first.
func TestClassifyOrderIntegerBeforeHex(t *testing.T) {
	assert.Equal(t, encoding.Integer, encoding.Classify("1234"))
}

func TestIsAlias(t *testing.T) {
	assert.True(t, encoding.IsAlias("my_contract"))
	assert.False(t, encoding.IsAlias("0x1a2b"))
	assert.False(t, encoding.IsAlias("42"))
}

func TestStrToFelt(t *testing.T) {
	felt, err := encoding.StrToFelt("abc")
	require.NoError(t, err)
	// 0x616263
	assert.Equal(t, big.NewInt(6382179), felt)
}

func TestStrToFeltEmpty(t *testing.T) {
	felt, err := encoding.StrToFelt("")
	require.NoError(t, err)
	assert.Equal(t, int64(0), felt.Int64())
}

func TestStrToFeltTooLong(t *testing.T) {
	_, err := encoding.StrToFelt("this string is far too long to fit in a felt")
	assert.Error(t, err)
}

func TestNormalizeNumber(t *testing.T) {
	n, err := encoding.NormalizeNumber("0x1a2b")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0x1a2b), n)

	n, err = encoding.NormalizeNumber("1000")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), n)

	_, err = encoding.NormalizeNumber("not-a-number")
	assert.Error(t, err)
}

func TestEncodeShortString(t *testing.T) {
	out, err := encoding.Encode("abc", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"6382179"}, out)

	out, err = encoding.Encode("abc", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, out)
}

// Integers and hex addresses are never felt-encoded, so encoding an
// already-encoded token is a no-op.
func TestEncodeIdempotentOnNumericTokens(t *testing.T) {
	for _, v := range []string{"6382179", "0x1a2b"} {
		once, err := encoding.Encode(v, true)
		require.NoError(t, err)
		twice, err := encoding.Encode(once[0], true)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestEncodeFlattensNestedSequences(t *testing.T) {
	out, err := encoding.Encode([]any{"1", []any{"0x2", "ab"}, "cd"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "0x2", "24930", "25444"}, out)
}

func TestEncodeNativeIntegers(t *testing.T) {
	out, err := encoding.Encode([]any{42, big.NewInt(7)}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"42", "7"}, out)
}

func TestPrepareParamsNil(t *testing.T) {
	out, err := encoding.PrepareParams(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, out)
}

func TestPrepareParamsProcessesShortStrings(t *testing.T) {
	out, err := encoding.PrepareParams([]any{"1", "0xa", "abc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "0xa", "6382179"}, out)
}

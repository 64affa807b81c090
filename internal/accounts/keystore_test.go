package accounts

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeystore() *Keystore {
	return &Keystore{ring: keyring.NewArrayKeyring(nil)}
}

func TestKeystoreStoreAndRetrieve(t *testing.T) {
	k := newTestKeystore()

	ref, err := k.Store("deployer", "0x4d5e")
	require.NoError(t, err)
	assert.Equal(t, "nile.deployer", ref)

	key, err := k.Retrieve(ref)
	require.NoError(t, err)
	assert.Equal(t, "0x4d5e", key)
}

func TestKeystoreRetrieveUnknownRefErrors(t *testing.T) {
	_, err := newTestKeystore().Retrieve("nile.ghost")
	assert.Error(t, err)
}

func TestKeystoreDelete(t *testing.T) {
	k := newTestKeystore()

	ref, err := k.Store("deployer", "0x4d5e")
	require.NoError(t, err)

	require.NoError(t, k.Delete(ref))
	_, err = k.Retrieve(ref)
	assert.Error(t, err, "deleted key must not be retrievable")
}

func TestKeystoreUnavailable(t *testing.T) {
	k := &Keystore{}

	_, err := k.Store("deployer", "0x4d5e")
	assert.Error(t, err)
	_, err = k.Retrieve("nile.deployer")
	assert.Error(t, err)
	assert.NoError(t, k.Delete("nile.deployer"))
}

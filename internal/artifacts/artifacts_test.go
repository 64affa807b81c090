package artifacts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ericglau/nile/internal/artifacts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayoutPaths(t *testing.T) {
	l := artifacts.DefaultLayout()
	assert.Equal(t, filepath.Join("artifacts", "token.json"), l.ContractClassPath("token"))
	assert.Equal(t, filepath.Join("artifacts", "abis", "token.json"), l.ABIPath("token"))
}

func TestOverridingLayout(t *testing.T) {
	l := artifacts.Layout{BuildDir: "out", ABIDir: "out/abis"}
	assert.Equal(t, filepath.Join("out", "token.json"), l.ContractClassPath("token"))
}

func TestFindContracts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, f := range []string{"a.cairo", "b.cairo", "nested/c.cairo", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("%lang starknet"), 0o644))
	}

	files, err := artifacts.FindContracts(dir, "")
	require.NoError(t, err)
	assert.Len(t, files, 3)
	for _, f := range files {
		assert.True(t, filepath.Ext(f) == ".cairo", f)
	}
}

func TestFindContractsCustomExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.sol"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.cairo"), nil, 0o644))

	files, err := artifacts.FindContracts(dir, ".sol")
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFindContractsMissingDir(t *testing.T) {
	_, err := artifacts.FindContracts(filepath.Join(t.TempDir(), "absent"), "")
	assert.Error(t, err)
}

func TestLoadClass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	artifact := `{
		"abi": [
			{"name": "constructor", "type": "constructor"},
			{"name": "transfer", "type": "function"},
			{"name": "balanceOf", "type": "function"}
		],
		"entry_points_by_type": {
			"EXTERNAL": [{"offset": "0x3a", "selector": "0x83afd3f4"}]
		},
		"program": {"builtins": ["pedersen", "range_check"]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))

	class, err := artifacts.LoadClass(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"transfer", "balanceOf"}, class.Functions())
	assert.Len(t, class.EntryPointsByType["EXTERNAL"], 1)
}

func TestLoadClassMissingFile(t *testing.T) {
	_, err := artifacts.LoadClass(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

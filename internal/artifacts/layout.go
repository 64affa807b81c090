// Package artifacts knows where compiled contract classes and ABIs live
// and loads contract-class JSON files.
package artifacts

import (
	"os"
	"path/filepath"
	"strings"
)

// Default project directories.
const (
	ContractsDirectory = "contracts"
	BuildDirectory     = "artifacts"
	ABIsDirectory      = "artifacts/abis"
	CairoExtension     = ".cairo"
)

// Layout is a pair of directories: compiled contract classes and extracted
// ABIs.
type Layout struct {
	BuildDir string
	ABIDir   string
}

// DefaultLayout returns the standard build layout.
func DefaultLayout() Layout {
	return Layout{BuildDir: BuildDirectory, ABIDir: ABIsDirectory}
}

// ContractClassPath returns the compiled contract-class file for a contract
// name. The file is not checked for existence; a bad path surfaces when the
// external tool reads it.
func (l Layout) ContractClassPath(name string) string {
	return filepath.Join(l.BuildDir, name+".json")
}

// ABIPath returns the extracted ABI file for a contract name.
func (l Layout) ABIPath(name string) string {
	return filepath.Join(l.ABIDir, name+".json")
}

// FindContracts walks dir (default: contracts/) and returns every source
// file with the given extension (default: .cairo).
func FindContracts(dir, ext string) ([]string, error) {
	if dir == "" {
		dir = ContractsDirectory
	}
	if ext == "" {
		ext = CairoExtension
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
)

// EntryPoint is one external/constructor/L1 handler entry of a contract
// class.
type EntryPoint struct {
	Offset   string `json:"offset"`
	Selector string `json:"selector"`
}

// ABIEntry is a single function, event or struct entry of a contract ABI.
type ABIEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ContractClass is the compiled contract artifact produced by the Cairo
// compiler. The program body is kept opaque: hashing and execution belong
// to the external tool.
type ContractClass struct {
	ABI               []ABIEntry              `json:"abi"`
	EntryPointsByType map[string][]EntryPoint `json:"entry_points_by_type"`
	Program           json.RawMessage         `json:"program"`
}

// LoadClass reads a compiled contract class from its artifact file.
func LoadClass(path string) (*ContractClass, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading contract class: %w", err)
	}
	var class ContractClass
	if err := json.Unmarshal(data, &class); err != nil {
		return nil, fmt.Errorf("parsing contract class %s: %w", path, err)
	}
	return &class, nil
}

// Functions returns the names of the function entries in the class ABI.
func (c *ContractClass) Functions() []string {
	var names []string
	for _, e := range c.ABI {
		if e.Type == "function" {
			names = append(names, e.Name)
		}
	}
	return names
}

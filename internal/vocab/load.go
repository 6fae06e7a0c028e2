package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// operandFile is the on-disk shape of an operand table. Tables are versioned
// so deployments can swap operand vocabularies without a code change.
type operandFile struct {
	Version  string         `yaml:"version"`
	Operands []operandEntry `yaml:"operands"`
}

type operandEntry struct {
	Name       string   `yaml:"name"`
	IRI        string   `yaml:"iri,omitempty"`
	Label      string   `yaml:"label,omitempty"`
	Definition string   `yaml:"definition,omitempty"`
	Operators  []string `yaml:"operators"`
	Datatype   string   `yaml:"datatype,omitempty"`
}

// LoadFile reads an operand table from a YAML file and builds a registry
// from it. Table errors fail here, before any document is evaluated.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read operand table: %w", err)
	}

	var file operandFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse operand table %s: %w", path, err)
	}
	if len(file.Operands) == 0 {
		return nil, fmt.Errorf("operand table %s declares no operands", path)
	}

	operands := make([]Operand, 0, len(file.Operands))
	for _, e := range file.Operands {
		ops := make([]Operator, 0, len(e.Operators))
		for _, name := range e.Operators {
			ops = append(ops, Operator(name))
		}
		operands = append(operands, Operand{
			Name:       e.Name,
			IRI:        e.IRI,
			Label:      e.Label,
			Definition: e.Definition,
			Operators:  ops,
			Datatype:   e.Datatype,
		})
	}

	reg, err := NewRegistry(operands)
	if err != nil {
		return nil, fmt.Errorf("operand table %s: %w", path, err)
	}
	return reg, nil
}

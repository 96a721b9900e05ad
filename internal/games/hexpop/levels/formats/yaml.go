package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Colors   int               `yaml:"colors,omitempty"`
	Rows     string            `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file. The rows field holds a text grid,
// usually as a literal block scalar.
func ParseYAML(data []byte) (Level, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	var yl YAMLLevel
	if err := root.Decode(&yl); err != nil {
		return Level{}, fmt.Errorf("yaml decode: %w", err)
	}

	grid, err := ParseGrid(yl.Rows, rowsLine(&root))
	if err != nil {
		return Level{}, err
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Colors:   yl.Colors,
		Grid:     grid,
		Metadata: yl.Metadata,
	}, nil
}

// rowsLine returns the file line where the rows text starts.
func rowsLine(root *yaml.Node) int {
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return 1
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "rows" {
			continue
		}
		value := doc.Content[i+1]
		if value.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
			// Block scalars start on the line after the indicator.
			return value.Line + 1
		}
		return value.Line
	}
	return 1
}

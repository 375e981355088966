// Package yaml provides a YAML implementation of hourei.Converter.
package yaml

import (
	"go.yaml.in/yaml/v3"

	hourei "github.com/ToAmano/hourei-api"
)

// Ensure Converter implements hourei.Converter at compile time.
var _ hourei.Converter = (*Converter)(nil)

// Converter renders statute XML as structured YAML. The heavy lifting is
// the parse into hourei.Document; serialization follows the document's
// field order with empty fields omitted.
type Converter struct {
	parser hourei.Parser
}

// NewConverter creates a new Converter using the given parser.
func NewConverter(parser hourei.Parser) *Converter {
	return &Converter{parser: parser}
}

// Convert transforms Standard Law XML into YAML.
func (c *Converter) Convert(xml string) (string, error) {
	doc, err := c.parser.Parse(xml)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", hourei.Errorf(hourei.EINTERNAL, "marshaling statute document: %v", err)
	}

	return string(data), nil
}

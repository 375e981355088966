package mock

import hourei "github.com/ToAmano/hourei-api"

var _ hourei.Parser = (*Parser)(nil)

// Parser is a mock implementation of hourei.Parser.
type Parser struct {
	ParseFn func(xml string) (*hourei.Document, error)
}

func (p *Parser) Parse(xml string) (*hourei.Document, error) {
	return p.ParseFn(xml)
}

package mock

import hourei "github.com/ToAmano/hourei-api"

var _ hourei.Converter = (*Converter)(nil)

// Converter is a mock implementation of hourei.Converter.
type Converter struct {
	ConvertFn func(xml string) (string, error)
}

func (c *Converter) Convert(xml string) (string, error) {
	return c.ConvertFn(xml)
}

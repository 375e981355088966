package hourei

// Converter renders statute XML into an output format.
type Converter interface {
	// Convert transforms Standard Law XML into the converter's format.
	// Returns EINVALID if the XML is malformed or not a statute document.
	Convert(xml string) (string, error)
}

package etree

import (
	"strings"

	"github.com/beevik/etree"

	hourei "github.com/ToAmano/hourei-api"
)

// parseXML reads a statute XML string into an etree document.
func parseXML(xml string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, hourei.Errorf(hourei.EINVALID, "invalid XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, hourei.Errorf(hourei.EINVALID, "empty XML document")
	}
	return doc, nil
}

// lawBody locates the LawBody element at law_full_text/Law/LawBody.
// Every law_data response carries this spine; its absence means the input
// is not a statute document.
func lawBody(doc *etree.Document) (*etree.Element, error) {
	fullText := doc.Root().SelectElement("law_full_text")
	if fullText == nil {
		return nil, hourei.Errorf(hourei.EINVALID, "law_full_text element not found")
	}
	law := fullText.SelectElement("Law")
	if law == nil {
		return nil, hourei.Errorf(hourei.EINVALID, "Law element not found in law_full_text")
	}
	body := law.SelectElement("LawBody")
	if body == nil {
		return nil, hourei.Errorf(hourei.EINVALID, "LawBody element not found in Law")
	}
	return body, nil
}

// ExtractText returns every non-empty text node of the statute XML as a
// flat list, in document order. This is the quick-and-dirty view of a
// statute used when structure does not matter.
func ExtractText(xml string) ([]string, error) {
	doc, err := parseXML(xml)
	if err != nil {
		return nil, err
	}

	var out []string
	var visit func(el *etree.Element)
	visit = func(el *etree.Element) {
		if txt := strings.TrimSpace(el.Text()); txt != "" {
			out = append(out, txt)
		}
		for _, child := range el.ChildElements() {
			visit(child)
		}
	}
	visit(doc.Root())

	return out, nil
}

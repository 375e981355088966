// Package etree parses Standard Law XML with beevik/etree. It provides the
// statute text converter and the structured document parser that backs the
// YAML converter.
package etree

import (
	"strings"

	"github.com/beevik/etree"
)

// sentenceText extracts the text of a Sentence element. Ruby annotations
// render as 漢字（読み）; all other markup is flattened, preserving the
// character data between and after child elements.
func sentenceText(el *etree.Element) string {
	return strings.TrimSpace(flattenText(el))
}

func flattenText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == "Ruby" {
				b.WriteString(rubyText(t))
			} else {
				b.WriteString(flattenText(t))
			}
		}
	}
	return b.String()
}

// rubyText renders <Ruby>漢字<Rt>読み</Rt></Ruby> as 漢字（読み）.
// Without an Rt child the character data is passed through untouched.
func rubyText(el *etree.Element) string {
	rt := el.SelectElement("Rt")
	base := strings.TrimSpace(el.Text())
	if rt != nil && base != "" {
		return base + "（" + strings.TrimSpace(rt.Text()) + "）"
	}
	return rawText(el)
}

// rawText concatenates all character data under el, ignoring markup.
func rawText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(rawText(t))
		}
	}
	return b.String()
}

// sentencesIn returns the non-empty text of every Sentence descendant of
// the container, in document order.
func sentencesIn(container *etree.Element) []string {
	var out []string
	for _, s := range container.FindElements(".//Sentence") {
		if txt := sentenceText(s); txt != "" {
			out = append(out, txt)
		}
	}
	return out
}

// joinedSentences is sentencesIn joined by single spaces, the form the
// structured document uses for content fields.
func joinedSentences(container *etree.Element) string {
	return strings.Join(sentencesIn(container), " ")
}

// childText returns the trimmed text of the first matching child element,
// or "" when absent.
func childText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

package etree

import (
	"fmt"

	"github.com/beevik/etree"

	hourei "github.com/ToAmano/hourei-api"
)

// Ensure DocumentParser implements hourei.Parser at compile time.
var _ hourei.Parser = (*DocumentParser)(nil)

// DocumentParser builds a structured hourei.Document from statute XML.
// Unlike the text converter it is lenient about missing sections: a
// statute without a TOC or supplementary provisions simply produces a
// document without those fields.
type DocumentParser struct{}

// NewDocumentParser creates a new DocumentParser.
func NewDocumentParser() *DocumentParser {
	return &DocumentParser{}
}

// Parse builds a Document from the statute XML.
func (p *DocumentParser) Parse(xml string) (*hourei.Document, error) {
	doc, err := parseXML(xml)
	if err != nil {
		return nil, err
	}

	body, err := lawBody(doc)
	if err != nil {
		return nil, err
	}

	out := &hourei.Document{}
	out.LawInfo = parseLawInfo(doc, body)

	if toc := body.SelectElement("TOC"); toc != nil {
		out.TOC = parseTOC(toc)
	}

	if main := body.SelectElement("MainProvision"); main != nil {
		switch {
		case main.SelectElement("Chapter") != nil:
			for _, el := range main.SelectElements("Chapter") {
				if chapter := parseChapter(el); chapter != nil {
					out.Chapters = append(out.Chapters, chapter)
				}
			}
		case main.SelectElement("Article") != nil:
			for _, el := range main.SelectElements("Article") {
				if article := parseArticle(el); article != nil {
					out.Articles = append(out.Articles, article)
				}
			}
		}
	}

	for _, el := range body.SelectElements("SupplProvision") {
		if suppl := parseSupplProvision(el); suppl != nil {
			out.SupplProvisions = append(out.SupplProvisions, suppl)
		}
	}

	return out, nil
}

// parseLawInfo collects the law number from the statute body and the title
// from the response's revision metadata.
func parseLawInfo(doc *etree.Document, body *etree.Element) *hourei.LawInfo {
	info := &hourei.LawInfo{
		LawNum: childText(body, "LawNum"),
	}
	if title := doc.Root().FindElement(".//law_title"); title != nil {
		info.Title = sentenceText(title)
	}

	if info.LawNum == "" && info.Title == "" {
		return nil
	}
	return info
}

func parseTOC(toc *etree.Element) []hourei.TOCEntry {
	var entries []hourei.TOCEntry

	if label := childText(toc, "TOCLabel"); label != "" {
		entries = append(entries, hourei.TOCEntry{Type: "label", Content: label})
	}

	for _, chapter := range toc.SelectElements("TOCChapter") {
		title := childText(chapter, "ChapterTitle")
		articleRange := childText(chapter, "ArticleRange")
		if title != "" && articleRange != "" {
			entries = append(entries, hourei.TOCEntry{
				Type:         "chapter",
				Title:        title,
				ArticleRange: articleRange,
			})
		}
	}

	if suppl := toc.SelectElement("TOCSupplProvision"); suppl != nil {
		if label := childText(suppl, "SupplProvisionLabel"); label != "" {
			entries = append(entries, hourei.TOCEntry{Type: "supplementary", Content: label})
		}
	}

	return entries
}

func parseChapter(el *etree.Element) *hourei.Chapter {
	chapter := &hourei.Chapter{}

	if title := childText(el, "ChapterTitle"); title != "" {
		chapter.Title = title
		if num, ok := hourei.NumberFromTitle(title); ok {
			chapter.ChapterNum = num
		}
	}

	for _, sectionEl := range el.SelectElements("Section") {
		if section := parseSection(sectionEl); section != nil {
			chapter.Sections = append(chapter.Sections, section)
		}
	}

	// Articles directly under the chapter (statutes without sections).
	for _, articleEl := range el.SelectElements("Article") {
		if article := parseArticle(articleEl); article != nil {
			chapter.Articles = append(chapter.Articles, article)
		}
	}

	if chapter.Title == "" && len(chapter.Sections) == 0 && len(chapter.Articles) == 0 {
		return nil
	}
	return chapter
}

func parseSection(el *etree.Element) *hourei.Section {
	section := &hourei.Section{}

	if title := childText(el, "SectionTitle"); title != "" {
		section.Title = title
		if num, ok := hourei.NumberFromTitle(title); ok {
			section.SectionNum = num
		}
	}

	for _, articleEl := range el.SelectElements("Article") {
		if article := parseArticle(articleEl); article != nil {
			section.Articles = append(section.Articles, article)
		}
	}

	if section.Title == "" && len(section.Articles) == 0 {
		return nil
	}
	return section
}

func parseArticle(el *etree.Element) *hourei.Article {
	article := &hourei.Article{
		Caption: childText(el, "ArticleCaption"),
	}

	if title := childText(el, "ArticleTitle"); title != "" {
		article.Title = title
		if num, ok := hourei.NumberFromTitle(title); ok {
			article.ArticleNum = num
		}
	}

	for _, paragraphEl := range el.SelectElements("Paragraph") {
		if paragraph := parseParagraph(paragraphEl); paragraph != nil {
			article.Paragraphs = append(article.Paragraphs, paragraph)
		}
	}

	if article.Caption == "" && article.Title == "" && len(article.Paragraphs) == 0 {
		return nil
	}
	return article
}

func parseParagraph(el *etree.Element) *hourei.Paragraph {
	paragraph := &hourei.Paragraph{}

	if num := childText(el, "ParagraphNum"); num != "" {
		paragraph.ParagraphNum = num
		if n, ok := hourei.NumberFromText(num); ok {
			paragraph.Num = n
		}
	}

	if ps := el.SelectElement("ParagraphSentence"); ps != nil {
		paragraph.Content = joinedSentences(ps)
	}

	for _, itemEl := range el.SelectElements("Item") {
		if item := parseItem(itemEl); item != nil {
			paragraph.Items = append(paragraph.Items, item)
		}
	}

	if ts := el.SelectElement("TableStruct"); ts != nil {
		paragraph.Table = parseTable(ts)
	}

	if paragraph.ParagraphNum == "" && paragraph.Content == "" &&
		len(paragraph.Items) == 0 && paragraph.Table == nil {
		return nil
	}
	return paragraph
}

func parseItem(el *etree.Element) *hourei.Item {
	item := &hourei.Item{}

	if title := childText(el, "ItemTitle"); title != "" {
		item.Title = title
		if num, ok := hourei.NumberFromText(title); ok {
			item.ItemNum = num
		}
	}

	if is := el.SelectElement("ItemSentence"); is != nil {
		item.Content = joinedSentences(is)
	}

	for _, subitemEl := range el.SelectElements("Subitem1") {
		if subitem := parseSubitem(subitemEl, 1); subitem != nil {
			item.Subitems = append(item.Subitems, subitem)
		}
	}

	if ts := el.SelectElement("TableStruct"); ts != nil {
		item.Table = parseTable(ts)
	}

	if item.Title == "" && item.Content == "" && len(item.Subitems) == 0 && item.Table == nil {
		return nil
	}
	return item
}

func parseSubitem(el *etree.Element, level int) *hourei.Subitem {
	subitem := &hourei.Subitem{
		Level: level,
		Title: childText(el, fmt.Sprintf("Subitem%dTitle", level)),
	}

	if s := el.SelectElement(fmt.Sprintf("Subitem%dSentence", level)); s != nil {
		subitem.Content = joinedSentences(s)
	}

	next := fmt.Sprintf("Subitem%d", level+1)
	for _, childEl := range el.SelectElements(next) {
		if child := parseSubitem(childEl, level+1); child != nil {
			subitem.Subitems = append(subitem.Subitems, child)
		}
	}

	if ts := el.SelectElement("TableStruct"); ts != nil {
		subitem.Table = parseTable(ts)
	}

	return subitem
}

func parseTable(ts *etree.Element) *hourei.Table {
	tbl := ts.SelectElement("Table")
	if tbl == nil {
		return nil
	}

	var rows [][]string
	for _, row := range tbl.FindElements(".//TableRow") {
		var cols []string
		for _, col := range row.SelectElements("TableColumn") {
			cols = append(cols, joinedSentences(col))
		}
		if len(cols) > 0 {
			rows = append(rows, cols)
		}
	}

	if len(rows) == 0 {
		return nil
	}
	return &hourei.Table{Rows: rows}
}

func parseSupplProvision(el *etree.Element) *hourei.SupplProvision {
	suppl := &hourei.SupplProvision{
		Label: childText(el, "SupplProvisionLabel"),
	}

	for _, paragraphEl := range el.SelectElements("Paragraph") {
		para := &hourei.SupplParagraph{
			Caption:      childText(paragraphEl, "ParagraphCaption"),
			ParagraphNum: childText(paragraphEl, "ParagraphNum"),
			Content:      joinedSentences(paragraphEl),
		}
		if para.Caption != "" || para.ParagraphNum != "" || para.Content != "" {
			suppl.Paragraphs = append(suppl.Paragraphs, para)
		}
	}

	if suppl.Label == "" && len(suppl.Paragraphs) == 0 {
		return nil
	}
	return suppl
}

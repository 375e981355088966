package etree

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	hourei "github.com/ToAmano/hourei-api"
)

// Ensure TextConverter implements hourei.Converter at compile time.
var _ hourei.Converter = (*TextConverter)(nil)

// TextConverter renders statute XML as plain text: table of contents,
// main provision and the first supplementary provision, one clause per
// line with blank lines after division titles.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert transforms Standard Law XML into plain text.
func (c *TextConverter) Convert(xml string) (string, error) {
	doc, err := parseXML(xml)
	if err != nil {
		return "", err
	}

	body, err := lawBody(doc)
	if err != nil {
		return "", err
	}

	var blocks []string

	if toc := body.SelectElement("TOC"); toc != nil {
		if text := tocText(toc); text != "" {
			blocks = append(blocks, text)
		}
	}

	main := body.SelectElement("MainProvision")
	if main == nil {
		return "", hourei.Errorf(hourei.EINVALID, "MainProvision element not found in LawBody")
	}
	mainText, err := mainProvisionText(main)
	if err != nil {
		return "", err
	}
	if mainText != "" {
		blocks = append(blocks, mainText)
	}

	// Amendment histories repeat the supplementary provision per revision;
	// the text rendering keeps only the original one.
	if suppls := body.SelectElements("SupplProvision"); len(suppls) > 0 {
		if text := supplProvisionText(suppls[0]); text != "" {
			blocks = append(blocks, text)
		}
	}

	return strings.Join(blocks, "\n"), nil
}

// tocText renders the table of contents: the TOC label, one line per
// chapter (title plus article range) and the supplementary provision
// marker.
func tocText(toc *etree.Element) string {
	var lines []string

	if label := childText(toc, "TOCLabel"); label != "" {
		lines = append(lines, label)
	}

	for _, chapter := range toc.SelectElements("TOCChapter") {
		title := childText(chapter, "ChapterTitle")
		articleRange := childText(chapter, "ArticleRange")
		if title != "" && articleRange != "" {
			lines = append(lines, title+articleRange)
		}
	}

	if suppl := toc.SelectElement("TOCSupplProvision"); suppl != nil {
		if label := childText(suppl, "SupplProvisionLabel"); label != "" {
			lines = append(lines, label)
		}
	}

	return strings.Join(lines, "\n")
}

// mainProvisionText walks the main provision. Statutes proper nest
// articles in chapters; enforcement regulations list articles directly.
func mainProvisionText(main *etree.Element) (string, error) {
	w := &textWalker{}

	switch {
	case main.SelectElement("Chapter") != nil:
		for _, chapter := range main.SelectElements("Chapter") {
			w.chapter(chapter)
		}
	case main.SelectElement("Article") != nil:
		// Article-rooted statutes wrap item sentences in Column elements.
		w.columns = true
		for _, article := range main.SelectElements("Article") {
			w.article(article)
		}
	default:
		return "", hourei.Errorf(hourei.EINVALID, "unknown statute structure: neither Chapter nor Article under MainProvision")
	}

	return strings.Join(w.lines, "\n"), nil
}

// supplProvisionText renders a supplementary provision paragraph by
// paragraph: 「（caption）」 lines followed by the paragraph number and its
// sentences joined with 。 separators.
func supplProvisionText(suppl *etree.Element) string {
	var lines []string

	for _, para := range suppl.FindElements(".//Paragraph") {
		if caption := childText(para, "ParagraphCaption"); caption != "" {
			lines = append(lines, "（"+strings.Trim(caption, "（）")+"）")
		}

		line := ""
		if num := childText(para, "ParagraphNum"); num != "" {
			line = num + "　"
		}

		var texts []string
		for _, s := range para.FindElements(".//Sentence") {
			if txt := strings.TrimSpace(s.Text()); txt != "" {
				texts = append(texts, strings.Trim(txt, "。"))
			}
		}
		if len(texts) > 0 {
			line += strings.Join(texts, "。") + "。"
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

var subitemLevelRe = regexp.MustCompile(`Subitem(\d+)`)

// subitemLevel extracts the nesting level from a subitem tag name,
// e.g. "Subitem2" → 2.
func subitemLevel(tag string) int {
	m := subitemLevelRe.FindStringSubmatch(tag)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return n
}

// textWalker accumulates output lines during the statute walk.
type textWalker struct {
	lines []string

	// columns controls ItemSentence handling: Article-rooted statutes
	// split item sentences across Column elements.
	columns bool
}

func (w *textWalker) add(text string) {
	w.lines = append(w.lines, strings.TrimSpace(text))
}

func (w *textWalker) addBlank() {
	w.lines = append(w.lines, "")
}

func (w *textWalker) addOptional(text string) {
	if strings.TrimSpace(text) != "" {
		w.add(text)
	}
}

func (w *textWalker) chapter(chapter *etree.Element) {
	if title := childText(chapter, "ChapterTitle"); title != "" {
		w.add(title)
		w.addBlank()
	}

	// Children in document order: some chapters interleave sections and
	// bare articles.
	for _, child := range chapter.ChildElements() {
		switch child.Tag {
		case "Section":
			w.section(child)
		case "Article":
			w.article(child)
		}
	}
}

func (w *textWalker) section(section *etree.Element) {
	if title := childText(section, "SectionTitle"); title != "" {
		w.add(title)
		w.addBlank()
	}

	for _, child := range section.ChildElements() {
		switch child.Tag {
		case "Subsection":
			w.subsection(child)
		case "Article":
			w.article(child)
		}
	}
}

func (w *textWalker) subsection(subsection *etree.Element) {
	if title := childText(subsection, "SubsectionTitle"); title != "" {
		w.add(title)
		w.addBlank()
	}

	for _, article := range subsection.SelectElements("Article") {
		w.article(article)
	}
}

func (w *textWalker) article(article *etree.Element) {
	w.addOptional(childText(article, "ArticleCaption"))
	w.addOptional(childText(article, "ArticleTitle"))

	for _, paragraph := range article.SelectElements("Paragraph") {
		w.paragraph(paragraph)
	}
}

func (w *textWalker) paragraph(paragraph *etree.Element) {
	w.addOptional(childText(paragraph, "ParagraphNum"))

	// ParagraphSentence occurs at most once per paragraph.
	if ps := paragraph.SelectElement("ParagraphSentence"); ps != nil {
		w.sentences(ps)
	}

	for _, item := range paragraph.SelectElements("Item") {
		w.item(item)
	}

	if ts := paragraph.SelectElement("TableStruct"); ts != nil {
		w.table(ts)
	}
}

func (w *textWalker) item(item *etree.Element) {
	w.addOptional(childText(item, "ItemTitle"))

	if is := item.SelectElement("ItemSentence"); is != nil {
		w.itemSentence(is)
	}

	if ts := item.SelectElement("TableStruct"); ts != nil {
		w.table(ts)
	}

	for _, subitem := range item.SelectElements("Subitem1") {
		w.subitem(subitem)
	}
}

func (w *textWalker) itemSentence(is *etree.Element) {
	if w.columns {
		if columns := is.SelectElements("Column"); len(columns) > 0 {
			for _, column := range columns {
				w.sentences(column)
			}
			return
		}
	}
	w.sentences(is)
}

func (w *textWalker) subitem(subitem *etree.Element) {
	tag := subitem.Tag
	level := subitemLevel(tag)

	w.addOptional(childText(subitem, tag+"Title"))

	if s := subitem.SelectElement(tag + "Sentence"); s != nil {
		w.sentences(s)
	}

	if ts := subitem.SelectElement("TableStruct"); ts != nil {
		w.table(ts)
	}

	next := fmt.Sprintf("Subitem%d", level+1)
	for _, child := range subitem.SelectElements(next) {
		w.subitem(child)
	}
}

func (w *textWalker) sentences(container *etree.Element) {
	for _, txt := range sentencesIn(container) {
		w.add(txt)
	}
}

// table renders each table row as a markdown-style |a | b| line.
func (w *textWalker) table(ts *etree.Element) {
	tbl := ts.SelectElement("Table")
	if tbl == nil {
		return
	}

	for _, row := range tbl.FindElements(".//TableRow") {
		var cols []string
		for _, col := range row.SelectElements("TableColumn") {
			var texts []string
			for _, s := range col.SelectElements("Sentence") {
				texts = append(texts, sentenceText(s))
			}
			cols = append(cols, strings.Join(texts, " "))
		}
		if len(cols) > 0 {
			w.add("|" + strings.Join(cols, " | ") + "|")
		}
	}
}

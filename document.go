package hourei

// Document is the structured form of a statute, produced by a Parser from
// Standard Law XML. The YAML tags define the serialized key names; empty
// fields are omitted so the output only carries what the statute contains.
type Document struct {
	LawInfo         *LawInfo          `yaml:"law_info,omitempty"`
	TOC             []TOCEntry        `yaml:"table_of_contents,omitempty"`
	Chapters        []*Chapter        `yaml:"chapters,omitempty"`
	Articles        []*Article        `yaml:"articles,omitempty"`
	SupplProvisions []*SupplProvision `yaml:"supplementary_provisions,omitempty"`
}

// LawInfo holds the statute's identifying metadata.
type LawInfo struct {
	LawNum string `yaml:"law_num,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// TOCEntry is one line of the table of contents. Type distinguishes the
// label line ("label"), chapter lines ("chapter") and the supplementary
// provision marker ("supplementary").
type TOCEntry struct {
	Type         string `yaml:"type"`
	Content      string `yaml:"content,omitempty"`
	Title        string `yaml:"title,omitempty"`
	ArticleRange string `yaml:"article_range,omitempty"`
}

// Chapter is a 章 division. Statutes either group articles into chapters
// (and optionally sections) or list articles directly under the main
// provision; Document carries whichever shape the statute uses.
type Chapter struct {
	Title      string     `yaml:"title,omitempty"`
	ChapterNum int        `yaml:"chapter_num,omitempty"`
	Sections   []*Section `yaml:"sections,omitempty"`
	Articles   []*Article `yaml:"articles,omitempty"`
}

// Section is a 節 division within a chapter.
type Section struct {
	Title      string     `yaml:"title,omitempty"`
	SectionNum int        `yaml:"section_num,omitempty"`
	Articles   []*Article `yaml:"articles,omitempty"`
}

// Article is a 条.
type Article struct {
	Caption    string       `yaml:"caption,omitempty"`
	Title      string       `yaml:"title,omitempty"`
	ArticleNum int          `yaml:"article_num,omitempty"`
	Paragraphs []*Paragraph `yaml:"paragraphs,omitempty"`
}

// Paragraph is a 項 within an article.
type Paragraph struct {
	ParagraphNum string  `yaml:"paragraph_num,omitempty"`
	Num          int     `yaml:"num,omitempty"`
	Content      string  `yaml:"content,omitempty"`
	Items        []*Item `yaml:"items,omitempty"`
	Table        *Table  `yaml:"table,omitempty"`
}

// Item is a 号 within a paragraph.
type Item struct {
	Title    string     `yaml:"title,omitempty"`
	ItemNum  int        `yaml:"item_num,omitempty"`
	Content  string     `yaml:"content,omitempty"`
	Subitems []*Subitem `yaml:"subitems,omitempty"`
	Table    *Table     `yaml:"table,omitempty"`
}

// Subitem is a nested enumeration below an item. Level is 1 for Subitem1
// and grows with each nesting level; Subitems holds the next level down.
type Subitem struct {
	Level    int        `yaml:"level"`
	Title    string     `yaml:"title,omitempty"`
	Content  string     `yaml:"content,omitempty"`
	Subitems []*Subitem `yaml:"subitems,omitempty"`
	Table    *Table     `yaml:"table,omitempty"`
}

// Table holds a statute table as rows of cell text.
type Table struct {
	Rows [][]string `yaml:"rows,omitempty"`
}

// SupplProvision is a 附則 block.
type SupplProvision struct {
	Label      string            `yaml:"label,omitempty"`
	Paragraphs []*SupplParagraph `yaml:"paragraphs,omitempty"`
}

// SupplParagraph is a paragraph within a supplementary provision.
type SupplParagraph struct {
	Caption      string `yaml:"caption,omitempty"`
	ParagraphNum string `yaml:"paragraph_num,omitempty"`
	Content      string `yaml:"content,omitempty"`
}

// Parser parses Standard Law XML into a structured Document.
type Parser interface {
	// Parse builds a Document from the statute XML.
	// Returns EINVALID if the XML is malformed or not a statute document.
	Parse(xml string) (*Document, error)
}

package roadmap

const (
	TypeHeading1  = "heading_1"
	TypeHeading2  = "heading_2"
	TypeParagraph = "paragraph"
	TypeToDo      = "to_do"
)

// Block is a Notion block object. Exactly one of the content fields is set,
// matching Type.
type Block struct {
	Object    string       `json:"object"`
	Type      string       `json:"type"`
	Heading1  *TextContent `json:"heading_1,omitempty"`
	Heading2  *TextContent `json:"heading_2,omitempty"`
	Paragraph *TextContent `json:"paragraph,omitempty"`
	ToDo      *ToDoContent `json:"to_do,omitempty"`
}

type TextContent struct {
	RichText []RichText `json:"rich_text"`
}

type ToDoContent struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

type RichText struct {
	Type string `json:"type"`
	Text Text   `json:"text"`
}

type Text struct {
	Content string `json:"content"`
}

// Plain returns the concatenated text of the block.
func (b Block) Plain() string {
	var rt []RichText
	switch {
	case b.Heading1 != nil:
		rt = b.Heading1.RichText
	case b.Heading2 != nil:
		rt = b.Heading2.RichText
	case b.Paragraph != nil:
		rt = b.Paragraph.RichText
	case b.ToDo != nil:
		rt = b.ToDo.RichText
	}

	var s string
	for _, t := range rt {
		s += t.Text.Content
	}
	return s
}

func richText(content string) []RichText {
	return []RichText{{Type: "text", Text: Text{Content: content}}}
}

func heading1(content string) Block {
	return Block{Object: "block", Type: TypeHeading1, Heading1: &TextContent{RichText: richText(content)}}
}

func heading2(content string) Block {
	return Block{Object: "block", Type: TypeHeading2, Heading2: &TextContent{RichText: richText(content)}}
}

func paragraph(content string) Block {
	return Block{Object: "block", Type: TypeParagraph, Paragraph: &TextContent{RichText: richText(content)}}
}

func todo(content string, checked bool) Block {
	return Block{Object: "block", Type: TypeToDo, ToDo: &ToDoContent{RichText: richText(content), Checked: checked}}
}

package ui

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainMarkdown flattens markdown to plain text for writers that are not
// terminals. Headings and paragraphs become lines, list items get a "- "
// prefix, code blocks are indented and links keep their destination.
func PlainMarkdown(content string) string {
	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				buf.Write(node.Segment.Value(source))
				switch {
				case node.HardLineBreak():
					buf.WriteByte('\n')
				case node.SoftLineBreak():
					buf.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				buf.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				buf.Write(node.Label(source))
			}
		case *ast.Link:
			if !entering && len(node.Destination) > 0 {
				buf.WriteString(" (")
				buf.Write(node.Destination)
				buf.WriteByte(')')
			}
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					buf.WriteString("    ")
					buf.Write(seg.Value(source))
				}
				return ast.WalkSkipChildren, nil
			}
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			if entering {
				buf.WriteString("- ")
			}
		case *ast.ThematicBreak:
			if entering {
				buf.WriteString("--------")
			}
		}

		if !entering && n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
			endLine(&buf)
			if n.Parent() != nil && n.Parent().Kind() == ast.KindDocument && n.NextSibling() != nil {
				buf.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimRight(buf.String(), "\n")
}

func endLine(buf *bytes.Buffer) {
	if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
}

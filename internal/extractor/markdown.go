package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor parses markdown and flattens it to plain text. Block
// boundaries (headings, paragraphs, list items) become blank lines so the
// paragraph-aware strategies still see the document structure.
type MarkdownExtractor struct{}

func (m *MarkdownExtractor) Name() string { return "markdown" }

func (m *MarkdownExtractor) Extract(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	md := goldmark.New()
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	var buf strings.Builder
	var title string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Heading:
			if entering {
				heading := nodeText(node, content)
				if title == "" && node.Level == 1 {
					title = heading
				}
				buf.WriteString(heading)
				buf.WriteString("\n\n")
				return ast.WalkSkipChildren, nil
			}
		case *ast.Text:
			if entering {
				buf.Write(node.Segment.Value(content))
				if node.SoftLineBreak() || node.HardLineBreak() {
					buf.WriteByte('\n')
				}
			}
		case *ast.FencedCodeBlock:
			if entering {
				lines := node.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					buf.Write(seg.Value(content))
				}
				buf.WriteString("\n\n")
				return ast.WalkSkipChildren, nil
			}
		case *ast.Paragraph, *ast.ListItem, *ast.Blockquote:
			if !entering {
				buf.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk markdown tree: %w", err)
	}

	return &Document{
		Text:   strings.TrimSpace(buf.String()),
		Source: filepath.Base(path),
		Title:  title,
	}, nil
}

// nodeText collects the raw text of a node's direct children
func nodeText(node ast.Node, source []byte) string {
	var buf strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}

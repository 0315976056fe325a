// Package markdown extracts headings from spec documents and highlights
// them for terminal display.
package markdown

import (
	"bytes"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/x/ansi"
	"github.com/felixgeelhaar/radar/pkg/domain/spec"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func parser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parserInstance
}

// Title returns the plain text of the first heading in the document, or ""
// when it has none.
func Title(input string) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := parser().Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(inlineText(heading, source))
		if title == "" {
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkStop, nil
	})
	return title
}

func inlineText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// Highlight colours markdown for a 256-colour terminal. It returns the input
// lines unchanged when highlighting fails or would change the line count,
// so scroll offsets computed on the raw text stay valid.
func Highlight(lines []string, style string) []string {
	if len(lines) == 0 {
		return lines
	}
	source := strings.Join(lines, "\n")

	var buffer bytes.Buffer
	if err := quick.Highlight(&buffer, source, "markdown", "terminal256", style); err != nil {
		return lines
	}

	highlighted := spec.SplitLines(buffer.String())
	// Lexers append a final newline; fold any trailing escape-only lines
	// back into the last real line.
	for len(highlighted) > len(lines) && strings.TrimSpace(ansi.Strip(highlighted[len(highlighted)-1])) == "" {
		last := len(highlighted) - 1
		highlighted[last-1] += highlighted[last]
		highlighted = highlighted[:last]
	}
	if len(highlighted) != len(lines) {
		return lines
	}
	return highlighted
}

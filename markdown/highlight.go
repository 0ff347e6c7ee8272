package markdown

import (
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// The formatter emits inline styles and no surrounding <pre>/<code>, so the
// renderer controls the wrapper markup. Highlighter output is treated as
// already-safe HTML: post content is author-controlled, never user input.
var (
	hlFormatter = chromahtml.New(
		chromahtml.PreventSurroundingPre(true),
	)
	hlStyle = styles.Get("github")
)

// highlightBlock colorizes a fenced code block for the given language.
// Unknown languages fall back to plain tokenization, which still escapes
// the source correctly.
func highlightBlock(code, lang string) string {
	return highlight(code, lang)
}

// highlightInline colorizes a backtick code span. Inline spans carry no
// language hint, so the fallback lexer handles them.
func highlightInline(code string) string {
	return highlight(code, "")
}

func highlight(code, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return html.EscapeString(code)
	}
	var buf strings.Builder
	if err := hlFormatter.Format(&buf, hlStyle, iterator); err != nil {
		return html.EscapeString(code)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

package markdown

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Embed is pre-fetched data for an embedded external post reference.
type Embed struct {
	Author string
	Handle string
	Text   string
	URL    string
}

// RenderFunc renders one block into the buffer. Returning an error aborts
// the whole render.
type RenderFunc func(r *Renderer, buf *bytes.Buffer, b Block) error

// Options configures a render. Overrides replace the built-in renderer for
// a block kind; unset kinds fall back to the defaults. Embeds maps tweet
// ids to pre-fetched embed data.
type Options struct {
	Overrides map[BlockKind]RenderFunc
	Embeds    map[string]Embed
}

// Renderer walks a block tree and writes HTML. The per-kind function table
// is the only extension point.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render parses src and writes the rendered document to buf.
func (r *Renderer) Render(buf *bytes.Buffer, src string) error {
	blocks, err := Parse(src)
	if err != nil {
		return err
	}
	for _, b := range blocks {
		fn := defaultRenderers[b.Kind]
		if override, ok := r.opts.Overrides[b.Kind]; ok {
			fn = override
		}
		if fn == nil {
			return fmt.Errorf("markdown: no renderer for block kind %d", b.Kind)
		}
		if err := fn(r, buf, b); err != nil {
			return err
		}
	}
	return nil
}

// Document returns a templ.Component that renders src as HTML, so post
// bodies compose with the rest of the page like any other component.
func Document(src string, opts Options) templ.Component {
	r := NewRenderer(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := r.Render(&buf, src); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

var defaultRenderers = map[BlockKind]RenderFunc{
	KindHeading:     renderHeading,
	KindParagraph:   renderParagraph,
	KindList:        renderList,
	KindOrderedList: renderOrderedList,
	KindQuote:       renderQuote,
	KindCode:        renderCode,
	KindTable:       renderTable,
	KindRule:        renderRule,
	KindCallout:     renderCallout,
	KindProsCard:    renderProsCard,
	KindConsCard:    renderConsCard,
	KindTweet:       renderTweet,
}

// renderHeading emits the heading with its derived anchor id and a leading
// anchor link. Two headings with the same text share the same id; ids are
// not disambiguated.
func renderHeading(_ *Renderer, buf *bytes.Buffer, b Block) error {
	id := Slugify(b.Text)
	tag := fmt.Sprintf("h%d", b.Level)
	buf.WriteString("<" + tag + ` id="` + id + `">`)
	buf.WriteString(`<a href="#` + id + `" class="anchor"></a>`)
	buf.WriteString(formatInline(b.Text))
	buf.WriteString("</" + tag + ">")
	return nil
}

func renderParagraph(_ *Renderer, buf *bytes.Buffer, b Block) error {
	buf.WriteString("<p>")
	buf.WriteString(formatInline(strings.ReplaceAll(b.Text, "\n", " ")))
	buf.WriteString("</p>")
	return nil
}

func renderList(_ *Renderer, buf *bytes.Buffer, b Block) error {
	buf.WriteString("<ul>")
	for _, item := range b.Items {
		buf.WriteString("<li>")
		buf.WriteString(formatInline(item))
		buf.WriteString("</li>")
	}
	buf.WriteString("</ul>")
	return nil
}

func renderOrderedList(_ *Renderer, buf *bytes.Buffer, b Block) error {
	buf.WriteString("<ol>")
	for _, item := range b.Items {
		buf.WriteString("<li>")
		buf.WriteString(formatInline(item))
		buf.WriteString("</li>")
	}
	buf.WriteString("</ol>")
	return nil
}

func renderQuote(_ *Renderer, buf *bytes.Buffer, b Block) error {
	buf.WriteString("<blockquote>")
	buf.WriteString(formatInline(strings.ReplaceAll(b.Text, "\n", " ")))
	buf.WriteString("</blockquote>")
	return nil
}

// renderCode wraps the highlighter's pre-colorized markup. That markup is
// inserted without further escaping; content is author-controlled.
func renderCode(_ *Renderer, buf *bytes.Buffer, b Block) error {
	lang := html.EscapeString(b.Lang)
	if lang != "" {
		buf.WriteString(`<pre class="code-block"><code class="language-` + lang + `">`)
	} else {
		buf.WriteString(`<pre class="code-block"><code>`)
	}
	buf.WriteString(highlightBlock(b.Code, b.Lang))
	buf.WriteString("</code></pre>")
	return nil
}

// renderTable does no column-count validation: a row with fewer or more
// cells than the header renders as-is.
func renderTable(_ *Renderer, buf *bytes.Buffer, b Block) error {
	buf.WriteString("<table><thead><tr>")
	for _, cell := range b.Header {
		buf.WriteString("<th>")
		buf.WriteString(formatInline(cell))
		buf.WriteString("</th>")
	}
	buf.WriteString("</tr></thead><tbody>")
	for _, row := range b.Rows {
		buf.WriteString("<tr>")
		for _, cell := range row {
			buf.WriteString("<td>")
			buf.WriteString(formatInline(cell))
			buf.WriteString("</td>")
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</tbody></table>")
	return nil
}

func renderRule(_ *Renderer, buf *bytes.Buffer, _ Block) error {
	buf.WriteString("<hr/>")
	return nil
}

func renderCallout(_ *Renderer, buf *bytes.Buffer, b Block) error {
	buf.WriteString(`<div class="callout"><span class="callout-emoji">`)
	buf.WriteString(html.EscapeString(b.Emoji))
	buf.WriteString(`</span><div class="callout-body">`)
	buf.WriteString(formatInline(b.Text))
	buf.WriteString("</div></div>")
	return nil
}

const (
	checkIcon = `<svg class="icon-check" viewBox="0 0 24 24" aria-hidden="true"><g fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M22 11.08V12a10 10 0 11-5.93-9.14"></path><path d="M22 4L12 14.01l-3-3"></path></g></svg>`
	crossIcon = `<svg class="icon-cross" viewBox="0 0 20 20" fill="currentColor" aria-hidden="true"><path d="M6.28 5.22a.75.75 0 00-1.06 1.06L8.94 10l-3.72 3.72a.75.75 0 101.06 1.06L10 11.06l3.72 3.72a.75.75 0 101.06-1.06L11.06 10l3.72-3.72a.75.75 0 00-1.06-1.06L10 8.94 6.28 5.22z"></path></svg>`
)

// Duplicate item strings are a caller mistake but tolerated: each entry
// renders, nothing is deduplicated or rejected.
func renderProsCard(_ *Renderer, buf *bytes.Buffer, b Block) error {
	return renderFeedbackCard(buf, "pros-card", "You might use "+b.Title+" if...", checkIcon, b.Items)
}

func renderConsCard(_ *Renderer, buf *bytes.Buffer, b Block) error {
	return renderFeedbackCard(buf, "cons-card", "You might not use "+b.Title+" if...", crossIcon, b.Items)
}

func renderFeedbackCard(buf *bytes.Buffer, class, lead, icon string, items []string) error {
	buf.WriteString(`<div class="` + class + `"><span>`)
	buf.WriteString(html.EscapeString(lead))
	buf.WriteString(`</span><div class="card-items">`)
	for _, item := range items {
		buf.WriteString(`<div class="card-item">`)
		buf.WriteString(icon)
		buf.WriteString("<span>")
		buf.WriteString(html.EscapeString(item))
		buf.WriteString("</span></div>")
	}
	buf.WriteString("</div></div>")
	return nil
}

// renderTweet resolves the embed id against the caller-supplied mapping.
// An unknown id is a hard error: a partially rendered document would be
// worse than a failed one.
func renderTweet(r *Renderer, buf *bytes.Buffer, b Block) error {
	embed, ok := r.opts.Embeds[b.ID]
	if !ok {
		return fmt.Errorf("markdown: no embed data for tweet %q", b.ID)
	}
	buf.WriteString(`<blockquote class="tweet">`)
	buf.WriteString("<p>")
	buf.WriteString(html.EscapeString(embed.Text))
	buf.WriteString("</p><footer>")
	buf.WriteString(html.EscapeString(embed.Author))
	if embed.Handle != "" {
		buf.WriteString(` <span class="tweet-handle">@` + html.EscapeString(embed.Handle) + `</span>`)
	}
	buf.WriteString("</footer>")
	if embed.URL != "" {
		if href := safeURL(embed.URL); href != "" {
			buf.WriteString(`<a href="` + href + `" target="_blank" rel="noopener noreferrer">View post</a>`)
		}
	}
	buf.WriteString("</blockquote>")
	return nil
}

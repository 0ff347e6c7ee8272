package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func renderString(t *testing.T, src string, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := NewRenderer(opts).Render(&buf, src); err != nil {
		t.Fatalf("Render(%q) failed: %v", src, err)
	}
	return buf.String()
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"A & B", "a-and-b"},
		{"  multiple   spaces ", "multiple-spaces"},
		{"Already-Hyphenated", "already-hyphenated"},
		{"Ends with punctuation?", "ends-with-punctuation"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderHeadingAnchor(t *testing.T) {
	got := renderString(t, "## Getting Started", Options{})
	if !strings.Contains(got, `<h2 id="getting-started">`) {
		t.Errorf("heading missing id: %q", got)
	}
	if !strings.Contains(got, `<a href="#getting-started" class="anchor"></a>`) {
		t.Errorf("heading missing anchor link: %q", got)
	}
}

func TestRenderHeadingCollisionsShareID(t *testing.T) {
	got := renderString(t, "## Setup\n\n## Setup", Options{})
	if strings.Count(got, `id="setup"`) != 2 {
		t.Errorf("colliding headings must share the same id: %q", got)
	}
}

func TestRenderLinkKinds(t *testing.T) {
	src := "[about](/about) [section](#section) [ext](https://example.com)"
	got := renderString(t, src, Options{})

	if !strings.Contains(got, `<a href="/about">about</a>`) {
		t.Errorf("internal link wrong: %q", got)
	}
	if !strings.Contains(got, `<a href="#section">section</a>`) {
		t.Errorf("anchor link wrong: %q", got)
	}
	if !strings.Contains(got, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">ext</a>`) {
		t.Errorf("external link wrong: %q", got)
	}
}

func TestRenderImage(t *testing.T) {
	got := renderString(t, "![diagram](/images/diagram.png)", Options{})
	if !strings.Contains(got, `class="rounded-lg"`) {
		t.Errorf("image missing rounded class: %q", got)
	}
	if !strings.Contains(got, `alt="diagram"`) {
		t.Errorf("image missing alt: %q", got)
	}
}

func TestRenderCodeBlockIsHighlighted(t *testing.T) {
	got := renderString(t, "```go\npackage main\n```", Options{})
	if !strings.Contains(got, `class="language-go"`) {
		t.Errorf("code block missing language class: %q", got)
	}
	// The highlighter emits span markup, which must survive unescaped.
	if !strings.Contains(got, "<span") {
		t.Errorf("code block not highlighted: %q", got)
	}
	if strings.Contains(got, "&lt;span") {
		t.Errorf("highlighter output was escaped: %q", got)
	}
}

func TestRenderInlineCode(t *testing.T) {
	got := renderString(t, "run `go test` now", Options{})
	if !strings.Contains(got, "<code>") || !strings.Contains(got, "</code>") {
		t.Errorf("inline code missing code tags: %q", got)
	}
	if !strings.Contains(got, "go test") {
		t.Errorf("inline code content lost: %q", got)
	}
}

func TestRenderInlineCodeNotBoldFormatted(t *testing.T) {
	got := renderString(t, "`**not bold**`", Options{})
	if strings.Contains(got, "<strong>") {
		t.Errorf("formatting applied inside code span: %q", got)
	}
}

func TestRenderTableRaggedRows(t *testing.T) {
	src := "| A | B |\n|---|---|\n| 1 | 2 | 3 |"
	got := renderString(t, src, Options{})
	if strings.Count(got, "<th>") != 2 {
		t.Errorf("want 2 header cells: %q", got)
	}
	if strings.Count(got, "<td>") != 3 {
		t.Errorf("ragged row should render all 3 cells: %q", got)
	}
}

func TestRenderCallout(t *testing.T) {
	got := renderString(t, `<Callout emoji="💡">Use **WAL** mode.</Callout>`, Options{})
	if !strings.Contains(got, `class="callout"`) {
		t.Errorf("callout wrapper missing: %q", got)
	}
	if !strings.Contains(got, "💡") {
		t.Errorf("callout emoji missing: %q", got)
	}
	if !strings.Contains(got, "<strong>WAL</strong>") {
		t.Errorf("callout body should get inline formatting: %q", got)
	}
}

func TestRenderProsCardDuplicatesTolerated(t *testing.T) {
	got := renderString(t, `<ProsCard title="Go" pros={["Fast", "Fast"]} />`, Options{})
	if !strings.Contains(got, "You might use Go if...") {
		t.Errorf("pros lead missing: %q", got)
	}
	if strings.Count(got, "<span>Fast</span>") != 2 {
		t.Errorf("duplicate items must both render: %q", got)
	}
	if strings.Count(got, `class="icon-check"`) != 2 {
		t.Errorf("each item carries the check icon: %q", got)
	}
}

func TestRenderConsCardIcon(t *testing.T) {
	got := renderString(t, `<ConsCard title="Go" cons={["No generics pre-1.18"]} />`, Options{})
	if !strings.Contains(got, "You might not use Go if...") {
		t.Errorf("cons lead missing: %q", got)
	}
	if !strings.Contains(got, `class="icon-cross"`) {
		t.Errorf("cons items carry the cross icon: %q", got)
	}
}

func TestRenderTweetResolved(t *testing.T) {
	opts := Options{Embeds: map[string]Embed{
		"42": {Author: "Rob", Handle: "rob", Text: "ship it", URL: "https://example.com/42"},
	}}
	got := renderString(t, `<StaticTweet id="42" />`, opts)
	if !strings.Contains(got, "ship it") || !strings.Contains(got, "@rob") {
		t.Errorf("tweet embed not rendered: %q", got)
	}
}

func TestRenderTweetUnknownIDFailsWholeRender(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(Options{}).Render(&buf, "# Title\n\n<StaticTweet id=\"missing\" />")
	if err == nil {
		t.Fatal("render should fail on unknown embed id")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should name the embed id: %v", err)
	}
}

func TestRenderOverrideReplacesKind(t *testing.T) {
	opts := Options{Overrides: map[BlockKind]RenderFunc{
		KindHeading: func(_ *Renderer, buf *bytes.Buffer, b Block) error {
			buf.WriteString("<header>" + b.Text + "</header>")
			return nil
		},
	}}
	got := renderString(t, "# Custom\n\nplain paragraph", opts)
	if !strings.Contains(got, "<header>Custom</header>") {
		t.Errorf("override not applied: %q", got)
	}
	// Unoverridden kinds keep the built-in behavior.
	if !strings.Contains(got, "<p>plain paragraph</p>") {
		t.Errorf("fallback renderer lost: %q", got)
	}
}

func TestDocumentComponent(t *testing.T) {
	var buf bytes.Buffer
	cmp := Document("# Hi", Options{})
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Document render failed: %v", err)
	}
	if !strings.Contains(buf.String(), `<h1 id="hi">`) {
		t.Errorf("Document output = %q", buf.String())
	}
}

func TestRenderEscapesParagraphHTML(t *testing.T) {
	got := renderString(t, "a <script>alert(1)</script> b", Options{})
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML must be escaped outside code paths: %q", got)
	}
}

func TestFormatInlineBoldItalic(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
	}
	for _, tt := range tests {
		if got := formatInline(tt.input); got != tt.want {
			t.Errorf("formatInline(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatInlineLinkWithUnderscoresInURL(t *testing.T) {
	got := formatInline("[wiki](https://en.wikipedia.org/wiki/Some_Article_Title)")
	want := `<a href="https://en.wikipedia.org/wiki/Some_Article_Title" target="_blank" rel="noopener noreferrer">wiki</a>`
	if got != want {
		t.Errorf("formatInline underscores in URL\n  got:  %q\n  want: %q", got, want)
	}
}

func TestSafeURLRejectsBadSchemes(t *testing.T) {
	if got := safeURL("javascript:alert(1)"); got != "" {
		t.Errorf("safeURL(javascript:) = %q, want empty", got)
	}
	if got := safeURL("/local/path"); got != "/local/path" {
		t.Errorf("safeURL(/local/path) = %q", got)
	}
}

package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// page wraps body in the shared document shell: head with per-page meta,
// the site navigation, and the footer.
func page(cfg SiteConfig, meta PageMeta, jsonLD string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		buf.WriteString(`<meta charset="utf-8"/>`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		buf.WriteString("<title>" + html.EscapeString(meta.Title) + "</title>")
		if meta.Description != "" {
			buf.WriteString(`<meta name="description" content="` + html.EscapeString(meta.Description) + `"/>`)
		}
		if meta.URL != "" {
			buf.WriteString(`<link rel="canonical" href="` + html.EscapeString(meta.URL) + `"/>`)
			buf.WriteString(`<meta property="og:url" content="` + html.EscapeString(meta.URL) + `"/>`)
		}
		buf.WriteString(`<meta property="og:title" content="` + html.EscapeString(meta.Title) + `"/>`)
		if meta.Description != "" {
			buf.WriteString(`<meta property="og:description" content="` + html.EscapeString(meta.Description) + `"/>`)
		}
		if meta.Image != "" {
			buf.WriteString(`<meta property="og:image" content="` + html.EscapeString(meta.Image) + `"/>`)
			buf.WriteString(`<meta name="twitter:card" content="summary_large_image"/>`)
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		buf.WriteString(`<meta property="og:type" content="` + html.EscapeString(ogType) + `"/>`)
		buf.WriteString(`<meta property="og:site_name" content="` + html.EscapeString(cfg.Name) + `"/>`)
		buf.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
		buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + html.EscapeString(cfg.Name) + `" href="/feed.xml"/>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
		if jsonLD != "" {
			buf.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
		}
		buf.WriteString("</head><body><nav>")
		buf.WriteString(`<a href="/">home</a> <a href="/blog/">blog</a> <a href="/work/">work</a>`)
		buf.WriteString("</nav><main>")
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main><footer><p>"+html.EscapeString(cfg.Name)+"</p></footer></body></html>")
		return err
	})
}

// raw adapts a buffer-writing render function into a templ component.
func raw(fn func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

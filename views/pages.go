package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Home renders the landing page: intro plus the most recent posts.
func Home(cfg SiteConfig, recent []Listing) templ.Component {
	body := raw(func(buf *bytes.Buffer) {
		buf.WriteString("<h1>" + html.EscapeString(firstNonEmpty(cfg.Author, cfg.Name)) + "</h1>")
		if cfg.Intro != "" {
			buf.WriteString("<p>" + html.EscapeString(cfg.Intro) + "</p>")
		}
		buf.WriteString("<h2>Recent posts</h2>")
		writeListings(buf, recent)
		buf.WriteString(`<p><a href="/blog/">All posts</a></p>`)
	})
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
	}
	return page(cfg, meta, WebsiteJsonLD(cfg), body)
}

// Blog renders the full post index with per-post and total view counts.
func Blog(cfg SiteConfig, listings []Listing, totalViews int) templ.Component {
	body := raw(func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Blog</h1>")
		buf.WriteString(fmt.Sprintf(`<p class="total-views">%d total views</p>`, totalViews))
		writeListings(buf, listings)
	})
	meta := PageMeta{
		Title:       "Blog | " + cfg.Name,
		Description: "All posts, newest first.",
		URL:         buildURL(cfg.URL, "blog"),
		OGType:      "website",
	}
	return page(cfg, meta, "", body)
}

func writeListings(buf *bytes.Buffer, listings []Listing) {
	buf.WriteString(`<ul class="post-list">`)
	for _, l := range listings {
		buf.WriteString(`<li><a href="` + html.EscapeString(l.Post.Link()) + `">`)
		buf.WriteString(html.EscapeString(l.Post.Title))
		buf.WriteString("</a>")
		if l.Post.Summary != "" {
			buf.WriteString(`<p>` + html.EscapeString(l.Post.Summary) + `</p>`)
		}
		buf.WriteString(fmt.Sprintf(`<span class="views">%d views</span>`, l.Views))
		buf.WriteString("</li>")
	}
	buf.WriteString("</ul>")
}

// Post renders a single post page. The body component is the pre-rendered
// Markdown document.
func Post(cfg SiteConfig, data PostData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<article>")
		buf.WriteString("<h1>" + html.EscapeString(data.Post.Title) + "</h1>")
		buf.WriteString(`<p class="post-meta">`)
		buf.WriteString(html.EscapeString(data.DateLine))
		buf.WriteString(fmt.Sprintf(` · %d views`, data.Views))
		buf.WriteString("</p>")
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := data.Body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</article>")
		return err
	})
	meta := PageMeta{
		Title:       data.Post.Title + " | " + cfg.Name,
		Description: data.Post.Summary,
		URL:         buildURL(cfg.URL, "blog", data.Post.Slug),
		Image:       ogImageURL(cfg, data.Post.Title, data.Post.Image),
		OGType:      "article",
	}
	return page(cfg, meta, data.JSONLD, body)
}

// Work renders the work history page from the configured entries.
func Work(cfg SiteConfig) templ.Component {
	body := raw(func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Work</h1>")
		for _, entry := range cfg.Work {
			buf.WriteString(`<section class="work-entry"><h2>`)
			if entry.URL != "" {
				buf.WriteString(`<a href="` + html.EscapeString(entry.URL) + `" target="_blank" rel="noopener noreferrer">`)
				buf.WriteString(html.EscapeString(entry.Company))
				buf.WriteString("</a>")
			} else {
				buf.WriteString(html.EscapeString(entry.Company))
			}
			buf.WriteString("</h2>")
			buf.WriteString(`<p class="work-role">` + html.EscapeString(entry.Title))
			if entry.Period != "" {
				buf.WriteString(", " + html.EscapeString(entry.Period))
			}
			buf.WriteString("</p>")
			if len(entry.Notes) > 0 {
				buf.WriteString("<ul>")
				for _, note := range entry.Notes {
					buf.WriteString("<li>" + html.EscapeString(note) + "</li>")
				}
				buf.WriteString("</ul>")
			}
			buf.WriteString("</section>")
		}
	})
	meta := PageMeta{
		Title:       "Work | " + cfg.Name,
		Description: "Work history.",
		URL:         buildURL(cfg.URL, "work"),
		OGType:      "website",
	}
	return page(cfg, meta, "", body)
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	body := raw(func(buf *bytes.Buffer) {
		buf.WriteString("<h1>404</h1><p>This page does not exist.</p>")
		buf.WriteString(`<p><a href="/">Back home</a></p>`)
	})
	return page(cfg, PageMeta{Title: "Not Found | " + cfg.Name}, "", body)
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	body := raw(func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Something went wrong</h1><p>Try again in a moment.</p>")
	})
	return page(cfg, PageMeta{Title: "Error | " + cfg.Name}, "", body)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

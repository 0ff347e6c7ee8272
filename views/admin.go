package views

import (
	"bytes"
	"html"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
)

// AdminLogin renders the password form, optionally with a failure notice.
func AdminLogin(cfg SiteConfig, showError bool, csrfToken string) templ.Component {
	body := raw(func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Admin</h1>")
		if showError {
			buf.WriteString(`<p class="error">Wrong password.</p>`)
		}
		buf.WriteString(`<form method="post" action="/admin/login/">`)
		writeCsrf(buf, csrfToken)
		buf.WriteString(`<input type="password" name="password" autofocus/>`)
		buf.WriteString(`<button type="submit">Log in</button>`)
		buf.WriteString("</form>")
	})
	return page(cfg, PageMeta{Title: "Admin | " + cfg.Name}, "", body)
}

// AdminDashboard lists every post with edit and delete controls.
func AdminDashboard(cfg SiteConfig, posts []content.Post, message, csrfToken string) templ.Component {
	body := raw(func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Posts</h1>")
		if message != "" {
			buf.WriteString(`<p class="notice">` + html.EscapeString(message) + `</p>`)
		}
		buf.WriteString(`<ul class="admin-posts">`)
		for _, p := range posts {
			buf.WriteString("<li>")
			buf.WriteString(`<a href="/admin/post/` + html.EscapeString(p.Slug) + `/">`)
			buf.WriteString(html.EscapeString(p.Title))
			buf.WriteString("</a> ")
			buf.WriteString(`<span class="slug">` + html.EscapeString(p.Slug) + `</span>`)
			buf.WriteString("</li>")
		}
		buf.WriteString("</ul>")
		buf.WriteString(`<h2>New post</h2>`)
		writeEditorForm(buf, content.RawPost{}, csrfToken)
		buf.WriteString(`<form method="post" action="/admin/logout/">`)
		writeCsrf(buf, csrfToken)
		buf.WriteString(`<button type="submit">Log out</button></form>`)
	})
	return page(cfg, PageMeta{Title: "Admin | " + cfg.Name}, "", body)
}

// AdminForm renders the editor for one raw document.
func AdminForm(cfg SiteConfig, raw0 content.RawPost, csrfToken string) templ.Component {
	body := raw(func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Edit " + html.EscapeString(raw0.Slug) + "</h1>")
		writeEditorForm(buf, raw0, csrfToken)
	})
	return page(cfg, PageMeta{Title: "Edit | " + cfg.Name}, "", body)
}

func writeEditorForm(buf *bytes.Buffer, p content.RawPost, csrfToken string) {
	buf.WriteString(`<form method="post" action="/admin/save/">`)
	writeCsrf(buf, csrfToken)
	buf.WriteString(`<input type="text" name="slug" placeholder="slug" value="` + html.EscapeString(p.Slug) + `"/>`)
	buf.WriteString(`<textarea name="content" rows="24">` + html.EscapeString(p.Content) + `</textarea>`)
	buf.WriteString(`<button type="submit">Save</button>`)
	buf.WriteString("</form>")
}

func writeCsrf(buf *bytes.Buffer, token string) {
	buf.WriteString(`<input type="hidden" name="_csrf" value="` + html.EscapeString(token) + `"/>`)
}

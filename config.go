package folio

import (
	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/views"
)

func setConfigDefaults(c *views.SiteConfig) {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDatabasePath == "" {
		c.ContentDatabasePath = "data/content.db"
	}
	if c.ViewsDatabasePath == "" {
		c.ViewsDatabasePath = "data/views.db"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithEmbeds supplies pre-fetched embed data for tweets referenced from
// post content. Embeds are resolved at render time; a post referencing an
// id missing from this mapping fails to render.
func WithEmbeds(embeds map[string]markdown.Embed) Option {
	return func(a *App) {
		a.embeds = embeds
	}
}

// WithRendererOverrides replaces built-in block renderers by kind.
// Unset kinds keep the default behavior.
func WithRendererOverrides(overrides map[markdown.BlockKind]markdown.RenderFunc) Option {
	return func(a *App) {
		a.overrides = overrides
	}
}

package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
)

// SiteConfig holds site-wide settings. Every page component receives this
// so nothing is hardcoded in templates.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD and the home page intro
	Intro       string // Short bio paragraph for the home page

	Addr                string // Listen address (default ":3000")
	ContentDatabasePath string // Post SQLite path (default "data/content.db")
	ViewsDatabasePath   string // View counter SQLite path (default "data/views.db")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	Work []WorkEntry // Work history, newest first
}

// WorkEntry is one position on the work page.
type WorkEntry struct {
	Company string
	Title   string
	URL     string
	Period  string
	Notes   []string
}

// Listing pairs a post with its view count for index pages.
type Listing struct {
	Post  content.Post
	Views int
}

// PostData carries everything the post page needs: the parsed post, its
// pre-rendered body, the formatted date line, and structured data.
type PostData struct {
	Post     content.Post
	DateLine string
	Views    int
	Body     templ.Component
	JSONLD   string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the head.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string // og:image, absolute
	OGType      string // "website" or "article"
}

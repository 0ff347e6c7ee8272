// Command folio runs the portfolio site. All branding and secrets come
// from environment variables.
package main

import (
	"log"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

func main() {
	cfg := views.SiteConfig{
		Name:        folio.EnvOr("SITE_NAME", "Portfolio"),
		URL:         folio.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: folio.EnvOr("SITE_DESCRIPTION", ""),
		Author:      folio.EnvOr("SITE_AUTHOR", ""),
		Intro:       folio.EnvOr("SITE_INTRO", ""),

		Addr:                folio.EnvOr("ADDR", ":3000"),
		ContentDatabasePath: folio.EnvOr("CONTENT_DB_PATH", "data/content.db"),
		ViewsDatabasePath:   folio.EnvOr("VIEWS_DB_PATH", "data/views.db"),

		AdminPassword: folio.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: folio.MustEnv("SESSION_SECRET"),
		CookieSecure:  folio.EnvOr("COOKIE_SECURE", "") == "true",
	}

	app := folio.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

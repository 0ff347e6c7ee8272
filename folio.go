// Package folio is a personal portfolio and blog server built with Go,
// Echo, and templ. It serves the home, blog, and work pages, tracks
// per-post view counters, renders Markdown with custom components, and
// generates Open Graph preview images.
package folio

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/viewcount"
	"github.com/eringen/folio/views"
)

// App is the central folio application. It wires together the content
// store, the view counter, handlers, and middleware.
type App struct {
	Config views.SiteConfig
	Echo   *echo.Echo
	Posts  *content.Store
	Index  *content.Index
	Views  *viewcount.Store

	loginLimiter *LoginLimiter
	staticDir    string
	embeds       map[string]markdown.Embed
	overrides    map[markdown.BlockKind]markdown.RenderFunc
	customRoutes []func(*App)
}

// New creates a new folio App with the given configuration.
func New(cfg views.SiteConfig, opts ...Option) *App {
	setConfigDefaults(&cfg)

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the stores, middleware, and routes, then starts the
// server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	posts, err := content.NewStore(a.Config.ContentDatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init content store: %w", err)
	}
	a.Posts = posts
	a.Index = content.NewIndex(posts)

	viewsStore, err := viewcount.NewStore(a.Config.ViewsDatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init views store: %w", err)
	}
	a.Views = viewsStore

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/og", a.handleOGImage)

	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/work/", a.handleWork)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/post/:slug/", a.handleAdminPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/post/:slug/", a.handleAdminDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	var errs []error
	if a.Posts != nil {
		errs = append(errs, a.Posts.Close())
	}
	if a.Views != nil {
		errs = append(errs, a.Views.Close())
	}
	return errors.Join(errs...)
}

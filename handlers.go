package folio

import (
	"bytes"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/viewcount"
	"github.com/eringen/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Index.List()
	if err != nil {
		return err
	}
	records, err := a.Views.SelectAll()
	if err != nil {
		return err
	}
	recent := content.Sort(posts, 3)
	return Render(c, views.Home(a.Config, listingsFor(recent, records)))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	posts, err := a.Index.List()
	if err != nil {
		return err
	}
	records, err := a.Views.SelectAll()
	if err != nil {
		return err
	}
	total, err := a.Views.Aggregate()
	if err != nil {
		return err
	}
	sorted := content.Sort(posts, 0)
	return Render(c, views.Blog(a.Config, listingsFor(sorted, records), total))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Index.Find(slug)
	if err != nil {
		if err == content.ErrNotFound {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config))
		}
		return err
	}
	// The view counter must never take the post page down with it: a failed
	// count read is logged and the annotation drops to zero. Listing pages
	// keep treating the counter as a blocking data source.
	records, err := a.Views.SelectAll()
	if err != nil {
		c.Logger().Errorf("load view counts for %q: %v", slug, err)
		records = nil
	}

	// The body is rendered up front so an embed or parse failure surfaces
	// as a server error instead of a half-written page.
	var buf bytes.Buffer
	r := markdown.NewRenderer(markdown.Options{Overrides: a.overrides, Embeds: a.embeds})
	if err := r.Render(&buf, post.Content); err != nil {
		return err
	}

	a.trackView(c, slug)

	data := views.PostData{
		Post:     post,
		DateLine: DescribeRecency(post.PublishedAt, time.Now()),
		Views:    viewcount.CountFor(records, slug),
		Body:     templ.Raw(buf.String()),
		JSONLD:   views.BlogPostingJsonLD(a.Config, post),
	}
	return Render(c, views.Post(a.Config, data))
}

// trackView records the view without blocking the response. A failed
// increment is logged and otherwise dropped; the reader never sees it.
func (a *App) trackView(c echo.Context, slug string) {
	logger := c.Logger()
	go func() {
		if err := a.Views.Increment(slug); err != nil {
			logger.Errorf("record view for %q: %v", slug, err)
		}
	}()
}

func listingsFor(posts []content.Post, records []viewcount.Record) []views.Listing {
	listings := make([]views.Listing, 0, len(posts))
	for _, p := range posts {
		listings = append(listings, views.Listing{
			Post:  p,
			Views: viewcount.CountFor(records, p.Slug),
		})
	}
	return listings
}

func (a *App) handleWork(c echo.Context) error {
	return Render(c, views.Work(a.Config))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Index.List()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, content.Sort(posts, 0))
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Index.List()
	if err != nil {
		return err
	}
	return a.renderRSS(c, content.Sort(posts, 0))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\n\nSitemap: "+a.Config.URL+"/sitemap.xml\n")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

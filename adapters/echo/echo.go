// Package hxhookecho provides Echo framework integration for hxhook.
//
// Run prefetch hooks before a handler and read the results inside it:
//
//	e := echo.New()
//	e.GET("/profile/:id", showProfile, hxhookecho.Prefetch(func(c echo.Context) any {
//	    return []hxhook.Component{profilePage, sidebar}
//	}))
//
//	func showProfile(c echo.Context) error {
//	    results := hxhookecho.Results(c)
//	    return hxhookecho.Render(c, profileView(results))
//	}
package hxhookecho

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/hxhook"
)

// DefaultContextKey is the echo context key results are stored under.
const DefaultContextKey = "hxhook.results"

// ComponentsFunc chooses the components to prefetch for a request.
type ComponentsFunc func(c echo.Context) any

// Option configures the Prefetch middleware.
type Option func(*options)

type options struct {
	engine   *hxhook.Engine
	locals   func(c echo.Context) any
	onError  func(c echo.Context, err error) error
	key      string
	deferred bool
}

// WithEngine sets the engine used to run fetchers.
// Defaults to an engine on the package default registry.
func WithEngine(engine *hxhook.Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithLocals sets how fetcher locals are built from the request.
// Defaults to passing the echo.Context itself.
func WithLocals(fn func(c echo.Context) any) Option {
	return func(o *options) {
		o.locals = fn
	}
}

// WithErrorHandler sets what happens when a fetcher fails.
// Defaults to a 500 HTTP error carrying the fetch error as internal cause.
func WithErrorHandler(fn func(c echo.Context, err error) error) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithContextKey sets the echo context key results are stored under.
func WithContextKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// Deferred makes the middleware run Defer fetchers instead of Prefetch ones.
func Deferred() Option {
	return func(o *options) {
		o.deferred = true
	}
}

// Prefetch returns middleware that runs the fetchers of the components chosen
// by components and waits for them before calling the next handler.
func Prefetch(components ComponentsFunc, opts ...Option) echo.MiddlewareFunc {
	o := &options{key: DefaultContextKey}
	for _, opt := range opts {
		opt(o)
	}
	if o.engine == nil {
		o.engine = hxhook.NewEngine()
	}
	if o.locals == nil {
		o.locals = func(c echo.Context) any { return c }
	}
	if o.onError == nil {
		o.onError = func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusInternalServerError, "prefetch failed").SetInternal(err)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			fetch := o.engine.GetPrefetchedData
			if o.deferred {
				fetch = o.engine.GetDeferredData
			}

			results, err := fetch(ctx, components(c), o.locals(c)).Await(ctx)
			if err != nil {
				return o.onError(c, err)
			}
			c.Set(o.key, results)
			return next(c)
		}
	}
}

// Results returns the fetch results stored by Prefetch under
// DefaultContextKey, or nil when the middleware did not run.
func Results(c echo.Context) []any {
	return ResultsFor(c, DefaultContextKey)
}

// ResultsFor is Results for a custom context key.
func ResultsFor(c echo.Context, key string) []any {
	results, _ := c.Get(key).([]any)
	return results
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxhookecho.Render(c, myTemplate())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}

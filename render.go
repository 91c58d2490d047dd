package hxhook

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxhook.Render(w, r, myTemplate())
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// Prerender waits for the prefetch data of components and then renders, in
// order, every component that is a templ.Component.
//
// Nothing is written to w if fetching fails. Output is buffered so a render
// error part way through leaves w untouched as well.
func (e *Engine) Prerender(ctx context.Context, w io.Writer, components any, locals any) error {
	if _, err := e.GetPrefetchedData(ctx, components, locals).Await(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, c := range normalize(components) {
		if isFalsy(c) {
			continue
		}
		tc, ok := c.(templ.Component)
		if !ok {
			continue
		}
		if err := tc.Render(ctx, &buf); err != nil {
			return err
		}
	}
	_, err := buf.WriteTo(w)
	return err
}

// Serve returns a handler that prerenders components for each request.
// When locals is nil, fetchers receive the *http.Request as locals.
//
// Fetch or render failures produce a 500 response.
func (e *Engine) Serve(components any, locals any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := locals
		if l == nil {
			l = r
		}
		var buf bytes.Buffer
		if err := e.Prerender(r.Context(), &buf, components, l); err != nil {
			e.logger.Error().Err(err).Str("path", r.URL.Path).Msg("prerender failed")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	})
}

// Prerender runs Engine.Prerender on the default engine.
func Prerender(ctx context.Context, w io.Writer, components any, locals any) error {
	return std.Prerender(ctx, w, components, locals)
}

// Serve runs Engine.Serve on the default engine.
func Serve(components any, locals any) http.Handler {
	return std.Serve(components, locals)
}

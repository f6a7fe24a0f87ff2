// Package site serves the dashboard's embedded static assets.
package site

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Prefix is the URL path the assets are mounted under.
const Prefix = "/static/"

// Register attaches the embedded static asset routes to r.
func Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}

	files := http.StripPrefix(Prefix, http.FileServer(FS()))
	r.Handle(Prefix+"*", cacheControl(files))
}

func cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}

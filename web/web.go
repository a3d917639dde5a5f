// Package web serves the two static pages of the site.
package web

import (
	"embed"
	"net/http"
)

//go:embed pages/*.html
var pages embed.FS

// Page returns a handler serving one embedded HTML page.
func Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := pages.ReadFile("pages/" + name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(data)
	}
}

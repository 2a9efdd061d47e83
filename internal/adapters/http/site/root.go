// Package site serves the embedded signup web app.
package site

import (
	"context"
	"io/fs"
	"net/http"
)

// indexPath is where the root redirect lands.
const indexPath = "/static/index.html"

// Register attaches the web app routes to mux.
//
//	GET /                   -> 307 redirect to /static/index.html
//	GET /static/index.html  -> web app index
//	GET /static/*           -> embedded web app files
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// http.FileServer answers any */index.html with a 301 to the bare
	// directory, so the redirect target gets its own handler.
	mux.HandleFunc(indexPath, serveIndex)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/", NewRootHandler().HandleRoot)
}

// serveIndex writes the embedded index page directly.
func serveIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(staticFS, "static/index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

// RootHandler handles root path requests.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot redirects GET / to the web app index. Anything else that falls
// through to the catch-all pattern is a 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
}

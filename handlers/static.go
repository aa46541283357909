package handlers

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Static serves files from assets and falls back to index.html for any path
// that does not name a file.
func Static(assets fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(assets))

	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "index.html"
		}

		if info, err := fs.Stat(assets, name); err != nil || info.IsDir() {
			http.ServeFileFS(w, r, assets, "index.html")
			return
		}

		fileServer.ServeHTTP(w, r)
	}
}

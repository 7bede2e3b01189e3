package httpserver

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const indexFile = "index.html"

// serveStatic serves an existing asset by path and index.html for anything
// else, so client-side routes resolve to the single page.
func (s *HTTPServer) serveStatic(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = indexFile
	}

	if info, err := fs.Stat(s.assets, name); err != nil || info.IsDir() {
		name = indexFile
	}

	http.ServeFileFS(w, r, s.assets, name)
}

package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// handleSPA serves the game client's static bundle. Requests that don't
// name a real file get index.html, so room URLs like /friday-night land
// on the client router instead of a 404.
func handleSPA(dir string) http.HandlerFunc {
	fs := http.Dir(dir)
	fileServer := http.FileServer(fs)

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		// Anything else is a client-side route.
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}

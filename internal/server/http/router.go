package httpserver

import "net/http"

// NewMux mounts the API under /api/, a health probe, and static files from
// webDir at the root.
func NewMux(h http.Handler, webDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
	}
	return mux
}

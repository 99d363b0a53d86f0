package mobile

import (
	"log"
	"net/http"

	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	h := httpserver.NewHandler(game.NewManager())
	mux := httpserver.NewMux(h, webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}

package main

import (
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

// openBrowser starts the platform URL opener without waiting for it.
func openBrowser(url string) error {
	name, args := "xdg-open", []string{url}
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler", url}
	}
	return exec.Command(name, args...).Start()
}

func main() {
	addr := flag.String("addr", getenv("XIANGQI_ADDR", ":2888"), "listen address")
	webDir := flag.String("web", getenv("XIANGQI_WEB", "./web"), "directory with index.html / js / svg")
	open := flag.Bool("open", getenb("XIANGQI_OPEN", true), "open the default browser once listening")
	flag.Parse()

	h := httpserver.NewHandler(game.NewManager())
	mux := httpserver.NewMux(h, *webDir)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("listening on %s, serving static from %s", ln.Addr(), *webDir)

	if *open {
		url := "http://127.0.0.1:" + strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
		if err := openBrowser(url); err != nil {
			log.Printf("open browser: %v (visit %s)", err, url)
		}
	}

	if err := srv.Serve(ln); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

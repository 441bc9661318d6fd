package site

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
)

// Serve starts a local HTTP file server for an exported site. The export's
// search index backs /api/search?q=.
func Serve(dir string, port int, open bool) error {
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	if open {
		go OpenBrowser(url)
	}

	fmt.Printf("Serving export at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	return http.ListenAndServe(addr, Handler(dir))
}

// Handler serves the files of an exported site plus its search endpoint.
func Handler(dir string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		handleSearch(w, r, filepath.Join(dir, "search-index.json"))
	})

	// Static files (must be registered after API routes).
	mux.Handle("/", http.FileServer(http.Dir(dir)))
	return mux
}

func handleSearch(w http.ResponseWriter, r *http.Request, indexPath string) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, `{"error":"q is required"}`, http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	entries, err := ReadSearchIndex(indexPath)
	if err != nil {
		log.Printf("site: reading search index: %v", err)
		http.Error(w, `{"error":"search index unavailable"}`, http.StatusInternalServerError)
		return
	}

	results := Search(entries, query, limit)
	if results == nil {
		results = []SearchEntry{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

package web

import (
	"io/fs"
	"net/http"
)

const (
	codeNotFound   = "NOT_FOUND"
	codeBadRequest = "BAD_REQUEST"
	codeUpstream   = "UPSTREAM_ERROR"
)

type Handler struct {
	svc   Pokedex
	pages pages
}

func NewHandler(svc Pokedex) (*Handler, error) {
	p, err := parsePages("welcome.html", "pokemons.html", "details.html", "notfound.html")
	if err != nil {
		return nil, err
	}
	return &Handler{svc: svc, pages: p}, nil
}

// Routes registers every screen, the JSON API and static assets.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Welcome)
	mux.HandleFunc("GET /pokemons", h.Listing)
	mux.HandleFunc("GET /details", h.Details)

	mux.HandleFunc("GET /api/pokemons", h.APIList)
	mux.HandleFunc("GET /api/pokemons/{name}", h.APIGet)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	static, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	mux.HandleFunc("/", h.NotFound)
	return mux
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusNotFound, "notfound.html", nil)
}

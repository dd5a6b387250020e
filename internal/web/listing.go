package web

import (
	"log"
	"net/http"

	"pokedex/internal/httpx"
	"pokedex/internal/pokemon"
	"pokedex/internal/screen"
)

// Listing handles GET /pokemons
func (h *Handler) Listing(w http.ResponseWriter, r *http.Request) {
	scr := screen.New[[]pokemon.Summary]()
	scr.Mount()
	defer scr.Unmount()

	st := scr.Load(r.Context(), h.svc.List)
	status := http.StatusOK
	if st.Status == screen.Failed {
		log.Printf("listing: load failed request_id=%s error=%v", httpx.RequestIDFrom(r), st.Err)
		status = http.StatusBadGateway
	}

	h.pages.render(w, r, status, "pokemons.html", newListingView(st))
}

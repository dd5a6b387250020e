package web

import "net/http"

const welcomeArtworkURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/1.png"

type WelcomeView struct {
	BackgroundURL string
	ListingURL    string
}

// Welcome handles GET /
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, "welcome.html", WelcomeView{
		BackgroundURL: welcomeArtworkURL,
		ListingURL:    "/pokemons",
	})
}

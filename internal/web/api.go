package web

import (
	"errors"
	"log"
	"net/http"

	"pokedex/internal/httpx"
	"pokedex/internal/pokemon"
)

type recordResponse struct {
	pokemon.Record
	PrimaryType  string   `json:"primary_type"`
	PrimaryColor string   `json:"primary_color"`
	ArtworkURL   string   `json:"artwork_url,omitempty"`
	StatPercents []int    `json:"stat_percents"`
	SpriteURLs   []string `json:"sprite_urls"`
}

// APIList handles GET /api/pokemons
// @Summary List the fixed page of Pokémon
// @Tags pokemons
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /api/pokemons [get]
func (h *Handler) APIList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("api list: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, r, http.StatusBadGateway, codeUpstream, "Failed to load Pokémon", nil)
		return
	}
	if list == nil {
		list = []pokemon.Summary{}
	}

	httpx.JSONSuccess(w, r, list, map[string]any{"count": len(list)})
}

// APIGet handles GET /api/pokemons/{name}
// @Summary Get one Pokémon by name
// @Tags pokemons
// @Produce json
// @Param name path string true "Pokémon name or id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /api/pokemons/{name} [get]
func (h *Handler) APIGet(w http.ResponseWriter, r *http.Request) {
	q := DetailsQuery{Name: normalizeName(r.PathValue("name"))}
	if q.Name == "" || q.Validate() != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, codeBadRequest, "invalid name", []httpx.ErrorDetail{
			{Field: "name", Message: "lowercase letters, digits and dashes, at most 100 characters"},
		})
		return
	}

	rec, err := h.svc.Get(r.Context(), q.Name)
	if err != nil {
		if errors.Is(err, pokemon.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, codeNotFound, failureReason(codeNotFound, q.Name), nil)
			return
		}
		log.Printf("api get: name=%s request_id=%s error=%v", q.Name, httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, r, http.StatusBadGateway, codeUpstream, "Failed to load Pokémon", nil)
		return
	}

	resp := recordResponse{
		Record:       rec,
		PrimaryType:  rec.PrimaryType(),
		PrimaryColor: pokemon.ColorFor(rec.PrimaryType()),
		ArtworkURL:   rec.ArtworkURL(),
		StatPercents: make([]int, 0, len(rec.Stats)),
		SpriteURLs:   rec.SpriteURLs(),
	}
	for _, s := range rec.Stats {
		resp.StatPercents = append(resp.StatPercents, s.Percent())
	}
	httpx.JSONSuccess(w, r, resp, nil)
}

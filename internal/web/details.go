package web

import (
	"context"
	"errors"
	"log"
	"net/http"

	"pokedex/internal/httpx"
	"pokedex/internal/pokemon"
	"pokedex/internal/screen"
)

// Details handles GET /details?name={name}
//
// Without a name nothing is fetched and the loading placeholder is shown.
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	q := DetailsQuery{Name: normalizeName(r.URL.Query().Get("name"))}

	scr := screen.New[pokemon.Record]()
	scr.Mount()
	defer scr.Unmount()

	if q.Name == "" {
		h.pages.render(w, r, http.StatusOK, "details.html", newDetailsView("", scr.State()))
		return
	}

	if err := q.Validate(); err != nil {
		scr.Fail(err)
		v := newDetailsView(q.Name, scr.State())
		v.Reason = failureReason(codeBadRequest, q.Name)
		v.RetryURL = ""
		h.pages.render(w, r, http.StatusBadRequest, "details.html", v)
		return
	}

	st := scr.Load(r.Context(), func(ctx context.Context) (pokemon.Record, error) {
		return h.svc.Get(ctx, q.Name)
	})
	v := newDetailsView(q.Name, st)
	if st.Status != screen.Failed {
		h.pages.render(w, r, http.StatusOK, "details.html", v)
		return
	}

	log.Printf("details: load failed name=%s request_id=%s error=%v", q.Name, httpx.RequestIDFrom(r), st.Err)
	if !errors.Is(st.Err, pokemon.ErrNotFound) {
		v.Reason = failureReason(codeUpstream, q.Name)
		h.pages.render(w, r, http.StatusBadGateway, "details.html", v)
		return
	}

	v.Reason = failureReason(codeNotFound, q.Name)
	suggestions, err := h.svc.Suggest(r.Context(), q.Name)
	if err != nil {
		log.Printf("details: suggest failed name=%s request_id=%s error=%v", q.Name, httpx.RequestIDFrom(r), err)
	}
	h.pages.render(w, r, http.StatusNotFound, "details.html", withSuggestions(v, suggestions))
}

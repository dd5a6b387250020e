package web

import (
	"fmt"
	"net/url"

	"pokedex/internal/pokemon"
	"pokedex/internal/screen"
)

const (
	cardAlpha   = "50"
	headerAlpha = "22"
	cardStagger = 100
)

type BadgeView struct {
	Name  string
	Color string
}

type CardView struct {
	Name       string
	Tint       string
	Badges     []BadgeView
	FrontURL   string
	BackURL    string
	DetailsURL string
	DelayMS    int
}

type ListingView struct {
	Status   screen.Status
	Reason   string
	Cards    []CardView
	RetryURL string
}

type StatView struct {
	Label   string
	Value   int
	Percent int
	Color   string
}

type DetailsView struct {
	Name        string
	Status      screen.Status
	Reason      string
	HeaderTint  string
	Badges      []BadgeView
	ArtworkURL  string
	Stats       []StatView
	Sprites     []string
	Suggestions []CardView
	RetryURL    string
}

// DetailsURL is the navigation target for one creature.
func DetailsURL(name string) string {
	return "/details?" + url.Values{"name": {name}}.Encode()
}

func badges(types []string, alpha string) []BadgeView {
	out := make([]BadgeView, 0, len(types))
	for _, t := range types {
		color := pokemon.ColorFor(t)
		if alpha != "" {
			color = pokemon.Tint(color, alpha)
		}
		out = append(out, BadgeView{Name: t, Color: color})
	}
	return out
}

func newListingView(st screen.State[[]pokemon.Summary]) ListingView {
	v := ListingView{
		Status:   st.Status,
		RetryURL: "/pokemons",
		Cards:    make([]CardView, 0, len(st.Data)),
	}
	if st.Status == screen.Failed {
		v.Reason = "Failed to load Pokémon. Please try again."
	}
	for i, s := range st.Data {
		v.Cards = append(v.Cards, CardView{
			Name:       s.Name,
			Tint:       pokemon.Tint(pokemon.ColorFor(pokemon.PrimaryType(s.Types)), cardAlpha),
			Badges:     badges(s.Types, cardAlpha),
			FrontURL:   s.FrontImageURL,
			BackURL:    s.BackImageURL,
			DetailsURL: DetailsURL(s.Name),
			DelayMS:    i * cardStagger,
		})
	}
	return v
}

func newDetailsView(name string, st screen.State[pokemon.Record]) DetailsView {
	v := DetailsView{
		Name:       name,
		Status:     st.Status,
		HeaderTint: pokemon.Tint(pokemon.FallbackColor, headerAlpha),
	}
	if name != "" {
		v.RetryURL = DetailsURL(name)
	}
	if st.Status != screen.Loaded {
		return v
	}

	rec := st.Data
	primary := pokemon.ColorFor(rec.PrimaryType())
	v.HeaderTint = pokemon.Tint(primary, headerAlpha)
	v.Badges = badges(rec.Types, "")
	v.ArtworkURL = rec.ArtworkURL()
	v.Sprites = rec.SpriteURLs()
	v.Stats = make([]StatView, 0, len(rec.Stats))
	for _, s := range rec.Stats {
		v.Stats = append(v.Stats, StatView{
			Label:   s.Name,
			Value:   s.BaseValue,
			Percent: s.Percent(),
			Color:   primary,
		})
	}
	return v
}

func withSuggestions(v DetailsView, names []string) DetailsView {
	for _, n := range names {
		v.Suggestions = append(v.Suggestions, CardView{Name: n, DetailsURL: DetailsURL(n)})
	}
	return v
}

func failureReason(kind string, name string) string {
	switch kind {
	case codeNotFound:
		return fmt.Sprintf("No Pokémon named %q was found.", name)
	case codeBadRequest:
		return fmt.Sprintf("%q is not a valid Pokémon name.", name)
	default:
		return "Failed to load this Pokémon. Please try again."
	}
}

func (v DetailsView) Loaded() bool { return v.Status == screen.Loaded }

package pokemon

import (
	"math"

	"pokedex/internal/platform/pokeapi"
)

// Summary is one card on the listing screen.
type Summary struct {
	Name          string   `json:"name"`
	FrontImageURL string   `json:"front_image_url,omitempty"`
	BackImageURL  string   `json:"back_image_url,omitempty"`
	Types         []string `json:"types"`
}

type Stat struct {
	Name      string `json:"name"`
	BaseValue int    `json:"base_value"`
}

// Percent is the width of the stat bar.
func (s Stat) Percent() int { return StatPercent(s.BaseValue) }

type Sprite struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Record is the full creature shown on the details screen.
type Record struct {
	Name    string   `json:"name"`
	Types   []string `json:"types"`
	Stats   []Stat   `json:"stats"`
	Sprites []Sprite `json:"sprites"`
}

// PrimaryType returns the first elemental type or "".
func (r Record) PrimaryType() string { return PrimaryType(r.Types) }

// ArtworkURL prefers the official artwork over the default front sprite.
func (r Record) ArtworkURL() string {
	if u := r.sprite("other.official-artwork.front_default"); u != "" {
		return u
	}
	return r.sprite("front_default")
}

func (r Record) sprite(key string) string {
	for _, s := range r.Sprites {
		if s.Key == key {
			return s.URL
		}
	}
	return ""
}

// SpriteURLs returns every non-empty sprite url in source order.
func (r Record) SpriteURLs() []string {
	out := make([]string, 0, len(r.Sprites))
	for _, s := range r.Sprites {
		if s.URL != "" {
			out = append(out, s.URL)
		}
	}
	return out
}

func PrimaryType(types []string) string {
	if len(types) == 0 {
		return ""
	}
	return types[0]
}

const maxStat = 255

// StatPercent maps a base stat onto [0,100].
func StatPercent(v int) int {
	v = min(max(v, 0), maxStat)
	return int(math.Round(float64(v) / maxStat * 100))
}

func typeNames(slots []pokeapi.TypeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, t := range slots {
		if t.Type == nil || t.Type.Name == "" {
			continue
		}
		out = append(out, t.Type.Name)
	}
	return out
}

func summaryFromDetail(name string, d *pokeapi.Detail) Summary {
	if name == "" {
		name = d.Name
	}
	return Summary{
		Name:          name,
		FrontImageURL: d.Sprites.Lookup("front_default"),
		BackImageURL:  d.Sprites.Lookup("back_default"),
		Types:         typeNames(d.Types),
	}
}

func recordFromDetail(d *pokeapi.Detail) Record {
	rec := Record{
		Name:    d.Name,
		Types:   typeNames(d.Types),
		Stats:   make([]Stat, 0, len(d.Stats)),
		Sprites: make([]Sprite, 0, len(d.Sprites)),
	}
	for _, s := range d.Stats {
		if s.Stat == nil {
			continue
		}
		rec.Stats = append(rec.Stats, Stat{Name: s.Stat.Name, BaseValue: s.BaseStat})
	}
	for _, s := range d.Sprites {
		rec.Sprites = append(rec.Sprites, Sprite{Key: s.Path, URL: s.URL})
	}
	return rec
}

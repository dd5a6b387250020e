package pokemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatPercent(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{255, 100},
		{300, 100},
		{-5, 0},
		{45, 18},
		{128, 50},
		{1, 0},
		{2, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatPercent(tt.in), "StatPercent(%d)", tt.in)
	}

	for v := 0; v <= 255; v++ {
		p := StatPercent(v)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
	}
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#4CAF50", ColorFor("grass"))
	assert.Equal(t, "#A8A878", ColorFor("normal"))
	assert.Equal(t, FallbackColor, ColorFor("crystal"))
	assert.Equal(t, FallbackColor, ColorFor(""))

	for _, typ := range knownTypes() {
		assert.NotEqual(t, FallbackColor, ColorFor(typ), typ)
	}
}

func TestCatalogTypesAreCovered(t *testing.T) {
	catalogTypes := []string{
		"normal", "fighting", "flying", "poison", "ground", "rock", "bug", "ghost", "steel",
		"fire", "water", "grass", "electric", "psychic", "ice", "dragon", "dark", "fairy", "stellar",
	}
	assert.ElementsMatch(t, catalogTypes, knownTypes())
}

func TestTint(t *testing.T) {
	assert.Equal(t, "#4CAF5050", Tint("#4CAF50", "50"))
	assert.Equal(t, "#99999922", Tint(FallbackColor, "22"))
	assert.Equal(t, "red", Tint("red", "22"))
}

func TestRecord_Derived(t *testing.T) {
	rec := Record{
		Name:  "bulbasaur",
		Types: []string{"grass", "poison"},
		Sprites: []Sprite{
			{Key: "back_default", URL: "b.png"},
			{Key: "back_shiny"},
			{Key: "front_default", URL: "f.png"},
			{Key: "other.official-artwork.front_default", URL: "art.png"},
		},
	}
	assert.Equal(t, "grass", rec.PrimaryType())
	assert.Equal(t, "art.png", rec.ArtworkURL())
	assert.Equal(t, []string{"b.png", "f.png", "art.png"}, rec.SpriteURLs())

	rec.Sprites = rec.Sprites[:3]
	assert.Equal(t, "f.png", rec.ArtworkURL())

	empty := Record{}
	assert.Equal(t, "", empty.PrimaryType())
	assert.Equal(t, "", empty.ArtworkURL())
	assert.Empty(t, empty.SpriteURLs())
}

func knownTypes() []string {
	out := make([]string, 0, len(palette))
	for k := range palette {
		out = append(out, k)
	}
	return out
}

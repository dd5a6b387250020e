package pokemon

// FallbackColor is used for any type missing from the palette.
const FallbackColor = "#999999"

var palette = map[string]string{
	"normal":   "#A8A878",
	"grass":    "#4CAF50",
	"fire":     "#FF7043",
	"water":    "#42A5F5",
	"bug":      "#AED581",
	"electric": "#FFD54F",
	"psychic":  "#FF80AB",
	"ice":      "#81D4FA",
	"rock":     "#8D6E63",
	"ground":   "#D2B48C",
	"poison":   "#BA68C8",
	"flying":   "#90CAF9",
	"dragon":   "#7E57C2",
	"dark":     "#424242",
	"steel":    "#B0BEC5",
	"fairy":    "#F48FB1",
	"ghost":    "#9575CD",
	"fighting": "#EF9A9A",
	"stellar":  "#40B5A5",
}

// ColorFor resolves an elemental type to its display color.
func ColorFor(typeName string) string {
	if c, ok := palette[typeName]; ok {
		return c
	}
	return FallbackColor
}

// Tint appends a two hex digit alpha channel to a #RRGGBB color.
func Tint(color, alpha string) string {
	if len(color) != 7 || len(alpha) != 2 {
		return color
	}
	return color + alpha
}

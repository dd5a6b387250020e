package pokeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IndexPage matches GET /pokemon?limit=N
type IndexPage struct {
	Count   int          `json:"count"`
	Results []IndexEntry `json:"results"`
}

type IndexEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type TypeSlot struct {
	Slot int            `json:"slot"`
	Type *NamedResource `json:"type"`
}

type StatSlot struct {
	BaseStat int            `json:"base_stat"`
	Effort   int            `json:"effort"`
	Stat     *NamedResource `json:"stat"`
}

// Detail matches GET /pokemon/{name-or-id}. Only the fields the screens
// read are decoded.
type Detail struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Sprites Sprites    `json:"sprites"`
	Types   []TypeSlot `json:"types"`
	Stats   []StatSlot `json:"stats"`
}

// Sprite is one leaf of the sprites object. Path joins nested keys with
// dots, e.g. "other.official-artwork.front_default". URL is empty for null.
type Sprite struct {
	Path string
	URL  string
}

// Sprites is the sprites object flattened in document order.
type Sprites []Sprite

// Lookup returns the url stored under path, or "" when absent or null.
func (s Sprites) Lookup(path string) string {
	for _, sp := range s {
		if sp.Path == path {
			return sp.URL
		}
	}
	return ""
}

// URLs returns every non-empty url in document order.
func (s Sprites) URLs() []string {
	out := make([]string, 0, len(s))
	for _, sp := range s {
		if sp.URL != "" {
			out = append(out, sp.URL)
		}
	}
	return out
}

func (s *Sprites) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out Sprites
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("sprites: expected object, got %v", tok)
	}
	if err := walkObject(dec, nil, &out); err != nil {
		return fmt.Errorf("sprites: %w", err)
	}
	*s = out
	return nil
}

// walkObject consumes an object body whose opening brace was already read.
func walkObject(dec *json.Decoder, prefix []string, out *Sprites) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected key, got %v", tok)
		}
		if err := walkValue(dec, append(prefix, key), out); err != nil {
			return err
		}
	}
	_, err := dec.Token()
	return err
}

// walkArray consumes an array body; elements are keyed by their index.
func walkArray(dec *json.Decoder, prefix []string, out *Sprites) error {
	for i := 0; dec.More(); i++ {
		if err := walkValue(dec, append(prefix, strconv.Itoa(i)), out); err != nil {
			return err
		}
	}
	_, err := dec.Token()
	return err
}

func walkValue(dec *json.Decoder, path []string, out *Sprites) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return walkObject(dec, path, out)
		case '[':
			return walkArray(dec, path, out)
		}
	case string:
		*out = append(*out, Sprite{Path: strings.Join(path, "."), URL: v})
	case nil:
		*out = append(*out, Sprite{Path: strings.Join(path, ".")})
	}
	return nil
}

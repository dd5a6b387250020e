package pokemon

import (
	"context"

	"pokedex/internal/platform/pokeapi"
)

// Catalog is the external creature catalog.
type Catalog interface {
	FetchPage(ctx context.Context, limit int) (*pokeapi.IndexPage, error)
	FetchDetail(ctx context.Context, nameOrURL string) (*pokeapi.Detail, error)
}

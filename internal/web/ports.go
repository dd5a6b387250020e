package web

import (
	"context"

	"pokedex/internal/pokemon"
)

//go:generate mockgen -destination=mocks/mock_pokedex.go -package=mocks pokedex/internal/web Pokedex

// Pokedex is what the screens need from the domain layer.
type Pokedex interface {
	List(ctx context.Context) ([]pokemon.Summary, error)
	Get(ctx context.Context, name string) (pokemon.Record, error)
	Suggest(ctx context.Context, name string) ([]string, error)
}

package pokemon

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/sync/errgroup"

	"pokedex/internal/platform/pokeapi"
)

var ErrNotFound = errors.New("pokemon not found")

const (
	DefaultPageSize = 10
	maxSuggestions  = 3
)

type Config struct {
	PageSize         int
	FetchConcurrency int
}

// Service loads listing and details data from the catalog.
type Service struct {
	catalog Catalog
	cfg     Config
}

func NewService(catalog Catalog, cfg Config) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = cfg.PageSize
	}
	return &Service{catalog: catalog, cfg: cfg}
}

// List fetches the index page and then every entry's detail concurrently.
// Output order follows the index. An entry whose detail fetch fails is
// logged and left out instead of failing the whole page.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	page, err := s.catalog.FetchPage(ctx, s.cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}

	slots := make([]*Summary, len(page.Results))
	errs := make([]error, len(page.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FetchConcurrency)
	for i, entry := range page.Results {
		g.Go(func() error {
			target := entry.URL
			if target == "" {
				target = entry.Name
			}
			d, err := s.catalog.FetchDetail(gctx, target)
			if err != nil {
				log.Printf("list pokemon: skipping entry name=%s error=%v", entry.Name, err)
				errs[i] = err
				return nil
			}
			sum := summaryFromDetail(entry.Name, d)
			slots[i] = &sum
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}

	out := make([]Summary, 0, len(slots))
	for _, sum := range slots {
		if sum != nil {
			out = append(out, *sum)
		}
	}
	if len(slots) > 0 && len(out) == 0 {
		return nil, fmt.Errorf("list pokemon: all %d detail fetches failed: %w", len(slots), errors.Join(errs...))
	}
	return out, nil
}

// Get returns the full record for a creature name or id.
func (s *Service) Get(ctx context.Context, name string) (Record, error) {
	d, err := s.catalog.FetchDetail(ctx, name)
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Record{}, fmt.Errorf("get pokemon %s: %w", name, err)
	}
	return recordFromDetail(d), nil
}

// Suggest returns index names close to name, best match first.
func (s *Service) Suggest(ctx context.Context, name string) ([]string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	page, err := s.catalog.FetchPage(ctx, s.cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("suggest pokemon: %w", err)
	}

	type scored struct {
		name string
		dist int
	}
	limit := suggestLimit(len(name))
	var results []scored
	for _, e := range page.Results {
		d := levenshtein.ComputeDistance(name, e.Name)
		if strings.HasPrefix(e.Name, name) {
			d = 0
		}
		if d > limit {
			continue
		}
		results = append(results, scored{name: e.Name, dist: d})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].name < results[j].name
		}
		return results[i].dist < results[j].dist
	})

	out := make([]string, 0, min(len(results), maxSuggestions))
	for _, r := range results {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.name)
	}
	return out, nil
}

func suggestLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

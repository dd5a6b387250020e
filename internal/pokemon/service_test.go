package pokemon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pokedex/internal/platform/pokeapi"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) FetchPage(ctx context.Context, limit int) (*pokeapi.IndexPage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pokeapi.IndexPage), args.Error(1)
}

func (m *mockCatalog) FetchDetail(ctx context.Context, nameOrURL string) (*pokeapi.Detail, error) {
	args := m.Called(ctx, nameOrURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pokeapi.Detail), args.Error(1)
}

func detail(name string, types ...string) *pokeapi.Detail {
	d := &pokeapi.Detail{
		Name: name,
		Sprites: pokeapi.Sprites{
			{Path: "front_default", URL: "https://img/front/" + name + ".png"},
			{Path: "back_default", URL: "https://img/back/" + name + ".png"},
		},
	}
	for i, typ := range types {
		d.Types = append(d.Types, pokeapi.TypeSlot{Slot: i + 1, Type: &pokeapi.NamedResource{Name: typ}})
	}
	return d
}

func indexOf(names ...string) *pokeapi.IndexPage {
	page := &pokeapi.IndexPage{Count: len(names)}
	for _, n := range names {
		page.Results = append(page.Results, pokeapi.IndexEntry{Name: n, URL: "https://pokeapi.co/api/v2/pokemon/" + n + "/"})
	}
	return page
}

func TestService_List(t *testing.T) {
	names := []string{"bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon"}

	t.Run("preserves index order regardless of completion order", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchPage", mock.Anything, 5).Return(indexOf(names...), nil)
		for i, n := range names {
			// earlier entries finish later
			delay := time.Duration(len(names)-i) * 10 * time.Millisecond
			m.On("FetchDetail", mock.Anything, "https://pokeapi.co/api/v2/pokemon/"+n+"/").
				After(delay).Return(detail(n, "grass"), nil)
		}

		svc := NewService(m, Config{PageSize: 5})
		got, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, len(names))
		for i, n := range names {
			assert.Equal(t, n, got[i].Name)
			assert.Equal(t, []string{"grass"}, got[i].Types)
			assert.Equal(t, "https://img/front/"+n+".png", got[i].FrontImageURL)
			assert.Equal(t, "https://img/back/"+n+".png", got[i].BackImageURL)
		}
		m.AssertExpectations(t)
	})

	t.Run("one failing detail drops only that entry", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchPage", mock.Anything, 5).Return(indexOf(names...), nil)
		for _, n := range names {
			call := m.On("FetchDetail", mock.Anything, "https://pokeapi.co/api/v2/pokemon/"+n+"/")
			if n == "venusaur" {
				call.Return(nil, &pokeapi.NetworkError{StatusCode: 500})
				continue
			}
			call.Return(detail(n, "fire"), nil)
		}

		svc := NewService(m, Config{PageSize: 5, FetchConcurrency: 2})
		got, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, []string{"bulbasaur", "ivysaur", "charmander", "charmeleon"},
			[]string{got[0].Name, got[1].Name, got[2].Name, got[3].Name})
	})

	t.Run("every detail failing fails the page", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchPage", mock.Anything, 5).Return(indexOf(names...), nil)
		m.On("FetchDetail", mock.Anything, mock.Anything).Return(nil, &pokeapi.NetworkError{StatusCode: http.StatusTooManyRequests})

		svc := NewService(m, Config{PageSize: 5})
		got, err := svc.List(context.Background())
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "all 5 detail fetches failed")
		var netErr *pokeapi.NetworkError
		assert.ErrorAs(t, err, &netErr)
	})

	t.Run("index failure fails the page", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchPage", mock.Anything, DefaultPageSize).Return(nil, errors.New("connection refused"))

		svc := NewService(m, Config{})
		got, err := svc.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
		m.AssertNotCalled(t, "FetchDetail", mock.Anything, mock.Anything)
	})

	t.Run("empty index", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchPage", mock.Anything, DefaultPageSize).Return(&pokeapi.IndexPage{Results: []pokeapi.IndexEntry{}}, nil)

		got, err := NewService(m, Config{}).List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("entry without types renders no badges", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchPage", mock.Anything, DefaultPageSize).Return(indexOf("ditto"), nil)
		m.On("FetchDetail", mock.Anything, mock.Anything).Return(detail("ditto"), nil)

		got, err := NewService(m, Config{}).List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].Types)
	})
}

func TestService_Get(t *testing.T) {
	t.Run("maps record", func(t *testing.T) {
		d := detail("bulbasaur", "grass", "poison")
		d.Stats = []pokeapi.StatSlot{
			{BaseStat: 45, Stat: &pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 49, Stat: &pokeapi.NamedResource{Name: "attack"}},
			{BaseStat: 1},
		}
		m := new(mockCatalog)
		m.On("FetchDetail", mock.Anything, "bulbasaur").Return(d, nil)

		rec, err := NewService(m, Config{}).Get(context.Background(), "bulbasaur")
		require.NoError(t, err)
		assert.Equal(t, "bulbasaur", rec.Name)
		assert.Equal(t, []string{"grass", "poison"}, rec.Types)
		assert.Equal(t, []Stat{{Name: "hp", BaseValue: 45}, {Name: "attack", BaseValue: 49}}, rec.Stats)
		assert.Len(t, rec.Sprites, 2)
	})

	t.Run("empty stats", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchDetail", mock.Anything, "ditto").Return(detail("ditto", "normal"), nil)

		rec, err := NewService(m, Config{}).Get(context.Background(), "ditto")
		require.NoError(t, err)
		assert.NotNil(t, rec.Stats)
		assert.Empty(t, rec.Stats)
	})

	t.Run("idempotent", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchDetail", mock.Anything, "bulbasaur").Return(detail("bulbasaur", "grass"), nil)
		svc := NewService(m, Config{})

		first, err := svc.Get(context.Background(), "bulbasaur")
		require.NoError(t, err)
		second, err := svc.Get(context.Background(), "bulbasaur")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("not found", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchDetail", mock.Anything, "missingno").
			Return(nil, fmt.Errorf("fetch detail missingno: %w", pokeapi.ErrNotFound))

		_, err := NewService(m, Config{}).Get(context.Background(), "missingno")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("network failure", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("FetchDetail", mock.Anything, "bulbasaur").Return(nil, &pokeapi.NetworkError{StatusCode: 503})

		_, err := NewService(m, Config{}).Get(context.Background(), "bulbasaur")
		var netErr *pokeapi.NetworkError
		assert.ErrorAs(t, err, &netErr)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Suggest(t *testing.T) {
	m := new(mockCatalog)
	m.On("FetchPage", mock.Anything, DefaultPageSize).
		Return(indexOf("bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon", "charizard"), nil)
	svc := NewService(m, Config{})

	got, err := svc.Suggest(context.Background(), "bulbasuar")
	require.NoError(t, err)
	assert.Equal(t, []string{"bulbasaur"}, got)

	got, err = svc.Suggest(context.Background(), "charm")
	require.NoError(t, err)
	assert.Equal(t, []string{"charmander", "charmeleon"}, got)

	got, err = svc.Suggest(context.Background(), "pikachu")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.Suggest(context.Background(), "  ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"flag-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockCatalogSource ---
type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) Load(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func testCountries() []domain.Country {
	return []domain.Country{
		{Name: "Canada", Code: "ca", Region: "Americas", Subregion: "Northern America"},
		{Name: "Mexico", Code: "mx", Region: "Americas", Subregion: "Northern America"},
		{Name: "Brazil", Code: "br", Region: "Americas", Subregion: "South America"},
		{Name: "France", Code: "fr", Region: "Europe", Subregion: "Western Europe"},
		{Name: "Germany", Code: "de", Region: "Europe", Subregion: "Western Europe"},
		{Name: "Japan", Code: "jp", Region: "Asia", Subregion: "Eastern Asia"},
	}
}

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog(testCountries())
	require.NoError(t, err)
	return catalog
}

func testRand() domain.Randomizer {
	return rand.New(rand.NewSource(1))
}

// sequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + string(rune('0'+n))
	}
}

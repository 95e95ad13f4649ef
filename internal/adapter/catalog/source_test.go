package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"flag-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
  {"name": "Canada", "code": "ca", "region": "Americas", "subregion": "Northern America"},
  {"name": "Mexico", "code": "mx", "region": "Americas", "subregion": "Central America"}
]`

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "countries.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	countries, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, domain.Country{Name: "Canada", Code: "ca", Region: "Americas", Subregion: "Northern America"}, countries[0])
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileSource(filepath.Join(dir, "missing.json")).Load(context.Background())
	assert.True(t, domain.IsCode(err, domain.CodeCatalogLoad))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name": "Canada"}`), 0o644))
	_, err = NewFileSource(bad).Load(context.Background())
	assert.True(t, domain.IsCode(err, domain.CodeCatalogLoad))

	null := filepath.Join(dir, "null.json")
	require.NoError(t, os.WriteFile(null, []byte(`null`), 0o644))
	_, err = NewFileSource(null).Load(context.Background())
	assert.True(t, domain.IsCode(err, domain.CodeCatalogLoad))
}

func TestHTTPSource_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	countries, err := NewHTTPSource(srv.URL, time.Second).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, countries, 2)
}

func TestHTTPSource_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeCatalogLoad))
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, time.Second).Load(context.Background())
	assert.True(t, domain.IsCode(err, domain.CodeCatalogLoad))
}

func TestHTTPSource_SharesConcurrentFetches(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		<-release
		_, _ = w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second)
	var wg sync.WaitGroup
	results := make([][]domain.Country, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			countries, err := src.Load(context.Background())
			assert.NoError(t, err)
			results[i] = countries
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	for _, r := range results {
		assert.Len(t, r, 2)
	}
}

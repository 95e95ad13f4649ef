package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"flag-quiz/internal/domain"
	"flag-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// HTTPSource fetches the catalog from a URL. Concurrent loads share one
// request. Any non-2xx status is a load failure.
type HTTPSource struct {
	url    string
	client *http.Client
	group  singleflight.Group
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Load(ctx context.Context) ([]domain.Country, error) {
	v, err, shared := s.group.Do(s.url, func() (interface{}, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("catalog fetch shared", zap.String("url", s.url))
	}
	countries := v.([]domain.Country)
	out := make([]domain.Country, len(countries))
	copy(out, countries)
	return out, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]domain.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, domain.NewCatalogLoadError("invalid catalog url", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.NewCatalogLoadError("failed to fetch catalog", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewCatalogLoadError(fmt.Sprintf("failed to fetch catalog: status %d", resp.StatusCode), nil)
	}
	return decodeCountries(resp.Body, s.url)
}

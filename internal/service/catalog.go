package service

import (
	"context"
	"time"

	"flag-quiz/internal/domain"
	"flag-quiz/internal/dto"
	"flag-quiz/internal/logger"

	"go.uber.org/zap"
)

// CatalogService answers read-only questions about the loaded catalog.
type CatalogService interface {
	Catalog() *domain.Catalog
	Regions() *dto.RegionsResponse
	Subregions(region string) *dto.SubregionsResponse
	Pool(region, subregion string) *dto.PoolResponse
}

type catalogService struct {
	catalog *domain.Catalog
}

func NewCatalogService(catalog *domain.Catalog) CatalogService {
	return &catalogService{catalog: catalog}
}

// LoadCatalog loads and validates the catalog once. Callers treat any error
// as fatal.
func LoadCatalog(ctx context.Context, source domain.CatalogSource) (*domain.Catalog, error) {
	start := time.Now()
	countries, err := source.Load(ctx)
	if err != nil {
		if _, ok := domain.AsDomainError(err); ok {
			return nil, err
		}
		return nil, domain.NewCatalogLoadError("failed to load catalog", err)
	}

	catalog, err := domain.NewCatalog(countries)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Catalog loaded",
		zap.Int("countries", catalog.Len()),
		zap.Int("regions", len(catalog.Regions())),
		zap.Duration("duration", time.Since(start)),
	)
	return catalog, nil
}

func (s *catalogService) Catalog() *domain.Catalog {
	return s.catalog
}

func (s *catalogService) Regions() *dto.RegionsResponse {
	return &dto.RegionsResponse{Regions: s.catalog.Regions()}
}

func (s *catalogService) Subregions(region string) *dto.SubregionsResponse {
	region = domain.NormalizeSelector(region)
	return &dto.SubregionsResponse{
		Region:     region,
		Subregions: s.catalog.Subregions(region),
	}
}

func (s *catalogService) Pool(region, subregion string) *dto.PoolResponse {
	region = domain.NormalizeSelector(region)
	subregion = domain.NormalizeSelector(subregion)
	pool := domain.FilterPool(s.catalog, region, subregion)
	return &dto.PoolResponse{
		Region:     region,
		Subregion:  subregion,
		Size:       len(pool),
		Playable:   domain.EnsurePlayable(pool, region, subregion) == nil,
		LevelLabel: domain.LevelLabel(region, subregion),
		Countries:  pool,
	}
}

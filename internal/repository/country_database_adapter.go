package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"flag-quiz/internal/domain"
	"flag-quiz/internal/repository/models"
	"flag-quiz/internal/util"
)

const (
	// go-ora reports upper-case column names, hence the quoted aliases
	selectCountriesQuery = `SELECT code AS "code", name AS "name", region AS "region", subregion AS "subregion", sort_order AS "sort_order"
              FROM countries ORDER BY sort_order, code`
	deleteCountriesQuery = `DELETE FROM countries`
	insertCountryQuery   = `INSERT INTO countries (code, name, region, subregion, sort_order)
              VALUES (:code, :name, :region, :subregion, :sort_order)`
)

// CountryDatabaseAdapter stores the catalog in the countries table. It is
// also the database catalog source.
type CountryDatabaseAdapter struct {
	db DBTX
}

// NewCountryDatabaseAdapter creates a new instance of CountryDatabaseAdapter
func NewCountryDatabaseAdapter(db DBTX) *CountryDatabaseAdapter {
	return &CountryDatabaseAdapter{db: db}
}

var _ domain.CountryRepository = (*CountryDatabaseAdapter)(nil)

// List returns all stored countries in sort order.
func (r *CountryDatabaseAdapter) List(ctx context.Context) ([]domain.Country, error) {
	var rows []models.Country
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, selectCountriesQuery)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Country{}, nil
		}
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	countries := make([]domain.Country, len(rows))
	for i := range rows {
		countries[i] = convertToDomainCountry(&rows[i])
	}
	return countries, nil
}

// Load implements domain.CatalogSource.
func (r *CountryDatabaseAdapter) Load(ctx context.Context) ([]domain.Country, error) {
	countries, err := r.List(ctx)
	if err != nil {
		return nil, domain.NewCatalogLoadError("failed to load catalog from database", err)
	}
	return countries, nil
}

// ReplaceAll deletes every stored country and inserts countries in order.
// Run it inside a transaction to make the swap atomic.
func (r *CountryDatabaseAdapter) ReplaceAll(ctx context.Context, countries []domain.Country) error {
	exec := GetExecutor(ctx, r.db)
	if _, err := exec.ExecContext(ctx, deleteCountriesQuery); err != nil {
		return fmt.Errorf("failed to clear countries: %w", err)
	}
	for i, c := range countries {
		if _, err := exec.NamedExecContext(ctx, insertCountryQuery, convertToModelCountry(c, i)); err != nil {
			return fmt.Errorf("failed to insert country %s: %w", c.Code, err)
		}
	}
	return nil
}

func convertToDomainCountry(m *models.Country) domain.Country {
	return domain.Country{
		Code:      m.Code,
		Name:      m.Name,
		Region:    m.Region,
		Subregion: util.NullStringToString(m.Subregion),
	}
}

func convertToModelCountry(c domain.Country, sortOrder int) *models.Country {
	return &models.Country{
		Code:      c.Code,
		Name:      c.Name,
		Region:    c.Region,
		Subregion: util.StringToNullString(c.Subregion),
		SortOrder: sortOrder,
	}
}

package domain

import "context"

// CountryRepository persists the catalog for the database catalog source.
type CountryRepository interface {
	CatalogSource
	// List returns every stored country in catalog order.
	List(ctx context.Context) ([]Country, error)
	// ReplaceAll swaps the stored catalog for countries, keeping their order.
	ReplaceAll(ctx context.Context, countries []Country) error
}

// TransactionManager runs fn inside a database transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

package domain

import "strings"

// AllSelector matches every region or subregion.
const AllSelector = "all"

// MinPoolSize is the smallest pool that can produce a distractor.
const MinPoolSize = 2

// NormalizeSelector maps a blank selector to AllSelector.
func NormalizeSelector(value string) string {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, AllSelector) {
		return AllSelector
	}
	return v
}

func matchesSelector(selector, value string) bool {
	selector = NormalizeSelector(selector)
	return selector == AllSelector || selector == value
}

// FilterPool returns the catalog countries matching both selectors, in catalog order.
func FilterPool(catalog *Catalog, region, subregion string) []Country {
	pool := make([]Country, 0)
	for _, c := range catalog.countries {
		if matchesSelector(region, c.Region) && matchesSelector(subregion, c.Subregion) {
			pool = append(pool, c)
		}
	}
	return pool
}

// EnsurePlayable rejects pools too small for option generation.
func EnsurePlayable(pool []Country, region, subregion string) error {
	if len(pool) < MinPoolSize {
		return NewInsufficientPoolError(NormalizeSelector(region), NormalizeSelector(subregion), len(pool))
	}
	return nil
}

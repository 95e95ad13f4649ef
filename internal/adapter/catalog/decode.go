package catalog

import (
	"encoding/json"
	"io"

	"flag-quiz/internal/domain"
)

// decodeCountries reads a JSON array of {name, code, region, subregion}.
func decodeCountries(r io.Reader, origin string) ([]domain.Country, error) {
	var countries []domain.Country
	dec := json.NewDecoder(r)
	if err := dec.Decode(&countries); err != nil {
		return nil, domain.NewCatalogLoadError("malformed catalog in "+origin, err)
	}
	if countries == nil {
		return nil, domain.NewCatalogLoadError("catalog in "+origin+" is not a JSON array", nil)
	}
	return countries, nil
}

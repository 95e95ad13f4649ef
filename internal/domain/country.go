package domain

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var countryCodePattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]{2,3})?$`)

// Country is one catalog entry. Code is the lowercase ISO-3166 alpha-2
// code used to address the flag image.
type Country struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Region    string `json:"region"`
	Subregion string `json:"subregion"`
}

// Catalog is the immutable list of countries loaded once at startup.
type Catalog struct {
	countries []Country
	byCode    map[string]int
}

// CatalogSource loads the raw country list. Adapters exist for a JSON
// file, an HTTP URL and the countries table.
type CatalogSource interface {
	Load(ctx context.Context) ([]Country, error)
}

// NewCatalog canonicalizes and validates countries. Codes are trimmed and
// lowercased; codes and normalized names must be unique. Any violation is
// reported as a catalog load error.
func NewCatalog(countries []Country) (*Catalog, error) {
	if len(countries) == 0 {
		return nil, NewCatalogLoadError("catalog is empty", nil)
	}

	c := &Catalog{
		countries: make([]Country, 0, len(countries)),
		byCode:    make(map[string]int, len(countries)),
	}
	names := make(map[string]string, len(countries))

	for i, raw := range countries {
		country := Country{
			Name:      strings.TrimSpace(raw.Name),
			Code:      strings.ToLower(strings.TrimSpace(raw.Code)),
			Region:    strings.TrimSpace(raw.Region),
			Subregion: strings.TrimSpace(raw.Subregion),
		}
		if country.Name == "" || country.Region == "" {
			return nil, NewCatalogLoadError(fmt.Sprintf("entry %d: name and region are required", i), nil)
		}
		if !countryCodePattern.MatchString(country.Code) {
			return nil, NewCatalogLoadError(fmt.Sprintf("entry %d (%s): invalid code %q", i, country.Name, raw.Code), nil)
		}
		if _, dup := c.byCode[country.Code]; dup {
			return nil, NewCatalogLoadError(fmt.Sprintf("duplicate country code %q", country.Code), nil)
		}
		key := Normalize(country.Name)
		if prev, dup := names[key]; dup {
			return nil, NewCatalogLoadError(fmt.Sprintf("duplicate country name %q (codes %s and %s)", country.Name, prev, country.Code), nil)
		}
		names[key] = country.Code
		c.byCode[country.Code] = len(c.countries)
		c.countries = append(c.countries, country)
	}
	return c, nil
}

// Countries returns a copy of the catalog in load order.
func (c *Catalog) Countries() []Country {
	out := make([]Country, len(c.countries))
	copy(out, c.countries)
	return out
}

// Len returns the number of countries in the catalog.
func (c *Catalog) Len() int {
	return len(c.countries)
}

// ByCode looks up a country by its flag code.
func (c *Catalog) ByCode(code string) (Country, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Country{}, false
	}
	return c.countries[i], true
}

// Regions returns the sorted, de-duplicated region names.
func (c *Catalog) Regions() []string {
	seen := make(map[string]struct{})
	regions := []string{}
	for _, country := range c.countries {
		if _, ok := seen[country.Region]; ok {
			continue
		}
		seen[country.Region] = struct{}{}
		regions = append(regions, country.Region)
	}
	sort.Strings(regions)
	return regions
}

// Subregions returns the sorted, de-duplicated subregions of region.
// The "all" selector returns every subregion in the catalog.
func (c *Catalog) Subregions(region string) []string {
	seen := make(map[string]struct{})
	subs := []string{}
	for _, country := range c.countries {
		if !matchesSelector(region, country.Region) {
			continue
		}
		if _, ok := seen[country.Subregion]; ok {
			continue
		}
		seen[country.Subregion] = struct{}{}
		subs = append(subs, country.Subregion)
	}
	sort.Strings(subs)
	return subs
}

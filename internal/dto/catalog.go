package dto

import "flag-quiz/internal/domain"

// RegionsResponse lists the selectable regions.
// @Description Regions present in the catalog
type RegionsResponse struct {
	Regions []string `json:"regions"`
}

// SubregionsResponse lists the subregions of one region ("all" for every region).
type SubregionsResponse struct {
	Region     string   `json:"region"`
	Subregions []string `json:"subregions"`
}

// PoolResponse describes the countries matching a filter.
// @Description Countries matching a region/subregion filter
type PoolResponse struct {
	Region     string           `json:"region"`
	Subregion  string           `json:"subregion"`
	Size       int              `json:"size"`
	Playable   bool             `json:"playable"`
	LevelLabel string           `json:"level_label"`
	Countries  []domain.Country `json:"countries"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Cache     string `json:"cache"`
	Countries int    `json:"countries"`
}

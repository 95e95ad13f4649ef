package handler

import (
	"flag-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler exposes the country catalog and pool filters.
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetRegions godoc
// @Summary List regions
// @Description Returns every region present in the catalog, sorted
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.RegionsResponse
// @Router /catalog/regions [get]
func (h *CatalogHandler) GetRegions(c *fiber.Ctx) error {
	return c.JSON(h.service.Regions())
}

// GetSubregions godoc
// @Summary List subregions
// @Description Returns the subregions of a region, or of every region when region is empty or "all"
// @Tags catalog
// @Produce json
// @Param region query string false "Region"
// @Success 200 {object} dto.SubregionsResponse
// @Router /catalog/subregions [get]
func (h *CatalogHandler) GetSubregions(c *fiber.Ctx) error {
	return c.JSON(h.service.Subregions(c.Query("region")))
}

// GetPool godoc
// @Summary Preview a pool
// @Description Returns the countries matching a region/subregion filter and whether a quiz can start on it
// @Tags catalog
// @Produce json
// @Param region query string false "Region"
// @Param subregion query string false "Subregion"
// @Success 200 {object} dto.PoolResponse
// @Router /catalog/pool [get]
func (h *CatalogHandler) GetPool(c *fiber.Ctx) error {
	return c.JSON(h.service.Pool(c.Query("region"), c.Query("subregion")))
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/precify/pricing-api/internal/core/domain"
	"github.com/precify/pricing-api/internal/core/ports"
)

type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type createProductRequest struct {
	Name              string  `json:"name" validate:"required"`
	Code              string  `json:"code"`
	Unit              string  `json:"unit"`
	CostRaw           float64 `json:"cost_raw"`
	CostPackaging     float64 `json:"cost_packaging"`
	CostLabor         float64 `json:"cost_labor"`
	CostLogisticsBase float64 `json:"cost_logistics_base"`
	CostTaxBase       float64 `json:"cost_tax_base"`
	CostOther         float64 `json:"cost_other"`
}

type createLocationRequest struct {
	Name               string  `json:"name" validate:"required"`
	State              string  `json:"state"`
	City               string  `json:"city"`
	Freight            float64 `json:"freight"`
	ExtraTaxPercent    float64 `json:"extra_tax_percent"`
	OtherAdjustPercent float64 `json:"other_adjust_percent"`
}

// ListProducts returns the product catalog ordered by name.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  map[string]string
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct adds a product to the catalog.
//
// @Summary      Create product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "New product"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /products [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.catalogService.CreateProduct(c.Request().Context(), domain.Product{
		Name:              req.Name,
		Code:              req.Code,
		Unit:              req.Unit,
		CostRaw:           req.CostRaw,
		CostPackaging:     req.CostPackaging,
		CostLabor:         req.CostLabor,
		CostLogisticsBase: req.CostLogisticsBase,
		CostTaxBase:       req.CostTaxBase,
		CostOther:         req.CostOther,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing required fields"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// ListLocations returns the delivery locations ordered by name.
//
// @Summary      List locations
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Location
// @Failure      500  {object}  map[string]string
// @Router       /locations [get]
func (h *CatalogHandler) ListLocations(c echo.Context) error {
	locations, err := h.catalogService.ListLocations(c.Request().Context())
	if err != nil {
		return err
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	return c.JSON(http.StatusOK, locations)
}

// CreateLocation adds a delivery location.
//
// @Summary      Create location
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createLocationRequest  true  "New location"
// @Success      201   {object}  domain.Location
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /locations [post]
func (h *CatalogHandler) CreateLocation(c echo.Context) error {
	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	location, err := h.catalogService.CreateLocation(c.Request().Context(), domain.Location{
		Name:               req.Name,
		State:              req.State,
		City:               req.City,
		Freight:            req.Freight,
		ExtraTaxPercent:    req.ExtraTaxPercent,
		OtherAdjustPercent: req.OtherAdjustPercent,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing required fields"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, location)
}

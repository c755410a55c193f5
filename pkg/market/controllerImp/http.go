package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"krishi/entities"
	"krishi/pkg/market/fetcher"
	svc "krishi/pkg/market/service"
)

type MarketCtrl struct{ s svc.MarketService }

func New(s svc.MarketService) *MarketCtrl { return &MarketCtrl{s} }

// ScrapeAll handles GET /scrape-all?query=Paddy (comma-separated keywords).
func (h *MarketCtrl) ScrapeAll(c echo.Context) error {
	res, err := h.s.ScrapeAll(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"count":   len(res.Records),
		"source":  res.Source,
		"data":    res.Records,
	})
}

// Search handles GET /prices/search with structured filters.
func (h *MarketCtrl) Search(c echo.Context) error {
	criteria := entities.FilterCriteria{
		Commodity: c.QueryParam("commodity"),
		State:     c.QueryParam("state"),
		District:  c.QueryParam("district"),
		Variety:   c.QueryParam("variety"),
		SortBy:    entities.SortOrder(c.QueryParam("sort")),
	}
	if criteria.SortBy == "" {
		criteria.SortBy = entities.SortPriceDesc
	}
	res, err := h.s.Search(c.Request().Context(), criteria)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"count":   len(res.Records),
		"source":  res.Source,
		"data":    res.Records,
	})
}

// upstreamError keeps the three failure modes distinguishable for the
// client: timed out, bad upstream status, unreachable.
func upstreamError(c echo.Context, err error) error {
	var se *fetcher.StatusError
	switch {
	case errors.Is(err, fetcher.ErrTimeout):
		return c.JSON(http.StatusGatewayTimeout, map[string]string{"error": "price source timed out, try again"})
	case errors.As(err, &se):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": se.Error()})
	default:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "price source unreachable: " + err.Error()})
	}
}

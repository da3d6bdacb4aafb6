package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/movie-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/movie-hunter/internal/dto"
	"github.com/DjordjeVuckovic/movie-hunter/internal/metrics"
	"github.com/DjordjeVuckovic/movie-hunter/internal/search"
	"github.com/labstack/echo/v4"
)

type SearchRouter struct {
	e        *echo.Echo
	searcher *search.Searcher
	catalog  search.CatalogProvider
}

func NewSearchRouter(e *echo.Echo, searcher *search.Searcher, catalog search.CatalogProvider) *SearchRouter {
	return &SearchRouter{
		e:        e,
		searcher: searcher,
		catalog:  catalog,
	}
}

func (r *SearchRouter) Bind() {
	api := r.e.Group("/api")
	api.POST("/search", r.searchHandler)
	api.GET("/facets", r.facetsHandler)
}

// searchHandler godoc
// @Summary Search movies
// @Description Free text search with genre and language facet filters. Results are ranked by relevance, then rating, then release date.
// @Tags search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search intent"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/search [post]
func (r *SearchRouter) searchHandler(c echo.Context) error {
	req, err := dto.DecodeSearchRequest(c.Request().Body)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return err
	}

	res, err := r.searcher.Search(c.Request().Context(), req.Intent())
	if err != nil {
		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			metrics.SearchesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		} else {
			metrics.SearchesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		}
		return err
	}

	metrics.SearchesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	if res.Total.Overflow {
		metrics.SearchOverflowTotal.Inc()
	}

	return c.JSON(http.StatusOK, dto.NewSearchResponse(res))
}

// facetsHandler godoc
// @Summary List selectable facet values
// @Description Distinct genres and languages present in the index, most frequent first.
// @Tags search
// @Produce json
// @Success 200 {object} dto.FacetsResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/facets [get]
func (r *SearchRouter) facetsHandler(c echo.Context) error {
	catalog, err := r.catalog.Load(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewFacetsResponse(catalog))
}

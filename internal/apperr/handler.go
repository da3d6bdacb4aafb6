package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "invalid intent"})
			return
		}

		var ce *CatalogLoadError
		if errors.As(err, &ce) {
			slog.Error("Facet catalog load failed", "facet", ce.Facet, "error", ce.Err)
			_ = c.JSON(http.StatusBadGateway, map[string]string{"error": "facet catalog unavailable", "title": "catalog load failure"})
			return
		}

		var ee *ExecutionError
		if errors.As(err, &ee) {
			slog.Error("Search execution failed", "op", ee.Op, "error", ee.Err)
			_ = c.JSON(http.StatusBadGateway, map[string]string{"error": "search engine unavailable", "title": "execution failure"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// File: internal/handler/delete_cafe.go
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"coffee-wifi/internal/cache"
	"coffee-wifi/internal/database"
	"coffee-wifi/internal/repository"
	"coffee-wifi/internal/worker"

	"github.com/labstack/echo/v4"
)

// DeleteCafeHandler 刪除咖啡廳並清除列表快取；id 不存在回 404
func DeleteCafeHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "cafe not found")
		}

		if err := repository.DeleteCafe(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "cafe not found")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete cafe")
		}

		invalidateCafes(cch, wp)
		return redirectHome(c)
	}
}

// File: internal/handler/show_cafe.go
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"coffee-wifi/internal/database"
	"coffee-wifi/internal/repository"
	"coffee-wifi/internal/view"

	"github.com/labstack/echo/v4"
)

// ShowCafeHandler 咖啡廳詳細頁；id 不存在或非數字回 404
func ShowCafeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "cafe not found")
		}

		cafe, err := repository.GetCafeByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "cafe not found")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load cafe")
		}

		return render(c, http.StatusOK, "cafe.html", view.Page{Title: cafe.Name, Cafe: cafe})
	}
}

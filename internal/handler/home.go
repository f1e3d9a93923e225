// File: internal/handler/home.go
package handler

import (
	"encoding/json"
	"net/http"

	"coffee-wifi/internal/cache"
	"coffee-wifi/internal/database"
	"coffee-wifi/internal/model"
	"coffee-wifi/internal/repository"
	"coffee-wifi/internal/view"

	"github.com/labstack/echo/v4"
)

// HomeHandler 首頁：列出全部咖啡廳
// 列表先查 Redis 快取，未命中時回源資料庫並回填
func HomeHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if data, err := cch.Get(ctx, cache.CafesKey).Bytes(); err == nil {
			var cafes []model.Cafe
			if json.Unmarshal(data, &cafes) == nil {
				return render(c, http.StatusOK, "index.html", view.Page{Cafes: cafes})
			}
		}

		cafes, err := repository.ListCafes(ctx, db)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load cafes")
		}

		// 回填快取，失敗不影響本次回應
		if data, err := json.Marshal(cafes); err == nil {
			cch.Set(ctx, cache.CafesKey, data, cache.ListTTL)
		}

		return render(c, http.StatusOK, "index.html", view.Page{Cafes: cafes})
	}
}

// File: internal/handler/new_cafe.go
package handler

import (
	"errors"
	"net/http"

	"coffee-wifi/internal/cache"
	"coffee-wifi/internal/database"
	"coffee-wifi/internal/model"
	"coffee-wifi/internal/repository"
	"coffee-wifi/internal/view"
	"coffee-wifi/internal/worker"

	"github.com/labstack/echo/v4"
)

// NewCafeRequest 新增咖啡廳表單 (form data)
// amenity 勾選欄位不在此結構內，由 checkbox 另行解析
type NewCafeRequest struct {
	Name        string `form:"name" validate:"required"`
	MapURL      string `form:"map_url" validate:"required,url"`
	ImgURL      string `form:"img_url" validate:"required,url"`
	Location    string `form:"location" validate:"required"`
	Seats       string `form:"seats" validate:"required"`
	CoffeePrice string `form:"coffee_price"`
}

// NewCafePageHandler 顯示新增表單
func NewCafePageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return render(c, http.StatusOK, "new_cafe.html", view.Page{Title: "Add a Cafe"})
	}
}

// NewCafeHandler 新增咖啡廳並清除列表快取
// 名稱重複時（unique constraint 為準）重新渲染表單並提示
func NewCafeHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req NewCafeRequest
		if err := c.Bind(&req); err != nil {
			return render(c, http.StatusBadRequest, "new_cafe.html",
				view.Page{Title: "Add a Cafe", Error: "Invalid form data."})
		}
		if err := c.Validate(&req); err != nil {
			return render(c, http.StatusBadRequest, "new_cafe.html",
				view.Page{Title: "Add a Cafe", Error: "Please fill in all required fields (URLs must be valid)."})
		}

		cafe := &model.Cafe{
			Name:         req.Name,
			MapURL:       req.MapURL,
			ImgURL:       req.ImgURL,
			Location:     req.Location,
			Seats:        req.Seats,
			HasToilet:    checkbox(c, "has_toilet"),
			HasWifi:      checkbox(c, "has_wifi"),
			HasSockets:   checkbox(c, "has_sockets"),
			CanTakeCalls: checkbox(c, "can_take_calls"),
		}
		if req.CoffeePrice != "" {
			cafe.CoffeePrice = &req.CoffeePrice
		}

		if _, err := repository.CreateCafe(c.Request().Context(), db, cafe); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return render(c, http.StatusOK, "new_cafe.html",
					view.Page{Title: "Add a Cafe", Error: "A cafe with that name already exists."})
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create cafe")
		}

		invalidateCafes(cch, wp)
		return redirectHome(c)
	}
}

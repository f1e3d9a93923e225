// File: internal/handler/handler.go
package handler

import (
	"context"
	"net/http"
	"time"

	"coffee-wifi/internal/cache"
	"coffee-wifi/internal/middleware"
	"coffee-wifi/internal/session"
	"coffee-wifi/internal/view"
	"coffee-wifi/internal/worker"

	"github.com/labstack/echo/v4"
)

// sessionTTL 登入狀態存活時間
const sessionTTL = 24 * time.Hour

// render 統一填入目前身分與 flash 訊息後渲染頁面
func render(c echo.Context, code int, name string, p view.Page) error {
	p.CurrentUser = middleware.CurrentUser(c)
	p.Flashes = session.TakeFlashes(c)
	return c.Render(code, name, p)
}

// checkbox 解析 amenity 勾選欄位：值為 "on" 才視為 true，
// 欄位缺席或任何其他值一律為 false，不構成錯誤
func checkbox(c echo.Context, field string) bool {
	return c.FormValue(field) == "on"
}

// invalidateCafes 透過 worker pool 非同步清除列表快取
func invalidateCafes(cch cache.Cache, wp worker.Pool) {
	wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		cch.Del(ctx, cache.CafesKey)
	})
}

func redirectHome(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}

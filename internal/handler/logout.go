// File: internal/handler/logout.go
package handler

import (
	"coffee-wifi/internal/session"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 清除 session cookie 並導回首頁
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		session.ClearCookie(c)
		return redirectHome(c)
	}
}

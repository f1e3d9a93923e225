// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"

	"coffee-wifi/internal/database"
	"coffee-wifi/internal/model"
	"coffee-wifi/internal/repository"
	"coffee-wifi/internal/service"
	"coffee-wifi/internal/session"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// CurrentUser 取出目前登入的使用者，匿名時回傳 nil
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}

// LoadUser 解析 session cookie 並載入使用者放入 context
// cookie 缺失、token 無效或使用者不存在時一律視為匿名，不回傳錯誤
func LoadUser(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := session.ReadCookie(c)
			if token == "" {
				return next(c)
			}
			claims, err := service.VerifySessionToken(token)
			if err != nil {
				return next(c)
			}
			user, err := repository.GetUserByID(c.Request().Context(), db, claims.UserID)
			if err != nil {
				return next(c)
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireUser 僅允許已登入的使用者
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return echo.NewHTTPError(http.StatusForbidden, "login required")
		}
		return next(c)
	}
}

// RequireAdmin 僅允許管理員
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	}
}

// RequireAnonymous 僅允許未登入的訪客（避免重複登入/註冊）
func RequireAnonymous(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) != nil {
			return echo.NewHTTPError(http.StatusForbidden, "already logged in")
		}
		return next(c)
	}
}

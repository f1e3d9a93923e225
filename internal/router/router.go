// File: internal/router/router.go
package router

import (
	"coffee-wifi/internal/cache"
	"coffee-wifi/internal/database"
	"coffee-wifi/internal/handler"
	"coffee-wifi/internal/middleware"
	"coffee-wifi/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
// 每條路由至多掛一個授權 guard，身分載入於根層級執行
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp worker.Pool) {
	e.Use(middleware.LoadUser(db))

	// 公開頁面
	e.GET("/", handler.HomeHandler(db, cch))
	e.GET("/cafe/:id", handler.ShowCafeHandler(db))

	// 訪客限定（已登入者禁止重複登入/註冊）
	e.GET("/login", handler.LoginPageHandler(), middleware.RequireAnonymous)
	e.POST("/login", handler.LoginHandler(db), middleware.RequireAnonymous)
	e.GET("/register", handler.RegisterPageHandler(), middleware.RequireAnonymous)
	e.POST("/register", handler.RegisterHandler(db), middleware.RequireAnonymous)

	// 登入限定
	e.GET("/logout", handler.LogoutHandler(), middleware.RequireUser)
	e.GET("/new-post", handler.NewCafePageHandler(), middleware.RequireUser)
	e.POST("/new-post", handler.NewCafeHandler(db, cch, wp), middleware.RequireUser)

	// 管理員限定
	e.GET("/delete/:id", handler.DeleteCafeHandler(db, cch, wp), middleware.RequireAdmin)
}

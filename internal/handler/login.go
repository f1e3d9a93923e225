// File: internal/handler/login.go
package handler

import (
	"errors"
	"net/http"
	"strings"

	"coffee-wifi/internal/database"
	"coffee-wifi/internal/repository"
	"coffee-wifi/internal/service"
	"coffee-wifi/internal/session"
	"coffee-wifi/internal/view"

	"github.com/labstack/echo/v4"
)

// LoginRequest 登入表單 (form data)
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// LoginPageHandler 顯示登入表單
func LoginPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return render(c, http.StatusOK, "login.html", view.Page{Title: "Log In"})
	}
}

// LoginHandler 依 email 查使用者並驗證密碼
// email 不存在與密碼錯誤分別顯示訊息並重新渲染表單
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return render(c, http.StatusBadRequest, "login.html",
				view.Page{Title: "Log In", Error: "Invalid form data."})
		}
		if err := c.Validate(&req); err != nil {
			return render(c, http.StatusBadRequest, "login.html",
				view.Page{Title: "Log In", Error: "Please enter a valid email and password."})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		user, err := repository.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return render(c, http.StatusOK, "login.html",
					view.Page{Title: "Log In", Error: "That email does not exist, please try again."})
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to look up user")
		}

		if _, err := service.AuthenticateUser(*user, req.Password); err != nil {
			return render(c, http.StatusOK, "login.html",
				view.Page{Title: "Log In", Error: "Password incorrect, please try again."})
		}

		token, err := service.IssueSessionToken(*user, sessionTTL)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to start session")
		}
		session.WriteCookie(c, token, sessionTTL)

		return redirectHome(c)
	}
}

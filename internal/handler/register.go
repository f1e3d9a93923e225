// File: internal/handler/register.go
package handler

import (
	"errors"
	"net/http"
	"strings"

	"coffee-wifi/internal/database"
	"coffee-wifi/internal/model"
	"coffee-wifi/internal/repository"
	"coffee-wifi/internal/service"
	"coffee-wifi/internal/session"
	"coffee-wifi/internal/view"

	"github.com/labstack/echo/v4"
)

// RegisterRequest 註冊表單 (form data)
type RegisterRequest struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterPageHandler 顯示註冊表單
func RegisterPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return render(c, http.StatusOK, "register.html", view.Page{Title: "Register"})
	}
}

// RegisterHandler 建立新帳號並自動登入
// email 已被使用時（以 unique constraint 為準）flash 提示並導向登入頁
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterRequest
		if err := c.Bind(&req); err != nil {
			return render(c, http.StatusBadRequest, "register.html",
				view.Page{Title: "Register", Error: "Invalid form data."})
		}
		if err := c.Validate(&req); err != nil {
			return render(c, http.StatusBadRequest, "register.html",
				view.Page{Title: "Register", Error: "Please fill in name, a valid email and a password."})
		}

		req.Email = strings.ToLower(req.Email)

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to hash password")
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		}
		created, err := repository.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				session.AddFlash(c, "You've already signed up with that email, log in instead!")
				return c.Redirect(http.StatusFound, "/login")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create user")
		}

		// 註冊成功即自動登入
		token, err := service.IssueSessionToken(*created, sessionTTL)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to start session")
		}
		session.WriteCookie(c, token, sessionTTL)

		return redirectHome(c)
	}
}

// File: internal/session/session.go
package session

import (
	"net/http"
	"time"

	esession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// CookieName 存放 session token 的 cookie 名稱
const CookieName = "cw_session"

// flashName 存放 flash 訊息的 gorilla session 名稱
const flashName = "cw_flash"

// WriteCookie 將 session token 寫入 HttpOnly cookie
func WriteCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie 使 session cookie 立即失效
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadCookie 取出 session token；cookie 不存在時回傳空字串
func ReadCookie(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// AddFlash 加入一則 flash 訊息，於下一次頁面渲染時顯示
// session middleware 未註冊時靜默略過（測試情境）
func AddFlash(c echo.Context, msg string) {
	sess, err := esession.Get(flashName, c)
	if err != nil {
		return
	}
	sess.AddFlash(msg)
	_ = sess.Save(c.Request(), c.Response())
}

// TakeFlashes 取出並清空目前累積的 flash 訊息
func TakeFlashes(c echo.Context) []string {
	sess, err := esession.Get(flashName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() 已自 session 移除訊息，需 Save 落地
	_ = sess.Save(c.Request(), c.Response())
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}

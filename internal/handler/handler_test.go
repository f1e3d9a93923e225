// File: internal/handler/handler_test.go
package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"coffee-wifi/internal/model"
	"coffee-wifi/internal/view"
	"coffee-wifi/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

/* ---------- 測試共用設施 ---------- */

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

// newEcho 建立掛好 renderer 與 validator 的 echo 實例
func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	r, err := view.NewRenderer()
	require.NoError(t, err)
	e.Renderer = r
	e.Validator = &testValidator{v: validator.New()}
	return e
}

func getContext(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func formContext(e *echo.Echo, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// sessionCookie 回傳回應中的 session cookie，不存在時為 nil
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "cw_session" {
			return ck
		}
	}
	return nil
}

// syncPool 以同步方式執行工作，讓測試可直接驗證副作用
type syncPool struct{}

func (syncPool) Submit(task worker.Task) { task() }
func (syncPool) Stop()                   {}

/* ---------- 假資料列 ---------- */

type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 6:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*bool) = u.IsAdmin
		*dest[5].(*time.Time) = u.CreatedAt
	case 3:
		*dest[0].(*int) = u.ID
		*dest[1].(*bool) = u.IsAdmin
		*dest[2].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

type fakeCafeRow struct {
	scanErr error
	cafe    *model.Cafe
}

func (r *fakeCafeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	cafe := r.cafe
	switch len(dest) {
	case 12:
		*dest[0].(*int) = cafe.ID
		*dest[1].(*string) = cafe.Name
		*dest[2].(*string) = cafe.MapURL
		*dest[3].(*string) = cafe.ImgURL
		*dest[4].(*string) = cafe.Location
		*dest[5].(*string) = cafe.Seats
		*dest[6].(*bool) = cafe.HasToilet
		*dest[7].(*bool) = cafe.HasWifi
		*dest[8].(*bool) = cafe.HasSockets
		*dest[9].(*bool) = cafe.CanTakeCalls
		*dest[10].(**string) = cafe.CoffeePrice
		*dest[11].(*time.Time) = cafe.CreatedAt
	case 2:
		*dest[0].(*int) = cafe.ID
		*dest[1].(*time.Time) = cafe.CreatedAt
	default:
		panic("fakeCafeRow.Scan: unexpected dest count")
	}
	return nil
}

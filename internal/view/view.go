// File: internal/view/view.go
package view

import (
	"embed"
	"html/template"
	"io"

	"coffee-wifi/internal/model"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page 模板渲染資料；CurrentUser 與 Flashes 由 handler 的 render 統一填入
type Page struct {
	Title       string
	CurrentUser *model.User
	Flashes     []string
	Error       string
	Cafes       []model.Cafe
	Cafe        *model.Cafe
}

// Renderer 實作 echo.Renderer，模板以檔名為模板名稱
type Renderer struct {
	templates *template.Template
}

// NewRenderer 解析嵌入的模板檔
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

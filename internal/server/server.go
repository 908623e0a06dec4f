package server

import (
	"html/template"
	"io"
	"path/filepath"

	"app/internal/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// echoにhtml/templateを差すためのRenderer。
type templateRenderer struct {
	templates *template.Template
}

func (t *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

// ルート登録できるハンドラ。
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// echo本体を組み立てる。起動は呼び出し側。
func New(cfg config.Config, handlers ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
				zap.L().Warn("request", fields...)
				return nil
			}
			zap.L().Info("request", fields...)
			return nil
		},
	}))

	e.Renderer = &templateRenderer{
		templates: template.Must(template.ParseGlob(filepath.Join(cfg.StaticDir, "*.html"))),
	}
	e.Static("/static", cfg.StaticDir)

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}

	return e
}

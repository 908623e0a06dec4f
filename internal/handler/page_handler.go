package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// メインページの描画。商品と店舗の一覧を埋め込んで返す。
type PageHandler struct {
	registry *usecase.RegistryUsecase
}

// DI
func NewPageHandler(registry *usecase.RegistryUsecase) *PageHandler {
	return &PageHandler{registry: registry}
}

func (h *PageHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
}

func (h *PageHandler) index(c echo.Context) error {
	products, err := h.registry.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	stores, err := h.registry.ListStores(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Render(http.StatusOK, "index.html", map[string]any{
		"Products": products,
		"Stores":   stores,
	})
}

package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品・店舗の登録/削除/一覧API。
type RegistryHandler struct {
	uc *usecase.RegistryUsecase
}

// DI
func NewRegistryHandler(uc *usecase.RegistryUsecase) *RegistryHandler {
	return &RegistryHandler{uc: uc}
}

func (h *RegistryHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/products", h.addProduct)
	e.POST("/stores", h.addStore)
	e.DELETE("/products/:product_id", h.deleteProduct)
	e.DELETE("/stores/:store_id", h.deleteStore)
	e.GET("/api/products", h.listProducts)
	e.GET("/api/stores", h.listStores)
}

type AddProductRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UserName    string `json:"user_name"`
}

type AddStoreRequest struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
	UserName  string `json:"user_name"`
}

func (h *RegistryHandler) addProduct(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.uc.AddProduct(c.Request().Context(), req.ProductID, req.ProductName, req.UserName); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "product added"})
}

func (h *RegistryHandler) addStore(c echo.Context) error {
	var req AddStoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.uc.AddStore(c.Request().Context(), req.StoreID, req.StoreName, req.UserName); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "store added"})
}

func (h *RegistryHandler) deleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("product_id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "product deleted"})
}

func (h *RegistryHandler) deleteStore(c echo.Context) error {
	if err := h.uc.DeleteStore(c.Request().Context(), c.Param("store_id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "store deleted"})
}

func (h *RegistryHandler) listProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *RegistryHandler) listStores(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stores)
}

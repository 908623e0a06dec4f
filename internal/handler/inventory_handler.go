package handler

import (
	"fmt"
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /inventory 配下のAPI。
type InventoryHandler struct {
	uc *usecase.InventoryUsecase
}

// DI
func NewInventoryHandler(uc *usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func (h *InventoryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/inventory/initialize/:store_id", h.initialize)
	e.GET("/inventory/:product_id/:store_id", h.check)
	e.POST("/inventory/fill", h.fill)
}

func (h *InventoryHandler) check(c echo.Context) error {
	productID := c.Param("product_id")
	storeID := c.Param("store_id")
	userName := c.QueryParam("user_name")

	snap, err := h.uc.Check(c.Request().Context(), productID, storeID, userName)
	if err != nil {
		if ge, ok := usecase.AsGatewayError(err); ok {
			//失敗理由によらず照会は404で返す（旧UIの契約）
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: ge.Message})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, snap)
}

type FillInventoryRequest struct {
	ProductID string `json:"product_id"`
	StoreID   string `json:"store_id"`
	Quantity  *int   `json:"quantity"`
	UserName  string `json:"user_name"`
}

type FillInventoryResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *InventoryHandler) fill(c echo.Context) error {
	var req FillInventoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.ProductID == "" || req.StoreID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "product_id and store_id required"})
	}

	body, err := h.uc.Fill(c.Request().Context(), req.ProductID, req.StoreID, req.Quantity, req.UserName)
	if err != nil {
		if ge, ok := usecase.AsGatewayError(err); ok {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ge.Message})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, FillInventoryResponse{
		Message: "inventory filled",
		Data:    body,
	})
}

func (h *InventoryHandler) initialize(c echo.Context) error {
	storeID := c.Param("store_id")

	body, err := h.uc.InitializeStore(c.Request().Context(), storeID)
	if err != nil {
		if ge, ok := usecase.AsGatewayError(err); ok {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ge.Message})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, FillInventoryResponse{
		Message: fmt.Sprintf("all inventory for store '%s' has been initialized", storeID),
		Data:    body,
	})
}

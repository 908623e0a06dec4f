package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuditLogHandler struct {
	uc *usecase.AuditLogUsecase
}

// DI
func NewAuditLogHandler(uc *usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{uc: uc}
}

func (h *AuditLogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/logs", h.list)
}

func (h *AuditLogHandler) list(c echo.Context) error {
	//hoursは旧UI互換のため受け取るが、絞り込みには使わない
	if v := c.QueryParam("hours"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid hours"})
		}
	}

	entries, err := h.uc.List(c.Request().Context(), 0)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

package usecase

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"net/http"
)

// 画面に返すログの既定件数。保存上限(1000)とは別のページサイズ。
const defaultLogPageSize = 100

type AuditLogUsecase struct {
	logs repo.AuditLogRepository
}

// DI
func NewAuditLogUsecase(logs repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{logs: logs}
}

func (u *AuditLogUsecase) List(ctx context.Context, limit int) ([]model.AuditLog, error) {
	if limit <= 0 || limit > defaultLogPageSize {
		limit = defaultLogPageSize
	}
	entries, err := u.logs.List(ctx, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return entries, nil
}

package repository

import (
	"app/internal/domain/model"
	"context"
)

// 監査ログの保存・一覧取得の約束。
type AuditLogRepository interface {
	//先頭（最新）に1件追加する。保持上限を超えた分は古い方から捨てる。
	Append(ctx context.Context, entry model.AuditLog) error

	//新しい順に最大limit件返す。バックファイルが無ければ空。
	List(ctx context.Context, limit int) ([]model.AuditLog, error)
}

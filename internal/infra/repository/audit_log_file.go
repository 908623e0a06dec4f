package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"path/filepath"
)

// 永続化する監査ログの上限。超えた分は古い方から捨てる。
const maxStoredLogs = 1000

// ファイル実装の監査ログ。logs.json に新しい順で持つ。
type AuditLogFile struct {
	file documentFile[model.AuditLog]
}

func NewAuditLogFile(dir string) repo.AuditLogRepository {
	return &AuditLogFile{
		file: documentFile[model.AuditLog]{path: filepath.Join(dir, "logs.json")},
	}
}

// ログのシードは空の列。ファイルが無ければ [] で作られる。
var emptyLogs = []model.AuditLog{}

func (r *AuditLogFile) Append(ctx context.Context, entry model.AuditLog) error {
	return r.file.mutate(emptyLogs, func(items []model.AuditLog) ([]model.AuditLog, error) {
		//最新を先頭に
		items = append([]model.AuditLog{entry}, items...)
		if len(items) > maxStoredLogs {
			items = items[:maxStoredLogs]
		}
		return items, nil
	})
}

func (r *AuditLogFile) List(ctx context.Context, limit int) ([]model.AuditLog, error) {
	items, err := r.file.list(emptyLogs)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

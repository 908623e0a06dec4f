package repository

import (
	"app/internal/domain/model"
	"context"
	"encoding/json"
	"fmt"
)

// カタログが非2xxを返したときのエラー。ボディは説明文として持ち回る。
type RemoteStatusError struct {
	StatusCode int
	Body       string
}

func (e *RemoteStatusError) Error() string {
	return fmt.Sprintf("catalog returned status %d", e.StatusCode)
}

// リモート在庫サービス（カタログAPI）への出口。
// 非2xxは *RemoteStatusError、通信断はトランスポート層のエラーをそのまま返す。
type CatalogClient interface {
	//商品の店舗別在庫を照会する。
	GetInventories(ctx context.Context, productID, userName string) (model.CatalogResponse, error)

	//在庫数を設定する。成功時はカタログのレスポンスボディをそのまま返す。
	SaveInventory(ctx context.Context, payload model.InventoryPayload, userName string) (json.RawMessage, error)

	//店舗の全在庫を初期化する。破壊的操作。
	InitializeStore(ctx context.Context, storeID string) (json.RawMessage, error)
}

package usecase

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"encoding/json"
	"fmt"
)

// quantity未指定のfillで使う固定値。remainとstockedInの両方に入る。
const defaultFillQuantity = 100

// 監査記録の約束。実装は internal/audit。
type AuditRecorder interface {
	Record(ctx context.Context, action model.AuditAction, userName, productID, storeID string, result model.AuditResult, details string)
}

// リモート在庫サービスと話す唯一のコンポーネント。
// 3操作とも1回きりのリクエスト/レスポンスで、リトライも呼び出し間の状態も持たない。
type InventoryUsecase struct {
	catalog  repo.CatalogClient
	recorder AuditRecorder
}

// DI
func NewInventoryUsecase(catalog repo.CatalogClient, recorder AuditRecorder) *InventoryUsecase {
	return &InventoryUsecase{
		catalog:  catalog,
		recorder: recorder,
	}
}

// 商品の店舗在庫を照会する。
// userNameが空でなければ成否どちらでも監査ログを1件残す。匿名の失敗は記録しない。
func (u *InventoryUsecase) Check(ctx context.Context, productID, storeID, userName string) (model.StockSnapshot, error) {
	rsp, err := u.catalog.GetInventories(ctx, productID, userName)
	if err != nil {
		ge := classifyRemoteError(err, "inventory check")
		u.recordError(ctx, model.AuditActionCheck, userName, productID, storeID, ge.Message)
		return model.StockSnapshot{}, ge
	}

	for _, s := range rsp.Data.Stores {
		if s.StoreID != storeID {
			continue
		}
		snap := model.StockSnapshot{
			ProductID:         productID,
			StoreID:           storeID,
			RemainQuantity:    s.RemainQuantity,
			StockedInQuantity: s.StockedInQuantity,
		}
		if userName != "" {
			u.recorder.Record(ctx, model.AuditActionCheck, userName, productID, storeID,
				model.AuditResultSuccess, fmt.Sprintf("remain: %d", s.RemainQuantity))
		}
		return snap, nil
	}

	ge := &GatewayError{
		Kind:    KindNotFoundAtStore,
		Message: fmt.Sprintf("no inventory found for store '%s'", storeID),
	}
	u.recordError(ctx, model.AuditActionCheck, userName, productID, storeID, ge.Message)
	return model.StockSnapshot{}, ge
}

// 在庫数を設定する。quantityがnilならremain/stockedInとも100。
// 指定時は両フィールドに同じ値が入る（個別には制御させない）。
// 成功時はカタログのレスポンスボディをそのまま返す。
func (u *InventoryUsecase) Fill(ctx context.Context, productID, storeID string, quantity *int, userName string) (json.RawMessage, error) {
	q := defaultFillQuantity
	if quantity != nil {
		q = *quantity
	}

	payload := model.InventoryPayload{
		ProductID:         productID,
		RemainQuantity:    q,
		StockedInQuantity: q,
		StoreID:           storeID,
	}

	body, err := u.catalog.SaveInventory(ctx, payload, userName)
	if err != nil {
		ge := classifyRemoteError(err, "inventory fill")
		u.recordError(ctx, model.AuditActionFill, userName, productID, storeID, ge.Message)
		return nil, ge
	}

	if userName != "" {
		u.recorder.Record(ctx, model.AuditActionFill, userName, productID, storeID,
			model.AuditResultSuccess, fmt.Sprintf("stock set: %d", q))
	}
	return body, nil
}

// 店舗の全在庫を初期化する。破壊的・非可逆で、確認は呼び出し側が挟むこと。
// check/fillと違いこの操作は監査ログに残らない（意図した非対称。揃えるなら仕様判断が要る）。
func (u *InventoryUsecase) InitializeStore(ctx context.Context, storeID string) (json.RawMessage, error) {
	body, err := u.catalog.InitializeStore(ctx, storeID)
	if err != nil {
		return nil, classifyRemoteError(err, "store initialization")
	}
	return body, nil
}

func (u *InventoryUsecase) recordError(ctx context.Context, action model.AuditAction, userName, productID, storeID, message string) {
	if userName == "" {
		return
	}
	u.recorder.Record(ctx, action, userName, productID, storeID, model.AuditResultError, message)
}

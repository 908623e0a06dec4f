package model

// check / fill の結果として返す在庫スナップショット。永続化しない。
type StockSnapshot struct {
	ProductID         string `json:"productId"`
	StoreID           string `json:"storeId"`
	RemainQuantity    int    `json:"remainQuantity"`
	StockedInQuantity int    `json:"stockedInQuantity"`
}

// ---- リモートカタログAPIのワイヤ形式 ----
// フィールド名はカタログ側の契約なので変えないこと。

// 店舗ごとの在庫内訳。
type StoreInventory struct {
	StoreID           string `json:"storeId"`
	RemainQuantity    int    `json:"remainQuantity"`
	StockedInQuantity int    `json:"stockedInQuantity"`
}

type InventoryData struct {
	ProductID string           `json:"productId"`
	Stores    []StoreInventory `json:"stores"`
}

// GET /product/{productId} のレスポンス。
type CatalogResponse struct {
	Status  string        `json:"status"`
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    InventoryData `json:"data"`
}

// POST /save のリクエストボディ。
type InventoryPayload struct {
	ProductID         string `json:"productId"`
	RemainQuantity    int    `json:"remainQuantity"`
	StockedInQuantity int    `json:"stockedInQuantity"`
	StoreID           string `json:"storeId"`
}

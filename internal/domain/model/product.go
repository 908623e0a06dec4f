package model

// 在庫照会の対象として登録された商品。
// IDは外部カタログのバーコードをそのまま持つ（形式チェックはしない）。
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	//シード投入された既定商品は削除できない。
	IsDefault bool `json:"is_default"`

	//登録したユーザー名。既定商品は空。
	AddedBy string `json:"added_by"`
}

// 在庫照会の対象となる実店舗。形は商品と同じ。
type Store struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
	AddedBy   string `json:"added_by"`
}

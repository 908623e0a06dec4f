// Package seed は初回起動時にレジストリへ投入する既定データを持つ。
// データ本体はバージョン管理されたJSONとして埋め込み、起動時に一度だけ読む。
package seed

import (
	"app/internal/domain/model"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
)

//go:embed products.json
var productsJSON []byte

//go:embed stores.json
var storesJSON []byte

var (
	defaultProducts []model.Product
	defaultStores   []model.Store
)

func init() {
	if err := json.Unmarshal(productsJSON, &defaultProducts); err != nil {
		panic(fmt.Sprintf("seed: broken products.json: %v", err))
	}
	if err := json.Unmarshal(storesJSON, &defaultStores); err != nil {
		panic(fmt.Sprintf("seed: broken stores.json: %v", err))
	}
}

// 既定商品のコピーを返す。呼び出し側が書き換えても元は変わらない。
func Products() []model.Product {
	return slices.Clone(defaultProducts)
}

// 既定店舗のコピーを返す。
func Stores() []model.Store {
	return slices.Clone(defaultStores)
}

package model

import "time"

// 在庫操作の種類。監査ログに残るのはこの2つだけ。
type AuditAction string

const (
	//在庫を照会した操作。
	AuditActionCheck AuditAction = "check"

	//在庫を補充した操作。
	AuditActionFill AuditAction = "fill"
)

// 操作の結果。
type AuditResult string

const (
	AuditResultSuccess AuditResult = "success"
	AuditResultError   AuditResult = "error"
)

// 監査ログ（在庫操作の履歴）。
// 「誰が」「どの商品を」「どの店舗で」「どうしたか」を残す。
type AuditLog struct {
	//記録時刻。秒精度。
	Timestamp time.Time `json:"timestamp"`

	//Actionは操作の種類（check / fill）。
	Action AuditAction `json:"action"`

	//操作したユーザー名（自由入力）。
	UserName string `json:"user_name"`

	//対象商品のIDと表示名。名前が引けない場合はIDをそのまま入れる。
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`

	//対象店舗のIDと表示名。
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`

	//success / error。
	Result AuditResult `json:"result"`

	//数量や失敗理由などの補足テキスト。
	Details string `json:"details"`
}

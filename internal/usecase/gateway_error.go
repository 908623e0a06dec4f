package usecase

import (
	repo "app/internal/repository"
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ゲートウェイ操作の失敗分類。
type GatewayErrorKind string

const (
	//カタログのレスポンスに対象店舗が含まれていない。
	KindNotFoundAtStore GatewayErrorKind = "not_found_at_store"

	//カタログが非2xxで拒否した。
	KindRemoteRejected GatewayErrorKind = "remote_rejected"

	//タイムアウト・接続失敗などトランスポート層の失敗。
	KindTransportFailure GatewayErrorKind = "transport_failure"

	//上記以外（レスポンスが解釈できない等）。
	KindUnknown GatewayErrorKind = "unknown"
)

// check / fill / initialize が返す一様なエラー。
// Messageはそのままユーザーに見せられる説明文。
type GatewayError struct {
	Kind       GatewayErrorKind
	StatusCode int
	Body       string
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	ok := errors.As(err, &ge)
	return ge, ok
}

// カタログクライアントのエラーを3分類に落とす。
// opLabelは "inventory check" のような操作名で、unknown時のメッセージにだけ使う。
func classifyRemoteError(err error, opLabel string) *GatewayError {
	var rse *repo.RemoteStatusError
	if errors.As(err, &rse) {
		return &GatewayError{
			Kind:       KindRemoteRejected,
			StatusCode: rse.StatusCode,
			Body:       rse.Body,
			Message:    fmt.Sprintf("catalog api error (%d): %s", rse.StatusCode, rse.Body),
			Err:        err,
		}
	}
	if isTransportError(err) {
		return &GatewayError{
			Kind:    KindTransportFailure,
			Message: fmt.Sprintf("network error: %v", err),
			Err:     err,
		}
	}
	return &GatewayError{
		Kind:    KindUnknown,
		Message: fmt.Sprintf("%s failed: %v", opLabel, err),
		Err:     err,
	}
}

func isTransportError(err error) bool {
	var ue *url.Error
	if errors.As(err, &ue) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

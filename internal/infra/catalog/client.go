// カタログ在庫APIへのHTTPクライアント。
// リモート呼び出しはすべて10秒でタイムアウトする。
package catalog

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/guonaihong/gout"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	timeout time.Duration
}

func New(baseURL string) repo.CatalogClient {
	return &Client{baseURL: baseURL, timeout: defaultTimeout}
}

func (c *Client) GetInventories(ctx context.Context, productID, userName string) (model.CatalogResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	df := gout.GET(c.baseURL + "/api/inventories/v1/product/" + url.PathEscape(productID)).WithContext(ctx)
	if userName != "" {
		df = df.SetQuery(gout.H{"user_name": userName})
	}

	var (
		code int
		body string
	)
	if err := df.BindBody(&body).Code(&code).Do(); err != nil {
		return model.CatalogResponse{}, err
	}
	if code < 200 || code >= 300 {
		return model.CatalogResponse{}, &repo.RemoteStatusError{StatusCode: code, Body: body}
	}

	var rsp model.CatalogResponse
	if err := json.Unmarshal([]byte(body), &rsp); err != nil {
		return model.CatalogResponse{}, err
	}
	return rsp, nil
}

func (c *Client) SaveInventory(ctx context.Context, payload model.InventoryPayload, userName string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	df := gout.POST(c.baseURL + "/api/inventories/v1/qa/save").WithContext(ctx).SetJSON(payload)
	if userName != "" {
		df = df.SetQuery(gout.H{"user_name": userName})
	}

	var (
		code int
		body string
	)
	if err := df.BindBody(&body).Code(&code).Do(); err != nil {
		return nil, err
	}
	if code < 200 || code >= 300 {
		return nil, &repo.RemoteStatusError{StatusCode: code, Body: body}
	}
	return json.RawMessage(body), nil
}

func (c *Client) InitializeStore(ctx context.Context, storeID string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var (
		code int
		body string
	)
	err := gout.GET(c.baseURL + "/api/inventories/v1/verification/initialize/" + url.PathEscape(storeID)).
		WithContext(ctx).
		BindBody(&body).
		Code(&code).
		Do()
	if err != nil {
		return nil, err
	}
	if code < 200 || code >= 300 {
		return nil, &repo.RemoteStatusError{StatusCode: code, Body: body}
	}
	return json.RawMessage(body), nil
}

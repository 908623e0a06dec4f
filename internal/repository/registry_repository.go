package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var (
	//同じIDが既に登録されている。
	ErrDuplicateEntry = errors.New("duplicate entry")

	ErrNotFound = errors.New("not found")

	//既定エントリは削除できない。
	ErrProtected = errors.New("protected entry")
)

// 商品・店舗レジストリの永続化だけを約束。
// 一覧は未作成ならシードを書き込んで返す。
type RegistryRepository interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	AddProduct(ctx context.Context, p model.Product) error
	DeleteProduct(ctx context.Context, id string) error

	ListStores(ctx context.Context) ([]model.Store, error)
	AddStore(ctx context.Context, s model.Store) error
	DeleteStore(ctx context.Context, id string) error
}

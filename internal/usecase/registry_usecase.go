package usecase

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"net/http"
	"strings"
)

// 商品・店舗レジストリの操作。レジストリのエラーを利用者向けメッセージに変換する。
type RegistryUsecase struct {
	registry repo.RegistryRepository
}

// DI
func NewRegistryUsecase(registry repo.RegistryRepository) *RegistryUsecase {
	return &RegistryUsecase{registry: registry}
}

func (u *RegistryUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.registry.ListProducts(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return products, nil
}

func (u *RegistryUsecase) ListStores(ctx context.Context) ([]model.Store, error) {
	stores, err := u.registry.ListStores(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return stores, nil
}

func (u *RegistryUsecase) AddProduct(ctx context.Context, id, name, userName string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return NewHTTPError(http.StatusBadRequest, "product id required")
	}
	if strings.TrimSpace(name) == "" {
		return NewHTTPError(http.StatusBadRequest, "product name required")
	}

	err := u.registry.AddProduct(ctx, model.Product{
		ID:      id,
		Name:    strings.TrimSpace(name),
		AddedBy: userName,
	})
	if errors.Is(err, repo.ErrDuplicateEntry) {
		return NewHTTPError(http.StatusBadRequest, "product id already exists")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return nil
}

func (u *RegistryUsecase) AddStore(ctx context.Context, id, name, userName string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return NewHTTPError(http.StatusBadRequest, "store id required")
	}
	if strings.TrimSpace(name) == "" {
		return NewHTTPError(http.StatusBadRequest, "store name required")
	}

	err := u.registry.AddStore(ctx, model.Store{
		ID:      id,
		Name:    strings.TrimSpace(name),
		AddedBy: userName,
	})
	if errors.Is(err, repo.ErrDuplicateEntry) {
		return NewHTTPError(http.StatusBadRequest, "store id already exists")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return nil
}

func (u *RegistryUsecase) DeleteProduct(ctx context.Context, id string) error {
	err := u.registry.DeleteProduct(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if errors.Is(err, repo.ErrProtected) {
		return NewHTTPError(http.StatusBadRequest, "default product cannot be deleted")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return nil
}

func (u *RegistryUsecase) DeleteStore(ctx context.Context, id string) error {
	err := u.registry.DeleteStore(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "store not found")
	}
	if errors.Is(err, repo.ErrProtected) {
		return NewHTTPError(http.StatusBadRequest, "default store cannot be deleted")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return nil
}

package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"path/filepath"
)

// ファイル実装のレジストリ。products.json / stores.json を持つ。
type RegistryFile struct {
	products documentFile[model.Product]
	stores   documentFile[model.Store]

	seedProducts []model.Product
	seedStores   []model.Store
}

func NewRegistryFile(dir string, seedProducts []model.Product, seedStores []model.Store) repo.RegistryRepository {
	return &RegistryFile{
		products:     documentFile[model.Product]{path: filepath.Join(dir, "products.json")},
		stores:       documentFile[model.Store]{path: filepath.Join(dir, "stores.json")},
		seedProducts: seedProducts,
		seedStores:   seedStores,
	}
}

func (r *RegistryFile) ListProducts(ctx context.Context) ([]model.Product, error) {
	return r.products.list(r.seedProducts)
}

func (r *RegistryFile) AddProduct(ctx context.Context, p model.Product) error {
	return r.products.mutate(r.seedProducts, func(items []model.Product) ([]model.Product, error) {
		for _, it := range items {
			//IDは大文字小文字を区別した完全一致
			if it.ID == p.ID {
				return nil, repo.ErrDuplicateEntry
			}
		}
		return append(items, p), nil
	})
}

func (r *RegistryFile) DeleteProduct(ctx context.Context, id string) error {
	return r.products.mutate(r.seedProducts, func(items []model.Product) ([]model.Product, error) {
		for i, it := range items {
			if it.ID != id {
				continue
			}
			if it.IsDefault {
				return nil, repo.ErrProtected
			}
			return append(items[:i], items[i+1:]...), nil
		}
		return nil, repo.ErrNotFound
	})
}

func (r *RegistryFile) ListStores(ctx context.Context) ([]model.Store, error) {
	return r.stores.list(r.seedStores)
}

func (r *RegistryFile) AddStore(ctx context.Context, s model.Store) error {
	return r.stores.mutate(r.seedStores, func(items []model.Store) ([]model.Store, error) {
		for _, it := range items {
			if it.ID == s.ID {
				return nil, repo.ErrDuplicateEntry
			}
		}
		return append(items, s), nil
	})
}

func (r *RegistryFile) DeleteStore(ctx context.Context, id string) error {
	return r.stores.mutate(r.seedStores, func(items []model.Store) ([]model.Store, error) {
		for i, it := range items {
			if it.ID != id {
				continue
			}
			if it.IsDefault {
				return nil, repo.ErrProtected
			}
			return append(items[:i], items[i+1:]...), nil
		}
		return nil, repo.ErrNotFound
	})
}

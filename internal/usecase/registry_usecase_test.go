package usecase_test

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type RegistryRepoMock struct{ mock.Mock }

func (m *RegistryRepoMock) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *RegistryRepoMock) AddProduct(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *RegistryRepoMock) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RegistryRepoMock) ListStores(ctx context.Context) ([]model.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]model.Store)
	return stores, args.Error(1)
}

func (m *RegistryRepoMock) AddStore(ctx context.Context, s model.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *RegistryRepoMock) DeleteStore(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
	assert.Equal(t, message, he.Message)
}

func TestRegistryUsecase_AddProduct_EmptyID(t *testing.T) {
	uc := usecase.NewRegistryUsecase(new(RegistryRepoMock))

	err := uc.AddProduct(context.Background(), "  ", "name", "alice")
	assertHTTPError(t, err, http.StatusBadRequest, "product id required")
}

func TestRegistryUsecase_AddProduct_EmptyName(t *testing.T) {
	uc := usecase.NewRegistryUsecase(new(RegistryRepoMock))

	err := uc.AddProduct(context.Background(), "p1", "", "alice")
	assertHTTPError(t, err, http.StatusBadRequest, "product name required")
}

func TestRegistryUsecase_AddProduct_BuildsNonDefaultEntry(t *testing.T) {
	registry := new(RegistryRepoMock)
	registry.On("AddProduct", mock.Anything, model.Product{
		ID:      "p1",
		Name:    "new product",
		AddedBy: "alice",
	}).Return(nil).Once()

	uc := usecase.NewRegistryUsecase(registry)
	require.NoError(t, uc.AddProduct(context.Background(), " p1 ", " new product ", "alice"))
	registry.AssertExpectations(t)
}

func TestRegistryUsecase_AddProduct_Duplicate(t *testing.T) {
	registry := new(RegistryRepoMock)
	registry.On("AddProduct", mock.Anything, mock.Anything).Return(repo.ErrDuplicateEntry)

	uc := usecase.NewRegistryUsecase(registry)
	err := uc.AddProduct(context.Background(), "p1", "name", "alice")
	assertHTTPError(t, err, http.StatusBadRequest, "product id already exists")
}

func TestRegistryUsecase_AddStore_Duplicate(t *testing.T) {
	registry := new(RegistryRepoMock)
	registry.On("AddStore", mock.Anything, mock.Anything).Return(repo.ErrDuplicateEntry)

	uc := usecase.NewRegistryUsecase(registry)
	err := uc.AddStore(context.Background(), "s1", "name", "alice")
	assertHTTPError(t, err, http.StatusBadRequest, "store id already exists")
}

func TestRegistryUsecase_DeleteProduct_NotFound(t *testing.T) {
	registry := new(RegistryRepoMock)
	registry.On("DeleteProduct", mock.Anything, "p1").Return(repo.ErrNotFound)

	uc := usecase.NewRegistryUsecase(registry)
	err := uc.DeleteProduct(context.Background(), "p1")
	assertHTTPError(t, err, http.StatusNotFound, "product not found")
}

func TestRegistryUsecase_DeleteProduct_Protected(t *testing.T) {
	registry := new(RegistryRepoMock)
	registry.On("DeleteProduct", mock.Anything, "4005808801022").Return(repo.ErrProtected)

	uc := usecase.NewRegistryUsecase(registry)
	err := uc.DeleteProduct(context.Background(), "4005808801022")
	assertHTTPError(t, err, http.StatusBadRequest, "default product cannot be deleted")
}

func TestRegistryUsecase_DeleteStore_Protected(t *testing.T) {
	registry := new(RegistryRepoMock)
	registry.On("DeleteStore", mock.Anything, "DDAA").Return(repo.ErrProtected)

	uc := usecase.NewRegistryUsecase(registry)
	err := uc.DeleteStore(context.Background(), "DDAA")
	assertHTTPError(t, err, http.StatusBadRequest, "default store cannot be deleted")
}

func TestRegistryUsecase_ListProducts(t *testing.T) {
	registry := new(RegistryRepoMock)
	registry.On("ListProducts", mock.Anything).Return([]model.Product{
		{ID: "4005808801022", Name: "니베아크림60ml", IsDefault: true},
	}, nil)

	uc := usecase.NewRegistryUsecase(registry)
	products, err := uc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "니베아크림60ml", products[0].Name)
}

var _ repo.RegistryRepository = (*RegistryRepoMock)(nil)

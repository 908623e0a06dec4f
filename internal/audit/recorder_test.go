package audit

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

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
	panic("not used in Recorder tests")
}

func (m *RegistryRepoMock) DeleteProduct(ctx context.Context, id string) error {
	panic("not used in Recorder tests")
}

func (m *RegistryRepoMock) ListStores(ctx context.Context) ([]model.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]model.Store)
	return stores, args.Error(1)
}

func (m *RegistryRepoMock) AddStore(ctx context.Context, s model.Store) error {
	panic("not used in Recorder tests")
}

func (m *RegistryRepoMock) DeleteStore(ctx context.Context, id string) error {
	panic("not used in Recorder tests")
}

type AuditLogRepoMock struct{ mock.Mock }

func (m *AuditLogRepoMock) Append(ctx context.Context, entry model.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *AuditLogRepoMock) List(ctx context.Context, limit int) ([]model.AuditLog, error) {
	panic("not used in Recorder tests")
}

func knownRegistry() *RegistryRepoMock {
	registry := new(RegistryRepoMock)
	registry.On("ListProducts", mock.Anything).Return([]model.Product{
		{ID: "4005808801022", Name: "니베아크림60ml", IsDefault: true},
	}, nil)
	registry.On("ListStores", mock.Anything).Return([]model.Store{
		{ID: "DDAA", Name: "플러스점", IsDefault: true},
	}, nil)
	return registry
}

func TestRecorder_ResolvesDisplayNames(t *testing.T) {
	logs := new(AuditLogRepoMock)
	logs.On("Append", mock.Anything, mock.Anything).Return(nil)

	r := NewRecorder(knownRegistry(), logs)
	defer r.Close()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 500_000_000, time.UTC)
	r.now = func() time.Time { return fixed }

	r.Record(context.Background(), model.AuditActionCheck, "alice", "4005808801022", "DDAA",
		model.AuditResultSuccess, "remain: 12")
	r.Flush()

	logs.AssertNumberOfCalls(t, "Append", 1)
	entry, ok := logs.Calls[0].Arguments.Get(1).(model.AuditLog)
	require.True(t, ok)
	assert.Equal(t, "니베아크림60ml", entry.ProductName)
	assert.Equal(t, "플러스점", entry.StoreName)
	//秒精度に丸める
	assert.Equal(t, fixed.Truncate(time.Second), entry.Timestamp)
}

func TestRecorder_UnknownIDsFallBackToRawID(t *testing.T) {
	logs := new(AuditLogRepoMock)
	logs.On("Append", mock.Anything, mock.Anything).Return(nil)

	r := NewRecorder(knownRegistry(), logs)
	defer r.Close()

	r.Record(context.Background(), model.AuditActionCheck, "alice", "0000000000000", "ZZZZ",
		model.AuditResultError, "no inventory found for store 'ZZZZ'")
	r.Flush()

	logs.AssertNumberOfCalls(t, "Append", 1)
	entry := logs.Calls[0].Arguments.Get(1).(model.AuditLog)
	assert.Equal(t, "0000000000000", entry.ProductName)
	assert.Equal(t, "ZZZZ", entry.StoreName)
}

func TestRecorder_RegistryFailureFallsBackToRawID(t *testing.T) {
	registry := new(RegistryRepoMock)
	registry.On("ListProducts", mock.Anything).Return(nil, errors.New("disk gone"))
	registry.On("ListStores", mock.Anything).Return(nil, errors.New("disk gone"))

	logs := new(AuditLogRepoMock)
	logs.On("Append", mock.Anything, mock.Anything).Return(nil)

	r := NewRecorder(registry, logs)
	defer r.Close()

	r.Record(context.Background(), model.AuditActionFill, "alice", "p1", "s1",
		model.AuditResultSuccess, "stock set: 100")
	r.Flush()

	entry := logs.Calls[0].Arguments.Get(1).(model.AuditLog)
	assert.Equal(t, "p1", entry.ProductName)
	assert.Equal(t, "s1", entry.StoreName)
}

func TestRecorder_PersistFailureDoesNotPropagate(t *testing.T) {
	logs := new(AuditLogRepoMock)
	logs.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	r := NewRecorder(knownRegistry(), logs)
	defer r.Close()

	//Recordは失敗を返す口を持たない。Flushまで含めてpanicしないこと。
	r.Record(context.Background(), model.AuditActionFill, "alice", "p1", "s1",
		model.AuditResultError, "network error")
	r.Flush()

	//1回リトライして諦める
	logs.AssertNumberOfCalls(t, "Append", 2)
}

func TestRecorder_CloseDoesNotLoseConcurrentRecords(t *testing.T) {
	logs := new(AuditLogRepoMock)
	logs.On("Append", mock.Anything, mock.Anything).Return(nil)

	r := NewRecorder(knownRegistry(), logs)

	//Closeと競合しながら記録しても、キュー経由か同期書き込みのどちらかで必ず残る
	const records = 50
	var wg sync.WaitGroup
	for i := 0; i < records; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Record(context.Background(), model.AuditActionCheck, "alice", "p1", "s1",
				model.AuditResultSuccess, "remain: 1")
		}()
	}
	r.Close()
	wg.Wait()

	logs.AssertNumberOfCalls(t, "Append", records)
}

func TestRecorder_RecordAfterCloseWritesInline(t *testing.T) {
	logs := new(AuditLogRepoMock)
	logs.On("Append", mock.Anything, mock.Anything).Return(nil)

	r := NewRecorder(knownRegistry(), logs)
	r.Close()

	r.Record(context.Background(), model.AuditActionCheck, "alice", "p1", "s1",
		model.AuditResultSuccess, "remain: 1")

	logs.AssertNumberOfCalls(t, "Append", 1)
}

var _ repo.RegistryRepository = (*RegistryRepoMock)(nil)
var _ repo.AuditLogRepository = (*AuditLogRepoMock)(nil)

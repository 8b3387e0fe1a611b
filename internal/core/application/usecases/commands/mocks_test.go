package commands_test

import (
	"context"
	"testing"

	"greenspace/internal/core/application/usecases/commands"
	"greenspace/internal/core/domain/model/carrier"
	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/core/domain/model/worktask"
	"greenspace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func restoreOrder(t *testing.T, status order.Status, designPrice kernel.Money, reportManager, deliveryCode string) *order.ServiceOrder {
	t.Helper()
	serviceOrder, err := order.RestoreServiceOrder(
		kernel.NewUUID(),
		order.ServiceTypeCustomDesign,
		status,
		designPrice,
		nil,
		nil,
		"", reportManager, "",
		deliveryCode,
	)
	require.NoError(t, err)
	return serviceOrder
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.ServiceOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.ServiceOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) GetAllInShipping(ctx context.Context) ([]*order.ServiceOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.ServiceOrder), args.Error(1)
}

type MockWorkTaskRepository struct{ mock.Mock }

func (m *MockWorkTaskRepository) Add(ctx context.Context, t *worktask.WorkTask) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockWorkTaskRepository) Update(ctx context.Context, t *worktask.WorkTask) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockWorkTaskRepository) Get(ctx context.Context, id kernel.UUID) (*worktask.WorkTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worktask.WorkTask), args.Error(1)
}

func (m *MockWorkTaskRepository) GetActiveForOrder(ctx context.Context, serviceOrderID kernel.UUID) (*worktask.WorkTask, error) {
	args := m.Called(ctx, serviceOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worktask.WorkTask), args.Error(1)
}

type MockRevisionRepository struct{ mock.Mock }

func (m *MockRevisionRepository) Add(ctx context.Context, r *revision.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRevisionRepository) Update(ctx context.Context, r *revision.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRevisionRepository) GetAllForOrder(ctx context.Context, serviceOrderID kernel.UUID) ([]*revision.Record, error) {
	args := m.Called(ctx, serviceOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*revision.Record), args.Error(1)
}

type MockCarrierClient struct{ mock.Mock }

func (m *MockCarrierClient) CreateShipment(ctx context.Context, name, phone, address string) (string, error) {
	args := m.Called(ctx, name, phone, address)
	return args.String(0), args.Error(1)
}

func (m *MockCarrierClient) Track(ctx context.Context, deliveryCode string) (carrier.Status, error) {
	args := m.Called(ctx, deliveryCode)
	return args.Get(0).(carrier.Status), args.Error(1)
}

type MockShipmentTracker struct{ mock.Mock }

func (m *MockShipmentTracker) Track(serviceOrderID kernel.UUID) error {
	args := m.Called(serviceOrderID)
	return args.Error(0)
}

func (m *MockShipmentTracker) Cancel(serviceOrderID kernel.UUID) {
	m.Called(serviceOrderID)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderRevisionUoW struct{ mock.Mock }

func (m *MockOrderRevisionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderRevisionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderRevisionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderRevisionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderRevisionUoW) RevisionRepository() ports.RevisionRepository {
	args := m.Called()
	return args.Get(0).(ports.RevisionRepository)
}

type MockOrderRevisionUoWFactory struct{ mock.Mock }

func (m *MockOrderRevisionUoWFactory) Create() commands.OrderRevisionUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderRevisionUoW)
}

type MockOrderTaskUoW struct{ mock.Mock }

func (m *MockOrderTaskUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderTaskUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderTaskUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderTaskUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderTaskUoW) WorkTaskRepository() ports.WorkTaskRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkTaskRepository)
}

type MockOrderTaskUoWFactory struct{ mock.Mock }

func (m *MockOrderTaskUoWFactory) Create() commands.OrderTaskUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderTaskUoW)
}

type MockRevisionUoW struct{ mock.Mock }

func (m *MockRevisionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRevisionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRevisionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRevisionUoW) RevisionRepository() ports.RevisionRepository {
	args := m.Called()
	return args.Get(0).(ports.RevisionRepository)
}

type MockRevisionUoWFactory struct{ mock.Mock }

func (m *MockRevisionUoWFactory) Create() commands.RevisionUoW {
	args := m.Called()
	return args.Get(0).(commands.RevisionUoW)
}

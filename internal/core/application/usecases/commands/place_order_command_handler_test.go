package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlaceOrderRepository struct{ mock.Mock }

func (m *MockPlaceOrderRepository) NextID(ctx context.Context) (order.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(order.ID), args.Error(1)
}

func (m *MockPlaceOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockPlaceOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockPlaceOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockPlaceOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPlaceUoW struct{ mock.Mock }

func (m *MockPlaceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPlaceUoWFactory struct{ mock.Mock }

func (m *MockPlaceUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderPlacedPublisher struct{ mock.Mock }

func (m *MockOrderPlacedPublisher) PublishOrderPlaced(ctx context.Context, event ports.OrderPlacedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validPlaceOrderCommand(t *testing.T, now time.Time) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		-18,
		now.Add(48*time.Hour),
		mustAmount(t, "1000000000000000000"),
		mustAmount(t, "1000000000000000"),
		mustAmount(t, "100000000000000"),
	)
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmd := validPlaceOrderCommand(t, now)

	repo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	publisher := new(MockOrderPlacedPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextID", ctx).Return(order.ID(7), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderPlaced", ctx, mock.MatchedBy(func(e ports.OrderPlacedEvent) bool {
			stake := e.PaymentAmount.DivShare(order.StakeDivisor)
			return e.OrderID == order.ID(7) && e.StakeAmount.IsEqual(stake)
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, publisher, fixedClock{now}, discardLogger())
	orderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ID(7), orderID)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	factory := new(MockPlaceUoWFactory)
	publisher := new(MockOrderPlacedPublisher)
	handler := commands.NewPlaceOrderCommandHandler(factory, publisher, fixedClock{time.Now()}, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmd := validPlaceOrderCommand(t, now)

	uow := new(MockPlaceUoW)
	factory := new(MockPlaceUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	publisher := new(MockOrderPlacedPublisher)
	handler := commands.NewPlaceOrderCommandHandler(factory, publisher, fixedClock{now}, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestPlaceOrderCommandHandler_Handle_NextIDError(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmd := validPlaceOrderCommand(t, now)

	repo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextID", ctx).Return(order.ID(0), errors.New("sequence error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderPlacedPublisher)
	handler := commands.NewPlaceOrderCommandHandler(factory, publisher, fixedClock{now}, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "sequence error")
	publisher.AssertNotCalled(t, "PublishOrderPlaced")
}

func TestPlaceOrderCommandHandler_Handle_PastDeadline(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmd := validPlaceOrderCommand(t, now)

	repo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextID", ctx).Return(order.ID(7), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	// Clock past the command's deadline makes the aggregate reject it.
	lateClock := fixedClock{now.Add(100 * 24 * time.Hour)}
	publisher := new(MockOrderPlacedPublisher)
	handler := commands.NewPlaceOrderCommandHandler(factory, publisher, lateClock, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Add")
	publisher.AssertNotCalled(t, "PublishOrderPlaced")
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmd := validPlaceOrderCommand(t, now)

	repo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextID", ctx).Return(order.ID(7), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderPlacedPublisher)
	handler := commands.NewPlaceOrderCommandHandler(factory, publisher, fixedClock{now}, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "add error")
	publisher.AssertNotCalled(t, "PublishOrderPlaced")
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmd := validPlaceOrderCommand(t, now)

	repo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextID", ctx).Return(order.ID(7), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderPlacedPublisher)
	handler := commands.NewPlaceOrderCommandHandler(factory, publisher, fixedClock{now}, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	publisher.AssertNotCalled(t, "PublishOrderPlaced")
}

func TestPlaceOrderCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmd := validPlaceOrderCommand(t, now)

	repo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	publisher := new(MockOrderPlacedPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextID", ctx).Return(order.ID(7), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("ports.OrderPlacedEvent")).
			Return(errors.New("broker down")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, publisher, fixedClock{now}, discardLogger())
	orderID, err := handler.Handle(ctx, cmd)

	// The order is committed; a lost notification never undoes placement.
	require.NoError(t, err)
	assert.Equal(t, order.ID(7), orderID)
	publisher.AssertExpectations(t)
}

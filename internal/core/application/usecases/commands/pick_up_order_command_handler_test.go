package commands_test

import (
	"context"
	"testing"
	"time"

	"foodtasker/internal/core/application/usecases/commands"
	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/order"
	"foodtasker/internal/core/ports"
	"foodtasker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPickUpUoW struct{ mock.Mock }

func (m *MockPickUpUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickUpUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickUpUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickUpUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPickUpUoWFactory struct{ mock.Mock }

func (m *MockPickUpUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestPickUpOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 3, 18, 12, 30, 0, 0, time.UTC)

	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewPickUpOrderCommand(orderID, driverID)
	require.NoError(t, err)

	orderRepo := new(MockCheckoutOrderRepository)
	uow := new(MockPickUpUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("HasOrderOnTheWay", ctx, driverID).Return(false, nil).Once(),
		orderRepo.On("AssignDriver", ctx, orderID, driverID, now).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickUpUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickUpOrderCommandHandler(factory, fixedClock{now: now})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPickUpOrderCommandHandler_Handle_DriverAlreadyBusy(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewPickUpOrderCommand(orderID, driverID)
	require.NoError(t, err)

	orderRepo := new(MockCheckoutOrderRepository)
	uow := new(MockPickUpUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("HasOrderOnTheWay", ctx, driverID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickUpUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickUpOrderCommandHandler(factory, fixedClock{now: time.Now()})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyPicked)
	orderRepo.AssertNotCalled(t, "AssignDriver")
	uow.AssertNotCalled(t, "Commit")
}

func TestPickUpOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 3, 18, 12, 30, 0, 0, time.UTC)

	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewPickUpOrderCommand(orderID, driverID)
	require.NoError(t, err)

	orderRepo := new(MockCheckoutOrderRepository)
	uow := new(MockPickUpUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("HasOrderOnTheWay", ctx, driverID).Return(false, nil).Once(),
		orderRepo.On("AssignDriver", ctx, orderID, driverID, now).
			Return(order.ErrAlreadyPicked).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickUpUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickUpOrderCommandHandler(factory, fixedClock{now: now})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyPicked)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit")
}

func TestPickUpOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockPickUpUoWFactory)
	handler := commands.NewPickUpOrderCommandHandler(factory, fixedClock{now: time.Now()})

	err := handler.Handle(ctx, commands.PickUpOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPickUpOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

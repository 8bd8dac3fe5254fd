package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateCartItemCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemCommand(buyerSession(kernel.NewUUID()), kernel.NewUUID(), 4)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, 4, cmd.Quantity())
	})

	t.Run("should accept zero quantity as removal request", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemCommand(buyerSession(kernel.NewUUID()), kernel.NewUUID(), 0)

		require.NoError(t, err)
		assert.Equal(t, 0, cmd.Quantity())
	})

	t.Run("should reject seller session", func(t *testing.T) {
		_, err := commands.NewUpdateCartItemCommand(sellerSession(kernel.NewUUID()), kernel.NewUUID(), 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrSessionIsNotBuyer)
	})
}

func TestUpdateCartItemCommandHandler_Handle_QuantityChange(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	item, err := cart.NewItem(kernel.NewUUID(), buyerID, kernel.NewUUID(), 2)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateCartItemCommand(buyerSession(buyerID), item.ID(), 7)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		cartRepo.On("Update", ctx, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity())
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCartItemCommandHandler_Handle_ZeroQuantityRemoves(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	item, err := cart.NewItem(kernel.NewUUID(), buyerID, kernel.NewUUID(), 2)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateCartItemCommand(buyerSession(buyerID), item.ID(), 0)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		cartRepo.On("Remove", ctx, item.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	cartRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	cartRepo.AssertExpectations(t)
}

func TestUpdateCartItemCommandHandler_Handle_OtherBuyersItem(t *testing.T) {
	ctx := t.Context()

	item, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateCartItemCommand(buyerSession(kernel.NewUUID()), item.ID(), 5)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 2, item.Quantity())
}

func TestUpdateCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockCartUoWFactory)
	handler := commands.NewUpdateCartItemCommandHandler(factory)

	err := handler.Handle(ctx, commands.UpdateCartItemCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateCartItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

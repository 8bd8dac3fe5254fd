package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		session := buyerSession(kernel.NewUUID())
		productID := kernel.NewUUID()

		cmd, err := commands.NewAddCartItemCommand(session, productID, 3)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, productID.IsEqual(cmd.ProductID()))
		assert.Equal(t, 3, cmd.Quantity())
	})

	t.Run("should reject seller session", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(sellerSession(kernel.NewUUID()), kernel.NewUUID(), 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrSessionIsNotBuyer)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := commands.NewAddCartItemCommand(buyerSession(kernel.NewUUID()), kernel.NewUUID(), quantity)

			require.Error(t, err)
			assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
		}
	})

	t.Run("should reject invalid product id", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(buyerSession(kernel.NewUUID()), kernel.UUID{}, 1)

		require.Error(t, err)
	})
}

func TestAddCartItemCommandHandler_Handle_NewProduct(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand(buyerSession(buyerID), productID, 2)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByBuyerAndProduct", ctx, buyerID, productID).
			Return(nil, errs.NewObjectNotFoundError("cart item", productID.String())).Once(),
		cartRepo.On("Add", ctx, mock.AnythingOfType("*cart.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	added := cartRepo.Calls[1].Arguments.Get(1).(*cart.Item)
	assert.True(t, buyerID.IsEqual(added.BuyerID()))
	assert.True(t, productID.IsEqual(added.ProductID()))
	assert.Equal(t, 2, added.Quantity())

	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_MergesExistingRow(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand(buyerSession(buyerID), productID, 3)
	require.NoError(t, err)

	existing, err := cart.NewItem(kernel.NewUUID(), buyerID, productID, 2)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByBuyerAndProduct", ctx, buyerID, productID).Return(existing, nil).Once(),
		cartRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 5, existing.Quantity())
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ReadError(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand(buyerSession(buyerID), productID, 1)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByBuyerAndProduct", ctx, buyerID, productID).
			Return(nil, errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "connection reset")
	cartRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockCartUoWFactory)
	handler := commands.NewAddCartItemCommandHandler(factory)

	err := handler.Handle(ctx, commands.AddCartItemCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

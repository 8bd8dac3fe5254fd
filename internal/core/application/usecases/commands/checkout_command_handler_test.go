package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustUUID(t *testing.T, s string) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromString(s)
	require.NoError(t, err)
	return id
}

func mustKobo(t *testing.T, kobo int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromKobo(kobo)
	require.NoError(t, err)
	return m
}

func mustCartItem(t *testing.T, buyerID, productID kernel.UUID, quantity int) *cart.Item {
	t.Helper()
	item, err := cart.NewItem(kernel.NewUUID(), buyerID, productID, quantity)
	require.NoError(t, err)
	return item
}

func mustProduct(t *testing.T, id, sellerID kernel.UUID, priceKobo int64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, sellerID, "test product", mustKobo(t, priceKobo), stock)
	require.NoError(t, err)
	return p
}

func TestCheckoutCommandHandler_Handle_SingleSeller(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	productOne := kernel.NewUUID()
	productTwo := kernel.NewUUID()

	cmd, err := commands.NewCheckoutCommand(buyerSession(buyerID), "12 Marina Road, Lagos", "")
	require.NoError(t, err)

	cartItems := []*cart.Item{
		mustCartItem(t, buyerID, productOne, 2),
		mustCartItem(t, buyerID, productTwo, 1),
	}
	products := []*product.Product{
		mustProduct(t, productOne, sellerID, 50000, 10),
		mustProduct(t, productTwo, sellerID, 100000, 10),
	}

	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	numbers := new(MockOrderNumberGenerator)
	events := new(MockOrderEventPublisher)

	cartRepo.On("GetByBuyer", ctx, buyerID).Return(cartItems, nil).Once()
	productRepo.On("GetByIDs", ctx, mock.Anything).Return(products, nil).Once()
	numbers.On("Next", ctx).Return("ORD-1001", nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	productRepo.On("DecrementStock", ctx, productOne, 2).Return(nil).Once()
	productRepo.On("DecrementStock", ctx, productTwo, 1).Return(nil).Once()
	cartRepo.On("RemoveByBuyerAndProducts", ctx, buyerID, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cartRepo.On("ClearByBuyer", ctx, buyerID).Return(nil).Once()
	events.On("OrderCreated", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("ProductRepository").Return(productRepo)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	handler := commands.NewCheckoutCommandHandler(factory, numbers, events, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, created, 1)
	ord := created[0]
	assert.Equal(t, "ORD-1001", ord.Number())
	assert.True(t, buyerID.IsEqual(ord.BuyerID()))
	assert.True(t, sellerID.IsEqual(ord.SellerID()))
	assert.Equal(t, order.Pending, ord.Status())
	assert.Equal(t, int64(200000), ord.TotalAmount().Kobo())
	assert.Len(t, ord.Items(), 2)

	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	numbers.AssertExpectations(t)
	events.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_MultiSeller(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	sellerOne := mustUUID(t, "11111111-1111-1111-1111-111111111111")
	sellerTwo := mustUUID(t, "22222222-2222-2222-2222-222222222222")
	productOne := kernel.NewUUID()
	productTwo := kernel.NewUUID()

	cmd, err := commands.NewCheckoutCommand(buyerSession(buyerID), "12 Marina Road, Lagos", "")
	require.NoError(t, err)

	cartItems := []*cart.Item{
		mustCartItem(t, buyerID, productOne, 2),
		mustCartItem(t, buyerID, productTwo, 1),
	}
	products := []*product.Product{
		mustProduct(t, productOne, sellerOne, 50000, 10),
		mustProduct(t, productTwo, sellerTwo, 100000, 10),
	}

	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	numbers := new(MockOrderNumberGenerator)
	events := new(MockOrderEventPublisher)

	cartRepo.On("GetByBuyer", ctx, buyerID).Return(cartItems, nil).Once()
	productRepo.On("GetByIDs", ctx, mock.Anything).Return(products, nil).Once()
	numbers.On("Next", ctx).Return("ORD-1001", nil).Once()
	numbers.On("Next", ctx).Return("ORD-1002", nil).Once()

	uow.On("Begin", ctx).Return(nil).Times(2)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Times(2)
	productRepo.On("DecrementStock", ctx, productOne, 2).Return(nil).Once()
	productRepo.On("DecrementStock", ctx, productTwo, 1).Return(nil).Once()
	cartRepo.On("RemoveByBuyerAndProducts", ctx, buyerID, mock.Anything).Return(nil).Times(2)
	uow.On("Commit", ctx).Return(nil).Times(2)
	uow.On("Rollback", ctx).Return(nil).Times(2)

	cartRepo.On("ClearByBuyer", ctx, buyerID).Return(nil).Once()
	events.On("OrderCreated", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Times(2)

	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("ProductRepository").Return(productRepo)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Times(4)

	handler := commands.NewCheckoutCommandHandler(factory, numbers, events, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, created, 2)

	// Seller groups commit in ascending seller-ID order.
	assert.True(t, sellerOne.IsEqual(created[0].SellerID()))
	assert.True(t, sellerTwo.IsEqual(created[1].SellerID()))
	assert.Equal(t, "ORD-1001", created[0].Number())
	assert.Equal(t, "ORD-1002", created[1].Number())
	assert.Equal(t, int64(100000), created[0].TotalAmount().Kobo())
	assert.Equal(t, int64(100000), created[1].TotalAmount().Kobo())

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	sellerOne := mustUUID(t, "11111111-1111-1111-1111-111111111111")
	sellerTwo := mustUUID(t, "22222222-2222-2222-2222-222222222222")
	productOne := kernel.NewUUID()
	productTwo := kernel.NewUUID()

	cmd, err := commands.NewCheckoutCommand(buyerSession(buyerID), "12 Marina Road, Lagos", "")
	require.NoError(t, err)

	cartItems := []*cart.Item{
		mustCartItem(t, buyerID, productOne, 1),
		mustCartItem(t, buyerID, productTwo, 1),
	}
	products := []*product.Product{
		mustProduct(t, productOne, sellerOne, 50000, 10),
		mustProduct(t, productTwo, sellerTwo, 100000, 10),
	}

	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	numbers := new(MockOrderNumberGenerator)
	events := new(MockOrderEventPublisher)

	cartRepo.On("GetByBuyer", ctx, buyerID).Return(cartItems, nil).Once()
	productRepo.On("GetByIDs", ctx, mock.Anything).Return(products, nil).Once()
	numbers.On("Next", ctx).Return("ORD-1001", nil).Once()
	numbers.On("Next", ctx).Return("ORD-1002", nil).Once()

	uow.On("Begin", ctx).Return(nil).Times(2)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("insert failed")).Once()
	productRepo.On("DecrementStock", ctx, productOne, 1).Return(nil).Once()
	cartRepo.On("RemoveByBuyerAndProducts", ctx, buyerID, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)

	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("ProductRepository").Return(productRepo)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	handler := commands.NewCheckoutCommandHandler(factory, numbers, events, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)

	var partial *commands.PartialCheckoutError
	require.ErrorAs(t, err, &partial)
	require.Len(t, partial.CreatedOrders, 1)
	assert.True(t, sellerOne.IsEqual(partial.CreatedOrders[0].SellerID()))
	assert.True(t, sellerTwo.IsEqual(partial.FailedSellerID))
	assert.Contains(t, partial.Error(), "1 order(s) committed")

	// The cart sweep and the created events only run after a full success.
	cartRepo.AssertNotCalled(t, "ClearByBuyer", ctx, buyerID)
	events.AssertNotCalled(t, "OrderCreated", ctx, mock.Anything)
}

func TestCheckoutCommandHandler_Handle_FirstGroupFailure(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewCheckoutCommand(buyerSession(buyerID), "12 Marina Road, Lagos", "")
	require.NoError(t, err)

	cartItems := []*cart.Item{mustCartItem(t, buyerID, productID, 1)}
	products := []*product.Product{mustProduct(t, productID, sellerID, 50000, 10)}

	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	numbers := new(MockOrderNumberGenerator)
	events := new(MockOrderEventPublisher)

	cartRepo.On("GetByBuyer", ctx, buyerID).Return(cartItems, nil).Once()
	productRepo.On("GetByIDs", ctx, mock.Anything).Return(products, nil).Once()
	numbers.On("Next", ctx).Return("ORD-1001", nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("ProductRepository").Return(productRepo)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	handler := commands.NewCheckoutCommandHandler(factory, numbers, events, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)

	// No group committed, so the plain error surfaces, not a partial one.
	var partial *commands.PartialCheckoutError
	assert.False(t, errors.As(err, &partial))
	assert.Contains(t, err.Error(), "insert failed")
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(buyerSession(buyerID), "12 Marina Road, Lagos", "")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	cartRepo.On("GetByBuyer", ctx, buyerID).Return([]*cart.Item{}, nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(
		factory, new(MockOrderNumberGenerator), new(MockOrderEventPublisher), discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, commands.ErrCartIsEmpty)
}

func TestCheckoutCommandHandler_Handle_PublishFailureIsTolerated(t *testing.T) {
	ctx := t.Context()

	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewCheckoutCommand(buyerSession(buyerID), "12 Marina Road, Lagos", "")
	require.NoError(t, err)

	cartItems := []*cart.Item{mustCartItem(t, buyerID, productID, 1)}
	products := []*product.Product{mustProduct(t, productID, sellerID, 50000, 10)}

	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	numbers := new(MockOrderNumberGenerator)
	events := new(MockOrderEventPublisher)

	cartRepo.On("GetByBuyer", ctx, buyerID).Return(cartItems, nil).Once()
	productRepo.On("GetByIDs", ctx, mock.Anything).Return(products, nil).Once()
	numbers.On("Next", ctx).Return("ORD-1001", nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	productRepo.On("DecrementStock", ctx, productID, 1).Return(nil).Once()
	cartRepo.On("RemoveByBuyerAndProducts", ctx, buyerID, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cartRepo.On("ClearByBuyer", ctx, buyerID).Return(errors.New("cart store down")).Once()
	events.On("OrderCreated", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("broker down")).Once()

	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("ProductRepository").Return(productRepo)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	handler := commands.NewCheckoutCommandHandler(factory, numbers, events, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, created, 1)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockCheckoutUoWFactory)
	handler := commands.NewCheckoutCommandHandler(
		factory, new(MockOrderNumberGenerator), new(MockOrderEventPublisher), discardLogger())

	_, err := handler.Handle(ctx, commands.CheckoutCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

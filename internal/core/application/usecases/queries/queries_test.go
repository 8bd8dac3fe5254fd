package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buyerSession(t *testing.T) kernel.Session {
	t.Helper()
	session, err := kernel.NewSession(kernel.NewUUID(), kernel.RoleBuyer)
	require.NoError(t, err)
	return session
}

func sellerSession(t *testing.T) kernel.Session {
	t.Helper()
	session, err := kernel.NewSession(kernel.NewUUID(), kernel.RoleSeller)
	require.NoError(t, err)
	return session
}

func TestNewGetCartQuery(t *testing.T) {
	t.Run("should create query for buyer session", func(t *testing.T) {
		session := buyerSession(t)

		query, err := queries.NewGetCartQuery(session)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, session, query.Session())
	})

	t.Run("should reject seller session", func(t *testing.T) {
		_, err := queries.NewGetCartQuery(sellerSession(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrSessionIsNotBuyer)
	})

	t.Run("should reject invalid session", func(t *testing.T) {
		_, err := queries.NewGetCartQuery(kernel.Session{})

		require.Error(t, err)
	})

	t.Run("should reject zero value query in Validate", func(t *testing.T) {
		var query queries.GetCartQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetCartQueryIsNotConstructed)
	})
}

func TestNewGetBuyerOrdersQuery(t *testing.T) {
	t.Run("should create query for buyer session", func(t *testing.T) {
		query, err := queries.NewGetBuyerOrdersQuery(buyerSession(t))

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject seller session", func(t *testing.T) {
		_, err := queries.NewGetBuyerOrdersQuery(sellerSession(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrSessionIsNotBuyer)
	})

	t.Run("should reject zero value query in Validate", func(t *testing.T) {
		var query queries.GetBuyerOrdersQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetBuyerOrdersQueryIsNotConstructed)
	})
}

func TestNewGetSellerOrdersQuery(t *testing.T) {
	t.Run("should create unfiltered query", func(t *testing.T) {
		query, err := queries.NewGetSellerOrdersQuery(sellerSession(t), order.Unknown)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.False(t, query.HasStatusFilter())
		assert.Equal(t, order.Unknown, query.StatusFilter())
	})

	t.Run("should create filtered query", func(t *testing.T) {
		query, err := queries.NewGetSellerOrdersQuery(sellerSession(t), order.Pending)

		require.NoError(t, err)
		assert.True(t, query.HasStatusFilter())
		assert.Equal(t, order.Pending, query.StatusFilter())
	})

	t.Run("should reject buyer session", func(t *testing.T) {
		_, err := queries.NewGetSellerOrdersQuery(buyerSession(t), order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrSessionIsNotSeller)
	})

	t.Run("should reject invalid status filter", func(t *testing.T) {
		_, err := queries.NewGetSellerOrdersQuery(sellerSession(t), order.Status(42))

		require.Error(t, err)
	})

	t.Run("should reject zero value query in Validate", func(t *testing.T) {
		var query queries.GetSellerOrdersQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetSellerOrdersQueryIsNotConstructed)
	})
}

package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	t.Run("should create command for buyer session", func(t *testing.T) {
		session := buyerSession(kernel.NewUUID())

		cmd, err := commands.NewCheckoutCommand(session, "12 Marina Road, Lagos", "leave at gate")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, session, cmd.Session())
		assert.Equal(t, "12 Marina Road, Lagos", cmd.ShippingAddress())
		assert.Equal(t, "leave at gate", cmd.Notes())
	})

	t.Run("should allow empty notes", func(t *testing.T) {
		cmd, err := commands.NewCheckoutCommand(buyerSession(kernel.NewUUID()), "12 Marina Road, Lagos", "")

		require.NoError(t, err)
		assert.Empty(t, cmd.Notes())
	})

	t.Run("should reject seller session", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(sellerSession(kernel.NewUUID()), "12 Marina Road, Lagos", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrSessionIsNotBuyer)
	})

	t.Run("should reject invalid session", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.Session{}, "12 Marina Road, Lagos", "")

		require.Error(t, err)
	})

	t.Run("should reject empty shipping address", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(buyerSession(kernel.NewUUID()), "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrShippingAddressIsRequired)
	})

	t.Run("should reject zero value command in Validate", func(t *testing.T) {
		var cmd commands.CheckoutCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
	})
}

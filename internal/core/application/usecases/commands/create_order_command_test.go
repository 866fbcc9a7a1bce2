package commands_test

import (
	"testing"

	"foodtasker/internal/core/application/usecases/commands"
	"foodtasker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func validLines(t *testing.T) []commands.OrderLineInput {
	t.Helper()
	line, err := commands.NewOrderLineInput(kernel.NewUUID(), 2)
	require.NoError(t, err)
	return []commands.OrderLineInput{line}
}

func TestNewCreateOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	lines := validLines(t)

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, restaurantID, "123 Main Street", lines, "tok_visa")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, orderID, cmd.OrderID())
	require.Equal(t, customerID, cmd.CustomerID())
	require.Equal(t, restaurantID, cmd.RestaurantID())
	require.Equal(t, "123 Main Street", cmd.Address())
	require.Equal(t, lines, cmd.Lines())
	require.Equal(t, "tok_visa", cmd.StripeToken())
}

func TestNewCreateOrderCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", validLines(t), "tok_visa")

	require.ErrorIs(t, err, commands.ErrAddressIsRequired)
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "123 Main Street", nil, "tok_visa")

	require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
}

func TestNewCreateOrderCommand_EmptyStripeToken(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "123 Main Street", validLines(t), "")

	require.ErrorIs(t, err, commands.ErrStripeTokenIsRequired)
}

func TestNewOrderLineInput_InvalidQuantity(t *testing.T) {
	_, err := commands.NewOrderLineInput(kernel.NewUUID(), 0)
	require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)

	_, err = commands.NewOrderLineInput(kernel.NewUUID(), -3)
	require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

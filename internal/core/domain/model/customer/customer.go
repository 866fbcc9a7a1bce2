// Package customer contains the Customer aggregate: a buyer profile that
// places orders. A customer may hold at most one non-delivered order at a
// time; that rule lives with the Order aggregate and its repository.
package customer

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

	// ErrNameIsRequired is returned when creating a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Customer is a buyer profile.
type Customer struct {
	id      kernel.UUID
	name    string
	avatar  string
	phone   string
	address string

	isConstructed bool
}

// NewCustomer creates a customer profile.
func NewCustomer(id kernel.UUID, name string, avatar string, phone string, address string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Customer{
		id:            id,
		name:          name,
		avatar:        avatar,
		phone:         phone,
		address:       address,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name string, avatar string, phone string, address string) (*Customer, error) {
	return NewCustomer(id, name, avatar, phone, address)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Avatar returns the avatar image reference.
func (c *Customer) Avatar() string {
	return c.avatar
}

// Phone returns the contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's default address.
func (c *Customer) Address() string {
	return c.address
}

// Package restaurant contains the Restaurant aggregate: a vendor profile
// created at sign-up, owning a menu of meals and receiving orders.
package restaurant

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant")

	// ErrNameIsRequired is returned when creating a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Restaurant is a vendor profile. It never gets deleted; profile fields are
// mutable through UpdateProfile.
type Restaurant struct {
	id        kernel.UUID
	name      string
	phone     string
	address   string
	logoImage string

	isConstructed bool
}

// NewRestaurant creates a restaurant profile. Only the name is mandatory.
func NewRestaurant(id kernel.UUID, name string, phone string, address string, logoImage string) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Restaurant{
		id:            id,
		name:          name,
		phone:         phone,
		address:       address,
		logoImage:     logoImage,
		isConstructed: true,
	}, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(id kernel.UUID, name string, phone string, address string, logoImage string) (*Restaurant, error) {
	return NewRestaurant(id, name, phone, address, logoImage)
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Phone returns the contact phone number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// Address returns the restaurant's street address.
func (r *Restaurant) Address() string {
	return r.address
}

// LogoImage returns the logo image reference.
func (r *Restaurant) LogoImage() string {
	return r.logoImage
}

// UpdateProfile replaces the mutable profile fields (account edit).
func (r *Restaurant) UpdateProfile(name string, phone string, address string, logoImage string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	r.name = name
	r.phone = phone
	r.address = address
	r.logoImage = logoImage
	return nil
}

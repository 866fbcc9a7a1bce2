// Package driver contains the Driver aggregate: a courier profile with the
// latest known location. Only the most recent "lat,lng" report is kept;
// location updates are last-write-wins with no history.
package driver

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

	// ErrNameIsRequired is returned when creating a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrLocationIsRequired is returned when reporting an empty location.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
)

// Driver is a courier profile.
type Driver struct {
	id      kernel.UUID
	name    string
	avatar  string
	phone   string
	address string
	// location is the latest "lat,lng" report, free text by contract
	location string

	isConstructed bool
}

// NewDriver creates a driver profile with no known location yet.
func NewDriver(id kernel.UUID, name string, avatar string, phone string, address string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Driver{
		id:            id,
		name:          name,
		avatar:        avatar,
		phone:         phone,
		address:       address,
		isConstructed: true,
	}, nil
}

// RestoreDriver reconstructs a driver from persistence, including the stored
// location.
func RestoreDriver(id kernel.UUID, name string, avatar string, phone string, address string, location string) (*Driver, error) {
	d, err := NewDriver(id, name, avatar, phone, address)
	if err != nil {
		return nil, err
	}

	d.location = location
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Avatar returns the avatar image reference.
func (d *Driver) Avatar() string {
	return d.avatar
}

// Phone returns the contact phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// Address returns the driver's home address.
func (d *Driver) Address() string {
	return d.address
}

// Location returns the latest reported "lat,lng" pair, or "" when the driver
// has never reported one.
func (d *Driver) Location() string {
	return d.location
}

// UpdateLocation overwrites the stored location unconditionally.
// No format validation beyond non-empty; last write wins.
func (d *Driver) UpdateLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	d.location = location
	return nil
}

package location

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when validating a zero-value Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("Location must be created via NewLocation")

// Location is a port or terminal identified by its UnLocode.
//
// Example:
//
//	nyc, err := location.NewLocation(kernel.MustUnLocode("USNYC"), "New York", location.NorthAmerica)
type Location struct { //nolint:recvcheck //using for validation
	unLocode kernel.UnLocode
	name     string
	region   Region
	guard    guard.ConstructorGuard
}

// NewLocation validates all fields and reports every violation at once.
func NewLocation(unLocode kernel.UnLocode, name string, region Region) (Location, error) {
	l := Location{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		l.setUnLocode(unLocode),
		l.setName(name),
		l.setRegion(region),
	); err != nil {
		return Location{}, err
	}

	return l, nil
}

// Validate checks construction and every field, so a Location read from an
// untrusted source can be re-checked.
func (l Location) Validate() error {
	if err := l.guard.Validate(ErrLocationIsNotConstructed); err != nil {
		return err
	}
	return errors.Join(l.unLocode.Validate(), l.region.Validate())
}

func (l Location) UnLocode() kernel.UnLocode {
	return l.unLocode
}

func (l Location) Name() string {
	return l.name
}

func (l Location) Region() Region {
	return l.region
}

// IsEqual compares locations by identity, i.e. by UnLocode.
func (l Location) IsEqual(other Location) bool {
	return l.unLocode.IsEqual(other.unLocode)
}

func (l Location) String() string {
	return l.unLocode.String() + " (" + l.name + ")"
}

func (l *Location) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}
	l.unLocode = unLocode
	return nil
}

func (l *Location) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	l.name = name
	return nil
}

func (l *Location) setRegion(region Region) error {
	if err := region.Validate(); err != nil {
		return err
	}
	l.region = region
	return nil
}

package cargo

import (
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when validating a zero-value Delivery.
var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery tracks the transport status of a cargo.
type Delivery struct {
	transportStatus TransportStatus
	guard           guard.ConstructorGuard
}

// NewDelivery returns the delivery of a freshly booked cargo.
func NewDelivery() Delivery {
	return Delivery{transportStatus: NotReceived, guard: guard.NewConstructorGuard()}
}

// RestoreDelivery rebuilds a delivery read from storage.
func RestoreDelivery(status TransportStatus) (Delivery, error) {
	if err := status.Validate(); err != nil {
		return Delivery{}, err
	}
	return Delivery{transportStatus: status, guard: guard.NewConstructorGuard()}, nil
}

func (d Delivery) Validate() error {
	if err := d.guard.Validate(ErrDeliveryIsNotConstructed); err != nil {
		return err
	}
	return d.transportStatus.Validate()
}

func (d Delivery) TransportStatus() TransportStatus {
	return d.transportStatus
}

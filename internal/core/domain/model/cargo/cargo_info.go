package cargo

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
)

// CargoInfo is the read model of a booked cargo used for listings.
// It is assembled by the persistence gateway and is never written back.
type CargoInfo struct {
	TrackingID      TrackingID
	Origin          kernel.UnLocode
	Destination     kernel.UnLocode
	ArrivalDeadline time.Time
	TransportStatus TransportStatus
}

func (i CargoInfo) Validate() error {
	return errors.Join(
		i.TrackingID.Validate(),
		i.Origin.Validate(),
		i.Destination.Validate(),
		i.TransportStatus.Validate(),
	)
}

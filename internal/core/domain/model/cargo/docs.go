// Package cargo provides the Cargo aggregate and the value objects embedded in it.
//
// The package includes:
//   - Cargo: the aggregate root, identified by a TrackingID
//   - RouteSpecification: origin, destination and arrival deadline of a booking
//   - Delivery / TransportStatus: where the cargo is in its transport lifecycle
//   - CargoInfo: a read-only projection used for listings
//
// Key business rules:
//   - A cargo cannot exist without a valid route specification
//   - The cargo's origin is the route specification's origin
//   - Origin and destination differ
//   - A newly booked cargo is always NOT_RECEIVED; only handling changes that
//   - The arrival deadline is set, later than the booking time, and kept in kernel.DefaultZone
package cargo

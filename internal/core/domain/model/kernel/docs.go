// Package kernel provides the shared primitives of the cargo domain model.
//
// The package includes:
//   - UUID: an identifier value object backing tracking ids and event ids
//   - UnLocode: the UN/LOCODE that identifies every location
//   - DefaultZone / InDefaultZone: the single time zone deadlines are expressed in
//
// All values are immutable and safe for concurrent use. Zero values are invalid
// and fail Validate.
package kernel

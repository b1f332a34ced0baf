package kernel

import "time"

// DefaultZone is the zone every arrival deadline is expressed in, whatever the
// zone of the process or the caller.
var DefaultZone = time.UTC

// InDefaultZone returns the same instant in DefaultZone. Sub-second precision is kept.
func InDefaultZone(t time.Time) time.Time {
	return t.In(DefaultZone)
}

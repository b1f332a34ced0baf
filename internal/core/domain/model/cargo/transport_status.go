package cargo

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// TransportStatus is where a cargo is in its transport lifecycle.
//
// Only NotReceived is a legal initial status. The transitions between the other
// statuses are driven by handling events and are not modelled here.
type TransportStatus int

const (
	NotReceived TransportStatus = iota + 1
	InPort
	OnboardCarrier
	Claimed
	Unknown
)

var transportStatusNames = map[TransportStatus]string{
	NotReceived:    "NOT_RECEIVED",
	InPort:         "IN_PORT",
	OnboardCarrier: "ONBOARD_CARRIER",
	Claimed:        "CLAIMED",
	Unknown:        "UNKNOWN",
}

// ParseTransportStatus reads the names printed by String.
func ParseTransportStatus(name string) (TransportStatus, error) {
	for s, n := range transportStatusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("transport status", fmt.Errorf("%q is not a valid transport status", name))
}

// Validate rejects the zero value and anything outside the declared set.
func (s TransportStatus) Validate() error {
	if _, ok := transportStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport status", fmt.Errorf("%d is not a valid transport status", s))
	}
	return nil
}

// ValidateInitial accepts NotReceived only.
func (s TransportStatus) ValidateInitial() error {
	if s != NotReceived {
		return errs.NewValueIsInvalidErrorWithCause(
			"transport status",
			fmt.Errorf("%s is not a valid initial status", s),
		)
	}
	return nil
}

func (s TransportStatus) String() string {
	if n, ok := transportStatusNames[s]; ok {
		return n
	}
	return "INVALID"
}

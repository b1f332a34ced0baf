package handling

import (
	"fmt"
	"strings"

	"cargo/internal/pkg/errs"
)

// EventType is the kind of handling that took place.
type EventType int

const (
	Receive EventType = iota + 1
	Load
	Unload
	Customs
	Claim
)

var eventTypeNames = map[EventType]string{
	Receive: "RECEIVE",
	Load:    "LOAD",
	Unload:  "UNLOAD",
	Customs: "CUSTOMS",
	Claim:   "CLAIM",
}

// ParseEventType accepts the names printed by String, case-insensitively.
func ParseEventType(name string) (EventType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for t, n := range eventTypeNames {
		if n == normalized {
			return t, nil
		}
	}
	return 0, errs.NewInvalidInputSpecificationErrorWithCause(
		"event type",
		fmt.Errorf("%q is not a known handling event type", name),
	)
}

func (t EventType) Validate() error {
	if _, ok := eventTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

func (t EventType) String() string {
	if n, ok := eventTypeNames[t]; ok {
		return n
	}
	return "INVALID"
}

package handling

import (
	"fmt"
	"slices"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/pkg/errs"
)

// HandlingHistory is every handling event of one cargo, ordered by completion
// time and then by registration time.
type HandlingHistory struct {
	trackingID cargo.TrackingID
	events     []HandlingEvent
}

// NewHandlingHistory sorts events and checks that all of them belong to trackingID.
// The input slice is not modified.
func NewHandlingHistory(trackingID cargo.TrackingID, events []HandlingEvent) (HandlingHistory, error) {
	if err := trackingID.Validate(); err != nil {
		return HandlingHistory{}, err
	}

	sorted := slices.Clone(events)
	for i, e := range sorted {
		if err := e.Validate(); err != nil {
			return HandlingHistory{}, err
		}
		if !e.TrackingID().IsEqual(trackingID) {
			return HandlingHistory{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("events[%d]", i),
				fmt.Errorf("event %s belongs to cargo %s, not %s", e.EventID(), e.TrackingID(), trackingID),
			)
		}
	}
	slices.SortStableFunc(sorted, compareEvents)

	return HandlingHistory{trackingID: trackingID, events: sorted}, nil
}

func (h HandlingHistory) Validate() error {
	return h.trackingID.Validate()
}

func (h HandlingHistory) TrackingID() cargo.TrackingID {
	return h.trackingID
}

// Events returns a copy of the ordered events.
func (h HandlingHistory) Events() []HandlingEvent {
	return slices.Clone(h.events)
}

// MostRecentlyCompleted returns the last event, if any.
func (h HandlingHistory) MostRecentlyCompleted() (HandlingEvent, bool) {
	if len(h.events) == 0 {
		return HandlingEvent{}, false
	}
	return h.events[len(h.events)-1], true
}

func compareEvents(a, b HandlingEvent) int {
	if c := a.completedAt.Compare(b.completedAt); c != 0 {
		return c
	}
	return a.registeredAt.Compare(b.registeredAt)
}

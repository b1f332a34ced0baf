package report

import (
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// ExpectedArrivals counts the booked cargoes bound for one destination.
type ExpectedArrivals struct {
	City            kernel.UnLocode
	NumberOfCargoes int
}

func NewExpectedArrivals(city kernel.UnLocode, numberOfCargoes int) (ExpectedArrivals, error) {
	a := ExpectedArrivals{City: city, NumberOfCargoes: numberOfCargoes}
	if err := a.Validate(); err != nil {
		return ExpectedArrivals{}, err
	}
	return a, nil
}

func (a ExpectedArrivals) Validate() error {
	if err := a.City.Validate(); err != nil {
		return err
	}
	if a.NumberOfCargoes < 1 {
		return errs.NewValueIsOutOfRangeError("number of cargoes", a.NumberOfCargoes, 1, "unbounded")
	}
	return nil
}

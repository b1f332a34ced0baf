package errs

import "errors"

// Kind is the coarse classification presenters use to render an error.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindInvalidInput
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindPersistence:
		return "persistence"
	default:
		return "unexpected"
	}
}

// KindOf classifies err. Input specification errors win over everything else,
// followed by not-found, persistence and validation failures. A nil error and
// anything unrecognised are KindUnexpected.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnexpected
	case errors.Is(err, ErrInvalidInputSpecification):
		return KindInvalidInput
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrPersistence), errors.Is(err, ErrNoTransaction):
		return KindPersistence
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	default:
		return KindUnexpected
	}
}

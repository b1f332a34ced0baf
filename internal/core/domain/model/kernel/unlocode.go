package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrUnLocodeIsNotConstructed is returned when validating a zero-value UnLocode.
var ErrUnLocodeIsNotConstructed = errs.NewValueIsRequiredError("UnLocode must be created via NewUnLocode")

// unLocodePattern is a two-letter country code followed by three characters
// from A-Z and 2-9, as issued by UNECE.
var unLocodePattern = regexp.MustCompile(`^[A-Z]{2}[A-Z2-9]{3}$`)

// UnLocode identifies a location. Two UnLocodes are equal when their codes are equal,
// so the type can be used directly as a map key.
//
// Example:
//
//	code, err := kernel.NewUnLocode("usnyc")
//	// code.String() == "USNYC"
type UnLocode struct {
	code  string
	guard guard.ConstructorGuard
}

// NewUnLocode trims and upper-cases code before checking its format.
func NewUnLocode(code string) (UnLocode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return UnLocode{}, errs.NewValueIsRequiredError("UN/LOCODE")
	}
	if !unLocodePattern.MatchString(normalized) {
		return UnLocode{}, errs.NewValueIsInvalidErrorWithCause(
			"UN/LOCODE",
			fmt.Errorf("%q is not a valid UN/LOCODE", code),
		)
	}

	return UnLocode{code: normalized, guard: guard.NewConstructorGuard()}, nil
}

// MustUnLocode is NewUnLocode for compile-time constants; it panics on bad input.
func MustUnLocode(code string) UnLocode {
	l, err := NewUnLocode(code)
	if err != nil {
		panic(err)
	}
	return l
}

func (l UnLocode) Validate() error {
	return l.guard.Validate(ErrUnLocodeIsNotConstructed)
}

func (l UnLocode) String() string {
	return l.code
}

func (l UnLocode) IsEqual(other UnLocode) bool {
	return l.code == other.code
}

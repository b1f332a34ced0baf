// Package validator is the gate every value passes when it crosses from a
// gateway read or a client request into domain logic.
//
// Validation is a pass-through: One, All and NonEmpty return their input
// unchanged on success so they can be chained inline with construction.
//
// Example:
//
//	origin, err := validator.One(v, gatewayOrigin)
//	if err != nil {
//	    return err
//	}
//
// Rules are applied in order:
//  1. the value is present (non-nil), via go-playground "required"
//  2. struct tags of exported fields (request DTOs), via go-playground
//  3. the object's own invariants, via its Validate() error method
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cargo/internal/pkg/errs"

	playground "github.com/go-playground/validator/v10"
)

const ruleInvariant = "invariant"

type invariantChecker interface {
	Validate() error
}

// Validator wraps a go-playground validator. It is safe for concurrent use.
type Validator struct {
	validate *playground.Validate
}

func New() *Validator {
	v := playground.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate checks x and returns a *errs.ValidationError naming the object and
// the violated rule. It satisfies echo.Validator.
func (v *Validator) Validate(x any) error {
	return v.validateAs(x, objectName(x))
}

// One validates x and returns it unchanged.
func One[T any](v *Validator, x T) (T, error) {
	if err := v.Validate(x); err != nil {
		var zero T
		return zero, err
	}
	return x, nil
}

// All validates every element and returns xs itself, in the same order.
// An empty list is valid.
func All[T any](v *Validator, xs []T) ([]T, error) {
	for i, x := range xs {
		if err := v.validateAs(x, fmt.Sprintf("%T[%d]", xs, i)); err != nil {
			return nil, err
		}
	}
	return xs, nil
}

// NonEmpty is All for lists that must hold at least one element.
func NonEmpty[T any](v *Validator, xs []T) ([]T, error) {
	if err := v.validate.Var(xs, "required,min=1"); err != nil {
		return nil, translate(fmt.Sprintf("%T", xs), err)
	}
	return All(v, xs)
}

func (v *Validator) validateAs(x any, object string) error {
	if err := v.validate.Var(x, "required"); err != nil {
		return translate(object, err)
	}

	if checker, ok := x.(invariantChecker); ok {
		if err := checker.Validate(); err != nil {
			return errs.NewValidationErrorWithCause(object, ruleInvariant, err)
		}
	}

	return nil
}

func translate(object string, err error) error {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewValidationErrorWithCause(object, "unknown", err)
	}

	fe := fieldErrs[0]
	if fe.Field() != "" {
		object += "." + fe.Field()
	}
	return errs.NewValidationErrorWithCause(object, fe.Tag(), err)
}

func objectName(x any) string {
	if x == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", x)
}

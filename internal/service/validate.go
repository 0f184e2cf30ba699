package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/trip-registry/internal/domain"
)

var (
	// local part alnum 1-16, domain lowercase alnum 2-16, tld lowercase 2-8.
	emailPattern     = regexp.MustCompile(`^[0-9a-zA-Z]{1,16}@[0-9a-z]{2,16}\.[a-z]{2,8}$`)
	telephonePattern = regexp.MustCompile(`^\+\d{7,15}$`)
	peselPattern     = regexp.MustCompile(`^\d{11}$`)
)

// newValidator returns a validator that knows the client field rules and
// reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	for tag, re := range map[string]*regexp.Regexp{
		"client_email": emailPattern,
		"telephone":    telephonePattern,
		"pesel":        peselPattern,
	} {
		// Registration only fails on an empty tag or nil func.
		_ = v.RegisterValidation(tag, matches(re))
	}
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// validateStruct runs v over s and folds any field errors into a single
// domain.ErrValidation so handlers can map it with errors.Is.
// e.g. "validation error: email must look like name@domain.tld; pesel must be exactly 11 digits"
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+" "+validationMessage(fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + param + " characters"
	case "max":
		return "must be at most " + param + " characters"
	case "client_email":
		return "must look like name@domain.tld"
	case "telephone":
		return "must be + followed by 7 to 15 digits"
	case "pesel":
		return "must be exactly 11 digits"
	default:
		return "failed " + rule + " validation"
	}
}

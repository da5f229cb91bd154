package leadform

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"hersalon/pkg/types"

	"github.com/go-playground/validator/v10"
)

// Field names one input of the application form.
type Field string

const (
	FieldFullName  Field = "fullName"
	FieldPhone     Field = "phone"
	FieldEmail     Field = "email"
	FieldCanAttend Field = "canAttend"
)

// Deliberately loose: something@something.something once trimmed.
var looseEmailReg = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("trimmed_min", trimmedMin)
	_ = v.RegisterValidation("loose_email", looseEmail)
	return v
}

// trimmedMin counts characters, not bytes, after trimming surrounding space.
func trimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

func looseEmail(fl validator.FieldLevel) bool {
	return looseEmailReg.MatchString(strings.TrimSpace(fl.Field().String()))
}

// CanSubmit reports whether req may be sent given the current status.
// It is pure: the same inputs always give the same answer.
func CanSubmit(req types.ApplicationRequest, status types.SubmissionStatus) bool {
	if status == types.SubmissionSending {
		return false
	}
	return validate.Struct(req) == nil
}

// Problems lists the fields of req that fail validation, in form order.
func Problems(req types.ApplicationRequest) []Field {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Field{FieldFullName, FieldPhone, FieldEmail, FieldCanAttend}
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}

	out := make([]Field, 0, len(failed))
	for _, f := range []struct {
		name  string
		field Field
	}{
		{"FullName", FieldFullName},
		{"Phone", FieldPhone},
		{"Email", FieldEmail},
		{"CanAttend", FieldCanAttend},
	} {
		if failed[f.name] {
			out = append(out, f.field)
		}
	}

	return out
}

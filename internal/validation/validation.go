// Package validation checks request payloads against their `validate` tags
// and reports every failing field at once.
package validation

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// ErrInvalid matches any *Errors via errors.Is.
var ErrInvalid = errors.New("validation failed")

// FieldError describes one failing rule. Field is the JSON name.
// Rule is the tag that failed; length rules on strings are reported
// as "min_len"/"max_len" so they can be phrased differently from numeric bounds.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+" ("+f.Rule+")")
	}
	return ErrInvalid.Error() + ": " + strings.Join(names, ", ")
}

func (e *Errors) Is(target error) bool { return target == ErrInvalid }

// Money columns are decimal(12,2).
const moneyScale = 2

var moneyLimit = decimal.New(1, 10)

type updateKey struct{}

func isUpdate(ctx context.Context) bool {
	v, _ := ctx.Value(updateKey{}).(bool)
	return v
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for empty tags
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidationCtx("notblank_on_create", func(ctx context.Context, fl validator.FieldLevel) bool {
		return isUpdate(ctx) || validators.NotBlank(fl)
	})
	_ = v.RegisterValidation("money", money)
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return &Validator{v: v}
}

// Create validates every rule on s.
func (v *Validator) Create(s any) error {
	return convert(v.v.StructCtx(context.Background(), s))
}

// Update validates s like Create, except that a blank password is accepted
// and means "keep the current one".
func (v *Validator) Update(s any) error {
	return convert(v.v.StructCtx(context.WithValue(context.Background(), updateKey{}, true), s))
}

// money accepts decimals with at most two fractional digits whose magnitude
// fits decimal(12,2). The field value seen by validator is the float64 from
// the custom type func, so the decimal is read back from the parent struct.
func money(fl validator.FieldLevel) bool {
	f := fl.Parent().FieldByName(fl.StructFieldName())
	for f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return true
		}
		f = f.Elem()
	}
	d, ok := f.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.Equal(d.Truncate(moneyScale)) && d.Abs().LessThan(moneyLimit)
}

func convert(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Errors{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		rule := fe.Tag()
		switch {
		case rule == "notblank_on_create":
			rule = "notblank"
		case fe.Kind() == reflect.String && (rule == "min" || rule == "max"):
			rule += "_len"
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: rule, Param: fe.Param()})
	}
	return out
}

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request models by their validate tags.
type RequestValidator struct {
	validate *validator.Validate
	language Language
}

// NewRequestValidator constructs a [Validator] reporting messages in lang.
func NewRequestValidator(lang Language) Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// registering a static validation function cannot fail
	_ = v.RegisterValidation("notblank", notBlank)

	return &RequestValidator{validate: v, language: lang}
}

// Validate checks obj, a struct or a pointer to one. When fields are given
// only those struct fields (Go names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return v.translate(err)
}

func (v *RequestValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var failed validator.ValidationErrors
	if !errors.As(err, &failed) {
		return err
	}

	out := make(ValidationErrors, 0, len(failed))
	for _, fe := range failed {
		out = append(out, ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: message(v.language, fe.Field(), fe.Tag(), fe.Param()),
		})
	}

	return out
}

// fieldPath drops the struct name from a namespace like
// "CapsuleRequest.receiverEmails[1]".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

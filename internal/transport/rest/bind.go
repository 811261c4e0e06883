package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

var (
	validatorOnce sync.Once
	reqValidator  *requestValidator
)

func getValidator() *requestValidator {
	validatorOnce.Do(func() {
		locale := en.New()
		trans, _ := ut.New(locale, locale).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		// Report json field names, not Go field names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = entranslations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "required", "{0} is required")
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		reqValidator = &requestValidator{validate: v, trans: trans}
	})
	return reqValidator
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// decodeJSON reads a JSON body into T and runs struct validation. Failures
// come back as *domain.ValidationError.
func decodeJSON[T any](r *http.Request) (T, error) {
	var dst T

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dst, domain.NewValidationError("body", "request body is required")
		}
		return dst, domain.NewValidationError("body", "invalid JSON")
	}
	if dec.More() {
		return dst, domain.NewValidationError("body", "unexpected trailing data")
	}

	rv := getValidator()
	if err := rv.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return dst, err
		}
		fields := make([]domain.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fe.Translate(rv.trans)})
		}
		return dst, domain.NewValidationErrors(fields)
	}
	return dst, nil
}

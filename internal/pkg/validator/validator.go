package validator

import (
	"errors"
	"regexp"

	"github.com/MirrorChyan/macdl/internal/pkg/errs"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

var (
	slugRegexp = regexp.MustCompile("^[a-zA-Z0-9_-]+$")
)

var (
	uni   = ut.New(en.New())
	trans ut.Translator
)

func init() {
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, trans)

	_ = Validate.RegisterTranslation("slug", trans, func(ut ut.Translator) error {
		return ut.Add("slug", "{0} must be alphanumeric, underscore, or hyphen", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("slug", fe.Field())
		return t
	})
}

var Validate = New()

func New() *validator.Validate {

	validate := validator.New()

	_ = validate.RegisterValidation("slug", slug)

	return validate
}

func slug(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return slugRegexp.MatchString(val)
}

type ValidationError struct {
	Field     string `json:"field"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func convertValidationErrors(ves validator.ValidationErrors) []*ValidationError {

	list := make([]*ValidationError, 0, len(ves))

	for _, fe := range ves {

		list = append(list, &ValidationError{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   fe.Translate(trans),
		})
	}

	return list
}

// ValidateQuery binds the query string into dest and checks its validate tags.
func ValidateQuery(c *fiber.Ctx, dest any) error {

	if err := c.QueryParser(dest); err != nil {
		return errs.ErrInvalidParams.Wrap(err)
	}

	return Struct(dest)
}

func Struct(dest any) error {

	err := Validate.Struct(dest)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return errs.ErrInvalidParams.Wrap(err)
	}

	return errs.ErrInvalidParams.WithDetails(fiber.Map{
		"violations": convertValidationErrors(ves),
	})
}

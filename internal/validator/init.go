package validator

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Init registers the custom rules on gin's binding validator. It is safe to
// call more than once.
func Init() *validator.Validate {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New(validator.WithRequiredStructEnabled())
		}

		v.RegisterTagNameFunc(jsonTagName)
		if err := v.RegisterValidation("nospace", noSpace); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// jsonTagName reports fields by their JSON name in validation errors.
func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func noSpace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

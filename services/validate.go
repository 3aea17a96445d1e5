package services

import (
	"errors"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// 필드 이름은 field 태그, 없으면 JSON 이름 (nombre, rolId ...) 으로 보고한다.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("field"); name != "" {
			return name
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("uploadtarget", func(fl validator.FieldLevel) bool {
		return IsUploadTarget(fl.Field().String())
	})
	_ = validate.RegisterValidation("uploadext", func(fl validator.FieldLevel) bool {
		ext := strings.ToLower(filepath.Ext(fl.Field().String()))
		return slices.Contains(uploadExtensions, ext)
	})
}

// fieldMessages maps "field.tag" (or just "field") to the message shown under the input.
type fieldMessages map[string]string

func (m fieldMessages) lookup(fe validator.FieldError) string {
	if msg, ok := m[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := m[fe.Field()]; ok {
		return msg
	}
	return "Valor no válido"
}

// checkStruct 구조체 태그 검증 결과를 필드별 메시지로 바꾼다. 통과하면 빈 맵.
func checkStruct(s interface{}, messages fieldMessages) ValidationErrors {
	errs := ValidationErrors{}
	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.add("form", "Datos no válidos")
		return errs
	}
	for _, fe := range fieldErrs {
		errs.add(fe.Field(), messages.lookup(fe))
	}
	return errs
}

package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ValidationError ошибка одного поля запроса
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors все ошибки валидации запроса
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей из json-тегов
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
		_, err := types.NewTimeStringFromString(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.DateFormat, fl.Field().String())
		return err == nil
	})
	mustRegister(v, "day_of_week", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDayOfWeek(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "booking_status", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseBookingStatus(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Validate проверяет структуру по validate-тегам
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	result := make(ValidationErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		result = append(result, ValidationError{Field: fe.Field(), Message: message(fe)})
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "uuid":
		return "ожидается UUID"
	case "hhmm":
		return "ожидается время в формате HH:MM"
	case "date":
		return "ожидается дата в формате YYYY-MM-DD"
	case "day_of_week":
		return "ожидается день недели (MONDAY..SUNDAY)"
	case "booking_status":
		return "неизвестный статус бронирования"
	case "max":
		return fmt.Sprintf("не длиннее %s символов", fe.Param())
	default:
		return fe.Error()
	}
}

package utils

import (
	"regexp"
	"sefasevim-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("booking_date", validateBookingDate)
	validate.RegisterValidation("slot_label", validateSlotLabel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexTurkeyPhoneNumber)
	return re.MatchString(fl.Field().String())
}

func validateBookingDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(value) {
		return false
	}
	_, err := time.ParseInLocation(constvars.DateLayoutYYYYMMDD, value, time.Local)
	return err == nil
}

func validateSlotLabel(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexSlotLabel).MatchString(fl.Field().String())
}

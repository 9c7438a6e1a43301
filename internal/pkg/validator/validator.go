package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func oneOfValidation(valid ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if v == "" {
			return true
		}
		for _, s := range valid {
			if v == s {
				return true
			}
		}
		return false
	}
}

func registerCustomValidations() {
	validate.RegisterValidation("gender", oneOfValidation("Male", "Female", "Other"))
	validate.RegisterValidation("looking_for", oneOfValidation("Casual", "Friendship", "Relationship"))
	validate.RegisterValidation("exercise_level", oneOfValidation("None", "Light", "Moderate", "Heavy"))
	validate.RegisterValidation("habit_frequency", oneOfValidation("Never", "Occasionally", "Regularly"))
	validate.RegisterValidation("settle_down", oneOfValidation("0-6", "6-12", "12-24", "24+"))
	validate.RegisterValidation("pronoun", oneOfValidation("He/Him", "She/Her", "They/Them", "Other"))
	validate.RegisterValidation("star_sign", oneOfValidation(
		"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
		"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces"))
	validate.RegisterValidation("education_level", oneOfValidation(
		"High School", "Undergraduate", "Graduate", "Postgraduate"))
	validate.RegisterValidation("gender_preference", oneOfValidation("Male", "Female", "Both"))
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "gender":
			errors[field] = "Invalid gender. Must be: Male, Female, or Other"
		case "gender_preference":
			errors[field] = "Invalid gender preference. Must be: Male, Female, or Both"
		case "looking_for":
			errors[field] = "Invalid value. Must be: Casual, Friendship, or Relationship"
		case "exercise_level":
			errors[field] = "Invalid exercise level. Must be: None, Light, Moderate, or Heavy"
		case "habit_frequency":
			errors[field] = "Invalid value. Must be: Never, Occasionally, or Regularly"
		case "settle_down":
			errors[field] = "Invalid value. Must be: 0-6, 6-12, 12-24, or 24+"
		case "pronoun":
			errors[field] = "Invalid pronoun. Must be: He/Him, She/Her, They/Them, or Other"
		case "star_sign":
			errors[field] = "Invalid star sign"
		case "education_level":
			errors[field] = "Invalid education level"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

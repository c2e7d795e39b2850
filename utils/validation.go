package utils

import (
	"CareLink/models"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrPasswordsDontMatch = errors.New("passwords don't match")
	ErrInvalidPhone       = errors.New("phone number must be entered in the format: '+999999999', up to 15 digits allowed")
)

var phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// RegistrationInput is the payload accepted by the register endpoint.
type RegistrationInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// ValidateRegistration checks the registration payload, including the
// password confirmation and strength policy.
func ValidateRegistration(input RegistrationInput) error {
	err := validation.Errors{
		"name":     validation.Validate(input.Name, validation.Required, validation.Length(1, 255)),
		"email":    validation.Validate(input.Email, validation.Required, is.EmailFormat),
		"password": validation.Validate(input.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	}.Filter()
	if err != nil {
		return err
	}
	if input.Password != input.PasswordConfirm {
		return validation.Errors{"password_confirm": ErrPasswordsDontMatch}.Filter()
	}
	return nil
}

// ValidatePatient runs the patient field pipeline. Phone is optional,
// medical history may be blank.
func ValidatePatient(patient *models.Patient) error {
	return validation.ValidateStruct(patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&patient.Email, validation.Required, is.EmailFormat),
		validation.Field(&patient.Phone, validation.By(validatePhone(false))),
		validation.Field(&patient.Address, validation.Required),
		validation.Field(&patient.DateOfBirth, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&patient.Gender, validation.Required, validation.In(models.GenderChoices...)),
	)
}

// ValidateDoctor runs the doctor field pipeline: fixed specialization set,
// experience capped at 50 years, strictly positive fee.
func ValidateDoctor(doctor *models.Doctor) error {
	return validation.ValidateStruct(doctor,
		validation.Field(&doctor.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&doctor.Email, validation.Required, is.EmailFormat),
		validation.Field(&doctor.Phone, validation.Required, validation.By(validatePhone(true))),
		validation.Field(&doctor.Specialization, validation.Required, validation.In(models.SpecializationChoices...)),
		validation.Field(&doctor.YearsOfExperience, validation.Max(uint(50)).Error("years of experience seems too high")),
		validation.Field(&doctor.Qualification, validation.Required, validation.Length(1, 255)),
		validation.Field(&doctor.ConsultationFee, validation.Required.Error("consultation fee must be positive"), validation.Min(0.01).Error("consultation fee must be positive")),
	)
}

// ValidatePasswordChange validates the reset code and new password.
func ValidatePasswordChange(resetCode, newPassword string) error {
	return validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
}

// validatePhone builds a phone rule; blank values pass unless required.
func validatePhone(required bool) validation.RuleFunc {
	return func(value interface{}) error {
		phone, _ := value.(string)
		if phone == "" {
			if required {
				return validation.ErrRequired
			}
			return nil
		}
		if !phoneRegex.MatchString(phone) {
			return ErrInvalidPhone
		}
		return nil
	}
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}

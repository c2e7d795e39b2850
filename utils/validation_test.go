package utils

import (
	"CareLink/models"
	"testing"
)

func TestPhoneFormat(t *testing.T) {
	valid := []string{"+12125551234", "12125551234", "+999999999", "123456789", "+1123456789012345"}
	invalid := []string{"12345678", "letters", "+12 125 551", "++12125551234", "99999999999999999"}

	for _, phone := range valid {
		if !phoneRegex.MatchString(phone) {
			t.Errorf("%q should be accepted", phone)
		}
	}
	for _, phone := range invalid {
		if phoneRegex.MatchString(phone) {
			t.Errorf("%q should be rejected", phone)
		}
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	cases := []struct {
		password string
		wantErr  error
	}{
		{"Str0ng@Pass", nil},
		{"Ab1@xyz", ErrPasswordTooShort},
		{"alllowercase1@", ErrPasswordNotComplex},
		{"ALLUPPERCASE1@", ErrPasswordNotComplex},
		{"NoDigitsHere@", ErrPasswordNotComplex},
		{"NoSpecials123", ErrPasswordNotComplex},
	}

	for _, c := range cases {
		err := validatePassword(c.password)
		if err != c.wantErr {
			t.Errorf("validatePassword(%q) = %v, want %v", c.password, err, c.wantErr)
		}
	}
}

func TestEmailAcceptsShortHostnames(t *testing.T) {
	// Syntax-only email validation; single-label second-level domains like
	// x.com are legal addresses and must not be rejected.
	for _, email := range []string{"a@x.com", "p@x.com", "doc@x.com", "jane.roe@example.com"} {
		patient := &models.Patient{
			Name:        "Jane Roe",
			Email:       email,
			Address:     "12 Main Street",
			DateOfBirth: "1990-01-15",
			Gender:      "female",
		}
		if err := ValidatePatient(patient); err != nil {
			t.Errorf("patient email %q rejected: %v", email, err)
		}

		input := RegistrationInput{
			Name:            "Alice",
			Email:           email,
			Password:        "Str0ng@Pass",
			PasswordConfirm: "Str0ng@Pass",
		}
		if err := ValidateRegistration(input); err != nil {
			t.Errorf("registration email %q rejected: %v", email, err)
		}
	}

	doctor := &models.Doctor{
		Name:              "Gregory House",
		Email:             "doc@x.com",
		Phone:             "+12125556789",
		Specialization:    "CARDIOLOGY",
		YearsOfExperience: 12,
		Qualification:     "MD",
		ConsultationFee:   45.50,
	}
	if err := ValidateDoctor(doctor); err != nil {
		t.Errorf("doctor email doc@x.com rejected: %v", err)
	}
}

func TestValidateRegistration(t *testing.T) {
	base := RegistrationInput{
		Name:            "Alice",
		Email:           "a@x.com",
		Password:        "Str0ng@Pass",
		PasswordConfirm: "Str0ng@Pass",
	}
	if err := ValidateRegistration(base); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	mismatched := base
	mismatched.PasswordConfirm = "Other@Pass1"
	if err := ValidateRegistration(mismatched); err == nil {
		t.Error("mismatched confirmation accepted")
	}

	badEmail := base
	badEmail.Email = "not-an-email"
	if err := ValidateRegistration(badEmail); err == nil {
		t.Error("invalid email accepted")
	}

	blankName := base
	blankName.Name = ""
	if err := ValidateRegistration(blankName); err == nil {
		t.Error("blank name accepted")
	}
}

func TestValidateDoctorBounds(t *testing.T) {
	doctor := func() *models.Doctor {
		return &models.Doctor{
			Name:              "Gregory House",
			Email:             "doc@x.com",
			Phone:             "+12125556789",
			Specialization:    "NEUROLOGY",
			YearsOfExperience: 50,
			Qualification:     "MD",
			ConsultationFee:   0.01,
		}
	}

	if err := ValidateDoctor(doctor()); err != nil {
		t.Errorf("boundary values rejected: %v", err)
	}

	tooExperienced := doctor()
	tooExperienced.YearsOfExperience = 51
	if err := ValidateDoctor(tooExperienced); err == nil {
		t.Error("experience over 50 accepted")
	}

	freeConsult := doctor()
	freeConsult.ConsultationFee = 0
	if err := ValidateDoctor(freeConsult); err == nil {
		t.Error("zero fee accepted")
	}

	noPhone := doctor()
	noPhone.Phone = ""
	if err := ValidateDoctor(noPhone); err == nil {
		t.Error("blank doctor phone accepted")
	}
}

func TestValidatePatientOptionalFields(t *testing.T) {
	patient := &models.Patient{
		Name:        "Jane Roe",
		Email:       "p@x.com",
		Address:     "12 Main Street",
		DateOfBirth: "1990-01-15",
		Gender:      "other",
	}
	// Phone and medical history may both be blank.
	if err := ValidatePatient(patient); err != nil {
		t.Errorf("minimal patient rejected: %v", err)
	}

	patient.DateOfBirth = "1990-13-40"
	if err := ValidatePatient(patient); err == nil {
		t.Error("impossible date accepted")
	}
}

package models

import (
	"time"
)

// Gender values accepted for patients.
var GenderChoices = []interface{}{"male", "female", "other"}

// SpecializationChoices is the fixed set of medical fields a doctor can
// register under.
var SpecializationChoices = []interface{}{
	"CARDIOLOGY",
	"DERMATOLOGY",
	"ENDOCRINOLOGY",
	"GASTROENTEROLOGY",
	"GENERAL_MEDICINE",
	"GYNECOLOGY",
	"NEUROLOGY",
	"ONCOLOGY",
	"ORTHOPEDICS",
	"PEDIATRICS",
	"PSYCHIATRY",
	"RADIOLOGY",
	"SURGERY",
	"UROLOGY",
}

// Patient model. Patients are private to the account that created them;
// the email is unique per owner, not globally.
type Patient struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name           string    `gorm:"size:255;not null;column:name" json:"name"`
	Email          string    `gorm:"size:255;not null;column:email;uniqueIndex:idx_patient_owner_email" json:"email"`
	Phone          string    `gorm:"size:17;column:phone" json:"phone"`
	Address        string    `gorm:"type:text;not null;column:address" json:"address"`
	DateOfBirth    string    `gorm:"size:10;not null;column:date_of_birth" json:"date_of_birth"`
	Gender         string    `gorm:"size:10;not null;column:gender;check:gender IN ('male', 'female', 'other')" json:"gender"`
	MedicalHistory string    `gorm:"type:text;column:medical_history" json:"medical_history"`
	CreatedByID    int64     `gorm:"not null;index;column:created_by_id;uniqueIndex:idx_patient_owner_email" json:"created_by"`
	CreatedAt      time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`

	CreatedBy Account `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

// Doctor model. Doctors form a shared pool: anyone authenticated can list
// and read them, but only the creating account may modify or delete one.
// The email is unique across all doctors.
type Doctor struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name                string    `gorm:"size:255;not null;column:name" json:"name"`
	Email               string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Phone               string    `gorm:"size:17;not null;column:phone" json:"phone"`
	Specialization      string    `gorm:"size:50;not null;column:specialization" json:"specialization"`
	YearsOfExperience   uint      `gorm:"not null;column:years_of_experience" json:"years_of_experience"`
	Qualification       string    `gorm:"size:255;not null;column:qualification" json:"qualification"`
	HospitalAffiliation string    `gorm:"size:255;column:hospital_affiliation" json:"hospital_affiliation"`
	ConsultationFee     float64   `gorm:"type:numeric(10,2);not null;column:consultation_fee" json:"consultation_fee"`
	CreatedByID         int64     `gorm:"not null;index;column:created_by_id" json:"created_by"`
	CreatedAt           time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`

	CreatedBy Account `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// PatientDoctorMapping links one patient to one doctor. The (patient, doctor)
// pair is unique regardless of the active flag; removing an assignment only
// flips is_active, and assigning the same pair again reactivates the
// existing row instead of inserting a duplicate.
type PatientDoctorMapping struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID    uint      `gorm:"not null;index;column:patient_id;uniqueIndex:idx_mapping_patient_doctor" json:"patient"`
	DoctorID     uint      `gorm:"not null;index;column:doctor_id;uniqueIndex:idx_mapping_patient_doctor" json:"doctor"`
	AssignedDate time.Time `gorm:"autoCreateTime;column:assigned_date" json:"assigned_date"`
	Notes        string    `gorm:"type:text;column:notes" json:"notes"`
	IsActive     bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedByID  int64     `gorm:"not null;index;column:created_by_id" json:"created_by"`

	Patient   Patient `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"patient_detail,omitempty"`
	Doctor    Doctor  `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE" json:"doctor_detail,omitempty"`
	CreatedBy Account `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PatientDoctorMapping) TableName() string {
	return "patient_doctor_mappings"
}

// MappingDetail is the assign response shape: the mapping plus denormalized
// patient and doctor display fields.
type MappingDetail struct {
	ID                   uint      `json:"id"`
	PatientID            uint      `json:"patient"`
	DoctorID             uint      `json:"doctor"`
	AssignedDate         time.Time `json:"assigned_date"`
	Notes                string    `json:"notes"`
	IsActive             bool      `json:"is_active"`
	CreatedByID          int64     `json:"created_by"`
	PatientName          string    `json:"patient_name"`
	PatientEmail         string    `json:"patient_email"`
	DoctorName           string    `json:"doctor_name"`
	DoctorSpecialization string    `json:"doctor_specialization"`
}

// ToDetail flattens a mapping with preloaded patient and doctor rows.
func (m *PatientDoctorMapping) ToDetail() MappingDetail {
	return MappingDetail{
		ID:                   m.ID,
		PatientID:            m.PatientID,
		DoctorID:             m.DoctorID,
		AssignedDate:         m.AssignedDate,
		Notes:                m.Notes,
		IsActive:             m.IsActive,
		CreatedByID:          m.CreatedByID,
		PatientName:          m.Patient.Name,
		PatientEmail:         m.Patient.Email,
		DoctorName:           m.Doctor.Name,
		DoctorSpecialization: m.Doctor.Specialization,
	}
}

// PatientSummary is the compact patient shape attached to the per-patient
// mapping listing.
type PatientSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (p *Patient) Summary() PatientSummary {
	return PatientSummary{ID: p.ID, Name: p.Name, Email: p.Email}
}

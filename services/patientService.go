package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"CareLink/utils"
	"context"
)

// PatientService owns the per-account patient registry. Every operation
// takes the caller's account id explicitly; rows owned by other accounts
// are reported as not found, never as forbidden.
type PatientService interface {
	List(ctx context.Context, ownerID int64) ([]models.Patient, error)
	Create(ctx context.Context, ownerID int64, patient *models.Patient) error
	Get(ctx context.Context, ownerID int64, patientID uint) (*models.Patient, error)
	Update(ctx context.Context, ownerID int64, patient *models.Patient) error
	Delete(ctx context.Context, ownerID int64, patientID uint) error
}

type patientService struct {
	patientRepo repositories.PatientRepository
}

func NewPatientService(patientRepo repositories.PatientRepository) PatientService {
	return &patientService{patientRepo: patientRepo}
}

func (s *patientService) List(ctx context.Context, ownerID int64) ([]models.Patient, error) {
	return s.patientRepo.ListByOwner(ctx, ownerID)
}

func (s *patientService) Create(ctx context.Context, ownerID int64, patient *models.Patient) error {
	if err := utils.ValidatePatient(patient); err != nil {
		return utils.ValidationDetails("Patient validation failed", err)
	}

	// Email uniqueness is scoped to the owner; another account may hold a
	// patient with the same email.
	if exists, err := s.patientRepo.EmailExistsForOwner(ctx, patient.Email, ownerID, 0); err != nil {
		return err
	} else if exists {
		return utils.ValidationError("A patient with this email already exists.")
	}

	patient.CreatedByID = ownerID
	return s.patientRepo.Create(ctx, patient)
}

func (s *patientService) Get(ctx context.Context, ownerID int64, patientID uint) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByIDForOwner(ctx, patientID, ownerID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NotFoundError("Patient not found")
	}
	return patient, nil
}

// Update re-validates the scoped email rule excluding the row itself. The
// caller must have loaded the row through Get, so ownership is re-checked
// here against the stored owner.
func (s *patientService) Update(ctx context.Context, ownerID int64, patient *models.Patient) error {
	existing, err := s.patientRepo.GetByIDForOwner(ctx, patient.ID, ownerID)
	if err != nil {
		return err
	}
	if existing == nil {
		return utils.NotFoundError("Patient not found")
	}

	if err := utils.ValidatePatient(patient); err != nil {
		return utils.ValidationDetails("Patient validation failed", err)
	}

	if exists, err := s.patientRepo.EmailExistsForOwner(ctx, patient.Email, ownerID, patient.ID); err != nil {
		return err
	} else if exists {
		return utils.ValidationError("A patient with this email already exists.")
	}

	patient.CreatedByID = ownerID
	return s.patientRepo.Update(ctx, patient)
}

func (s *patientService) Delete(ctx context.Context, ownerID int64, patientID uint) error {
	deleted, err := s.patientRepo.Delete(ctx, patientID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFoundError("Patient not found")
	}
	return nil
}

package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"CareLink/utils"
	"context"
	"fmt"
)

// MappingService owns the assignment ledger. Assignments reference a
// patient the caller owns and any doctor from the shared pool; the
// (patient, doctor) pair stays unique for the lifetime of both rows.
type MappingService interface {
	Assign(ctx context.Context, ownerID int64, patientID, doctorID uint, notes string) (*models.MappingDetail, error)
	ListMine(ctx context.Context, ownerID int64) ([]models.PatientDoctorMapping, error)
	ListForPatient(ctx context.Context, ownerID int64, patientID uint) (*models.PatientSummary, []models.PatientDoctorMapping, error)
	Deactivate(ctx context.Context, ownerID int64, mappingID uint) error
}

type mappingService struct {
	mappingRepo repositories.MappingRepository
	patientRepo repositories.PatientRepository
	doctorRepo  repositories.DoctorRepository
}

func NewMappingService(
	mappingRepo repositories.MappingRepository,
	patientRepo repositories.PatientRepository,
	doctorRepo repositories.DoctorRepository,
) MappingService {
	return &mappingService{
		mappingRepo: mappingRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

// Assign links a doctor to one of the caller's patients. A pair that was
// previously deactivated is reactivated in place rather than re-inserted,
// so the unconditional uniqueness constraint never blocks a reassignment.
func (s *mappingService) Assign(ctx context.Context, ownerID int64, patientID, doctorID uint, notes string) (*models.MappingDetail, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.ValidationError("Patient does not exist.")
	}
	if patient.CreatedByID != ownerID {
		return nil, utils.ValidationError("You can only assign doctors to your own patients.")
	}

	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.ValidationError("Doctor does not exist.")
	}

	exists, err := s.mappingRepo.ActiveExists(ctx, patientID, doctorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ValidationError("This patient is already assigned to this doctor.")
	}

	var mappingID uint
	prior, err := s.mappingRepo.GetByPair(ctx, patientID, doctorID)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		// Inactive row for the same pair: flip it back instead of inserting.
		if err := s.mappingRepo.Reactivate(ctx, prior.ID, ownerID, notes); err != nil {
			return nil, err
		}
		mappingID = prior.ID
	} else {
		mapping := &models.PatientDoctorMapping{
			PatientID:   patientID,
			DoctorID:    doctorID,
			Notes:       notes,
			IsActive:    true,
			CreatedByID: ownerID,
		}
		if err := s.mappingRepo.Create(ctx, mapping); err != nil {
			// Two concurrent assigns race on the unique index; the loser
			// reports the same condition as the precheck.
			if utils.IsKind(err, utils.KindIntegrity) {
				return nil, utils.ValidationError("This patient is already assigned to this doctor.")
			}
			return nil, err
		}
		mappingID = mapping.ID
	}

	detailed, err := s.mappingRepo.GetDetailed(ctx, mappingID)
	if err != nil {
		return nil, err
	}
	if detailed == nil {
		return nil, fmt.Errorf("mapping %d missing after creation", mappingID)
	}
	detail := detailed.ToDetail()
	return &detail, nil
}

func (s *mappingService) ListMine(ctx context.Context, ownerID int64) ([]models.PatientDoctorMapping, error) {
	return s.mappingRepo.ListActiveByOwner(ctx, ownerID)
}

func (s *mappingService) ListForPatient(ctx context.Context, ownerID int64, patientID uint) (*models.PatientSummary, []models.PatientDoctorMapping, error) {
	patient, err := s.patientRepo.GetByIDForOwner(ctx, patientID, ownerID)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, utils.NotFoundError("Patient not found")
	}

	mappings, err := s.mappingRepo.ListActiveByPatient(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	summary := patient.Summary()
	return &summary, mappings, nil
}

// Deactivate is the only way out of an assignment; it is terminal for the
// caller (reassignment goes through Assign, which reuses the row).
func (s *mappingService) Deactivate(ctx context.Context, ownerID int64, mappingID uint) error {
	deactivated, err := s.mappingRepo.Deactivate(ctx, mappingID, ownerID)
	if err != nil {
		return err
	}
	if !deactivated {
		return utils.NotFoundError("Mapping not found")
	}
	return nil
}

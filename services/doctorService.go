package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"CareLink/utils"
	"context"
)

// DoctorService exposes the shared doctor pool. Reads are open to any
// authenticated account; mutations are limited to the creator and rejected
// with a permission error, which is deliberately distinguishable from not
// found (unlike patients).
type DoctorService interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, ownerID int64, doctor *models.Doctor) error
	Get(ctx context.Context, doctorID uint) (*models.Doctor, error)
	Update(ctx context.Context, ownerID int64, doctor *models.Doctor) error
	Delete(ctx context.Context, ownerID int64, doctorID uint) error
}

type doctorService struct {
	doctorRepo repositories.DoctorRepository
}

func NewDoctorService(doctorRepo repositories.DoctorRepository) DoctorService {
	return &doctorService{doctorRepo: doctorRepo}
}

func (s *doctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.doctorRepo.ListAll(ctx)
}

func (s *doctorService) Create(ctx context.Context, ownerID int64, doctor *models.Doctor) error {
	if err := utils.ValidateDoctor(doctor); err != nil {
		return utils.ValidationDetails("Doctor validation failed", err)
	}

	// Doctor emails are unique across the whole pool regardless of creator.
	if exists, err := s.doctorRepo.EmailExists(ctx, doctor.Email, 0); err != nil {
		return err
	} else if exists {
		return utils.ValidationError("A doctor with this email already exists.")
	}

	doctor.CreatedByID = ownerID
	return s.doctorRepo.Create(ctx, doctor)
}

func (s *doctorService) Get(ctx context.Context, doctorID uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NotFoundError("Doctor not found")
	}
	return doctor, nil
}

func (s *doctorService) Update(ctx context.Context, ownerID int64, doctor *models.Doctor) error {
	existing, err := s.Get(ctx, doctor.ID)
	if err != nil {
		return err
	}
	if existing.CreatedByID != ownerID {
		return utils.PermissionError("You can only modify doctors you created.")
	}

	if err := utils.ValidateDoctor(doctor); err != nil {
		return utils.ValidationDetails("Doctor validation failed", err)
	}

	if exists, err := s.doctorRepo.EmailExists(ctx, doctor.Email, doctor.ID); err != nil {
		return err
	} else if exists {
		return utils.ValidationError("A doctor with this email already exists.")
	}

	doctor.CreatedByID = existing.CreatedByID
	return s.doctorRepo.Update(ctx, doctor)
}

func (s *doctorService) Delete(ctx context.Context, ownerID int64, doctorID uint) error {
	existing, err := s.Get(ctx, doctorID)
	if err != nil {
		return err
	}
	if existing.CreatedByID != ownerID {
		return utils.PermissionError("You can only modify doctors you created.")
	}

	deleted, err := s.doctorRepo.Delete(ctx, doctorID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFoundError("Doctor not found")
	}
	return nil
}

package repositories

import (
	"CareLink/cache"
	"CareLink/models"
	"CareLink/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 24 * time.Hour
)

// PatientRepository scopes every read and write to the owning account.
// A patient owned by a different account behaves exactly like a missing row.
type PatientRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, patientID uint) (*models.Patient, error)
	GetByIDForOwner(ctx context.Context, patientID uint, ownerID int64) (*models.Patient, error)
	EmailExistsForOwner(ctx context.Context, email string, ownerID int64, excludeID uint) (bool, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, patientID uint, ownerID int64) (bool, error)
}

type patientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) PatientRepository {
	return &patientRepository{db: db, cache: cache}
}

func (r *patientRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getOwnerCacheKey(ownerID)
	var cached []models.Patient
	if ok, err := r.cache.GetJSON(ctx, cacheKey, &cached); ok {
		return cached, nil
	} else if err != nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Where("created_by_id = ?", ownerID).
		Order("created_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, patients, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.IntegrityError("A patient with this email already exists.", err)
		}
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return r.cache.Delete(ctx, r.getOwnerCacheKey(patient.CreatedByID))
}

func (r *patientRepository) GetByID(ctx context.Context, patientID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", patientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) GetByIDForOwner(ctx context.Context, patientID uint, ownerID int64) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by_id = ?", patientID, ownerID).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) EmailExistsForOwner(ctx context.Context, email string, ownerID int64, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("email = ? AND created_by_id = ?", email, ownerID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check patient email: %w", err)
	}
	return count > 0, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	err := r.db.WithContext(ctx).Model(patient).
		Select("name", "email", "phone", "address", "date_of_birth", "gender", "medical_history").
		Updates(patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.IntegrityError("A patient with this email already exists.", err)
		}
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return r.invalidate(ctx, patient.CreatedByID)
}

func (r *patientRepository) Delete(ctx context.Context, patientID uint, ownerID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND created_by_id = ?", patientID, ownerID).
		Delete(&models.Patient{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	return true, r.invalidate(ctx, ownerID)
}

// invalidate drops the owner's patient list cache and mapping list cache,
// since cached mapping rows embed preloaded patient data.
func (r *patientRepository) invalidate(ctx context.Context, ownerID int64) error {
	if err := r.cache.Delete(ctx, r.getOwnerCacheKey(ownerID)); err != nil {
		return err
	}
	return r.cache.Delete(ctx, mappingsCacheKey(ownerID))
}

func (r *patientRepository) getOwnerCacheKey(ownerID int64) string {
	return fmt.Sprintf("patients_cache:%d", ownerID)
}

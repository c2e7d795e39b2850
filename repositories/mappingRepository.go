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
	MappingCacheExpiry = 24 * time.Hour
)

// MappingRepository persists patient-doctor assignments. The unconditional
// (patient_id, doctor_id) unique index arbitrates concurrent assigns; a lost
// race surfaces as an IntegrityError for the service to translate.
type MappingRepository interface {
	Create(ctx context.Context, mapping *models.PatientDoctorMapping) error
	GetByPair(ctx context.Context, patientID, doctorID uint) (*models.PatientDoctorMapping, error)
	ActiveExists(ctx context.Context, patientID, doctorID uint) (bool, error)
	Reactivate(ctx context.Context, mappingID uint, ownerID int64, notes string) error
	GetDetailed(ctx context.Context, mappingID uint) (*models.PatientDoctorMapping, error)
	ListActiveByOwner(ctx context.Context, ownerID int64) ([]models.PatientDoctorMapping, error)
	ListActiveByPatient(ctx context.Context, patientID uint) ([]models.PatientDoctorMapping, error)
	Deactivate(ctx context.Context, mappingID uint, ownerID int64) (bool, error)
}

type mappingRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMappingRepository(db *gorm.DB, cache *cache.Cache) MappingRepository {
	return &mappingRepository{db: db, cache: cache}
}

func (r *mappingRepository) Create(ctx context.Context, mapping *models.PatientDoctorMapping) error {
	if err := r.db.WithContext(ctx).Create(mapping).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.IntegrityError("This patient is already assigned to this doctor.", err)
		}
		return fmt.Errorf("failed to create mapping: %w", err)
	}
	return r.cache.Delete(ctx, mappingsCacheKey(mapping.CreatedByID))
}

func (r *mappingRepository) GetByPair(ctx context.Context, patientID, doctorID uint) (*models.PatientDoctorMapping, error) {
	var mapping models.PatientDoctorMapping
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).
		First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mapping: %w", err)
	}
	return &mapping, nil
}

func (r *mappingRepository) ActiveExists(ctx context.Context, patientID, doctorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PatientDoctorMapping{}).
		Where("patient_id = ? AND doctor_id = ? AND is_active = ?", patientID, doctorID, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check active mapping: %w", err)
	}
	return count > 0, nil
}

// Reactivate flips an inactive row back to active in place, refreshing the
// assignment date, notes and owner.
func (r *mappingRepository) Reactivate(ctx context.Context, mappingID uint, ownerID int64, notes string) error {
	err := r.db.WithContext(ctx).Model(&models.PatientDoctorMapping{}).
		Where("id = ?", mappingID).
		Updates(map[string]interface{}{
			"is_active":     true,
			"notes":         notes,
			"assigned_date": time.Now(),
			"created_by_id": ownerID,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to reactivate mapping: %w", err)
	}
	return r.cache.Delete(ctx, mappingsCacheKey(ownerID))
}

func (r *mappingRepository) GetDetailed(ctx context.Context, mappingID uint) (*models.PatientDoctorMapping, error) {
	var mapping models.PatientDoctorMapping
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		First(&mapping, "id = ?", mappingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mapping: %w", err)
	}
	return &mapping, nil
}

func (r *mappingRepository) ListActiveByOwner(ctx context.Context, ownerID int64) ([]models.PatientDoctorMapping, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := mappingsCacheKey(ownerID)
	var cached []models.PatientDoctorMapping
	if ok, err := r.cache.GetJSON(ctx, cacheKey, &cached); ok {
		return cached, nil
	} else if err != nil {
		log.Printf("Failed to get mappings from cache: %v", err)
	}

	var mappings []models.PatientDoctorMapping
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("created_by_id = ? AND is_active = ?", ownerID, true).
		Order("assigned_date DESC").
		Find(&mappings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, mappings, MappingCacheExpiry); err != nil {
		log.Printf("Failed to set mappings in cache: %v", err)
	}
	return mappings, nil
}

func (r *mappingRepository) ListActiveByPatient(ctx context.Context, patientID uint) ([]models.PatientDoctorMapping, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mappings []models.PatientDoctorMapping
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("patient_id = ? AND is_active = ?", patientID, true).
		Order("assigned_date DESC").
		Find(&mappings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patient mappings: %w", err)
	}
	return mappings, nil
}

// Deactivate soft-deletes an assignment. The row must be owned by ownerID
// and still active; there is no path back to active through this method.
func (r *mappingRepository) Deactivate(ctx context.Context, mappingID uint, ownerID int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.PatientDoctorMapping{}).
		Where("id = ? AND created_by_id = ? AND is_active = ?", mappingID, ownerID, true).
		Update("is_active", false)
	if result.Error != nil {
		return false, fmt.Errorf("failed to deactivate mapping: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	return true, r.cache.Delete(ctx, mappingsCacheKey(ownerID))
}

// mappingsCacheKey is shared with the patient repository, whose writes
// invalidate the owner's mapping cache as well.
func mappingsCacheKey(ownerID int64) string {
	return fmt.Sprintf("mappings_cache:%d", ownerID)
}

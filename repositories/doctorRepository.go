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
	DoctorCacheExpiry = 24 * time.Hour

	doctorsCacheKey = "doctors_cache"
)

// DoctorRepository backs the shared doctor pool. Reads are global; the
// services layer enforces that only the creator may mutate a row.
type DoctorRepository interface {
	ListAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, doctorID uint) (*models.Doctor, error)
	EmailExists(ctx context.Context, email string, excludeID uint) (bool, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, doctorID uint) (bool, error)
}

type doctorRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDoctorRepository(db *gorm.DB, cache *cache.Cache) DoctorRepository {
	return &doctorRepository{db: db, cache: cache}
}

func (r *doctorRepository) ListAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cached []models.Doctor
	if ok, err := r.cache.GetJSON(ctx, doctorsCacheKey, &cached); ok {
		return cached, nil
	} else if err != nil {
		log.Printf("Failed to get doctors from cache: %v", err)
	}

	var doctors []models.Doctor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	if err := r.cache.SetJSON(ctx, doctorsCacheKey, doctors, DoctorCacheExpiry); err != nil {
		log.Printf("Failed to set doctors in cache: %v", err)
	}

	return doctors, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.IntegrityError("A doctor with this email already exists.", err)
		}
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return r.cache.Delete(ctx, doctorsCacheKey)
}

func (r *doctorRepository) GetByID(ctx context.Context, doctorID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "id = ?", doctorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) EmailExists(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check doctor email: %w", err)
	}
	return count > 0, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	err := r.db.WithContext(ctx).Model(doctor).
		Select("name", "email", "phone", "specialization", "years_of_experience",
			"qualification", "hospital_affiliation", "consultation_fee").
		Updates(doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.IntegrityError("A doctor with this email already exists.", err)
		}
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return r.invalidate(ctx)
}

func (r *doctorRepository) Delete(ctx context.Context, doctorID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Doctor{}, "id = ?", doctorID)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete doctor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	return true, r.invalidate(ctx)
}

// invalidate drops the doctor list cache and every cached mapping list,
// since those embed doctor rows.
func (r *doctorRepository) invalidate(ctx context.Context) error {
	if err := r.cache.Delete(ctx, doctorsCacheKey); err != nil {
		return err
	}
	return r.cache.DeleteAll(ctx, "mappings_cache:*")
}

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
	AccountCacheExpiry = 7 * 24 * time.Hour
)

type AccountRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, accountID int64) (*models.Account, error)
	UpdateProfile(ctx context.Context, accountID int64, name, email string) error
	UpdatePassword(ctx context.Context, accountID int64, hashedPassword string) error
}

type accountRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAccountRepository(db *gorm.DB, cache *cache.Cache) AccountRepository {
	return &accountRepository{db: db, cache: cache}
}

func (r *accountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *accountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return count > 0, nil
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.IntegrityError("A user with this email already exists.", err)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByID(ctx context.Context, accountID int64) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAccountCacheKey(accountID)
	var cached models.Account
	if ok, err := r.cache.GetJSON(ctx, cacheKey, &cached); ok {
		return &cached, nil
	} else if err != nil {
		log.Printf("Failed to get account from cache: %v", err)
	}

	var account models.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, cacheKey, account, AccountCacheExpiry); err != nil {
		log.Printf("Failed to set account in cache: %v", err)
	}

	return &account, nil
}

func (r *accountRepository) UpdateProfile(ctx context.Context, accountID int64, name, email string) error {
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", accountID).
		Updates(map[string]interface{}{"name": name, "email": email}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.IntegrityError("A user with this email already exists.", err)
		}
		return err
	}
	return r.cache.Delete(ctx, r.getAccountCacheKey(accountID))
}

func (r *accountRepository) UpdatePassword(ctx context.Context, accountID int64, hashedPassword string) error {
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", accountID).
		Update("password", hashedPassword).Error
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, r.getAccountCacheKey(accountID))
}

func (r *accountRepository) getAccountCacheKey(accountID int64) string {
	return fmt.Sprintf("account_cache:%d", accountID)
}

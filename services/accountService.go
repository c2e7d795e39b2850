package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"CareLink/utils"
	"context"
	"fmt"
	"strings"
)

type AccountService interface {
	Register(ctx context.Context, input utils.RegistrationInput) (*models.Account, error)
	Authenticate(ctx context.Context, email, password string) (*models.Account, error)
	Profile(ctx context.Context, accountID int64) (*models.Account, error)
	UpdateProfile(ctx context.Context, accountID int64, name, email string) (*models.Account, error)
	SendResetCode(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, email, resetCode, newPassword string) error
}

type accountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

// Register validates the payload, derives a unique login handle from the
// email local part and creates the account with a hashed credential.
func (s *accountService) Register(ctx context.Context, input utils.RegistrationInput) (*models.Account, error) {
	if err := utils.ValidateRegistration(input); err != nil {
		return nil, utils.ValidationDetails("Registration failed", err)
	}

	if exists, err := s.accountRepo.EmailExists(ctx, input.Email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if exists {
		return nil, utils.ValidationError("A user with this email already exists.")
	}

	username, err := s.deriveUsername(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Username: username,
		Email:    input.Email,
		Name:     input.Name,
		Password: hashedPassword,
		IsActive: true,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		// Two concurrent registrations race on the unique index; the loser
		// reports the same condition as the precheck.
		if utils.IsKind(err, utils.KindIntegrity) {
			return nil, utils.ValidationError("A user with this email already exists.")
		}
		return nil, err
	}
	return account, nil
}

// deriveUsername takes the email local part and appends an incrementing
// integer suffix while a collision exists: a@x.com -> a, then a1, a2, ...
func (s *accountService) deriveUsername(ctx context.Context, email string) (string, error) {
	base := email
	if at := strings.Index(email, "@"); at >= 0 {
		base = email[:at]
	}

	username := base
	counter := 1
	for {
		exists, err := s.accountRepo.UsernameExists(ctx, username)
		if err != nil {
			return "", fmt.Errorf("failed to check username: %w", err)
		}
		if !exists {
			return username, nil
		}
		username = fmt.Sprintf("%s%d", base, counter)
		counter++
	}
}

func (s *accountService) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, utils.ValidationError("Both email and password are required")
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if account == nil || !utils.CheckPassword(account.Password, password) {
		return nil, utils.ValidationError("Invalid email or password")
	}
	if !account.IsActive {
		return nil, utils.ValidationError("User account is disabled")
	}

	return account, nil
}

func (s *accountService) Profile(ctx context.Context, accountID int64) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.NotFoundError("User not found")
	}
	return account, nil
}

// UpdateProfile changes name and email; username and join date stay fixed.
func (s *accountService) UpdateProfile(ctx context.Context, accountID int64, name, email string) (*models.Account, error) {
	account, err := s.Profile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if email != account.Email {
		if exists, err := s.accountRepo.EmailExists(ctx, email); err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		} else if exists {
			return nil, utils.ValidationError("A user with this email already exists.")
		}
	}

	if err := s.accountRepo.UpdateProfile(ctx, accountID, name, email); err != nil {
		if utils.IsKind(err, utils.KindIntegrity) {
			return nil, utils.ValidationError("A user with this email already exists.")
		}
		return nil, err
	}
	account.Name = name
	account.Email = email
	return account, nil
}

func (s *accountService) SendResetCode(ctx context.Context, email string) error {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.NotFoundError("User not found")
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, account.Email, code); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	return utils.SendResetCodeEmail(account.Email, code)
}

func (s *accountService) ChangePassword(ctx context.Context, email, resetCode, newPassword string) error {
	if err := utils.ValidatePasswordChange(resetCode, newPassword); err != nil {
		return utils.ValidationDetails("Password change failed", err)
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.NotFoundError("User not found")
	}

	stored, err := utils.GetResetCode(ctx, account.Email)
	if err != nil {
		return fmt.Errorf("failed to read reset code: %w", err)
	}
	if stored == nil || *stored != resetCode {
		return utils.ValidationError("Invalid reset code")
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.accountRepo.UpdatePassword(ctx, account.ID, hashedPassword); err != nil {
		return err
	}
	return utils.DeleteResetCode(ctx, account.Email)
}

package services

import (
	"context"
	"log"
	"time"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
	UpdatePreferences(ctx context.Context, userID string, request request_models.UpdatePreferencesRequest) (*response_models.AccountResponse, error)
	RequestPasswordReset(ctx context.Context, request request_models.RequestForgotPassword) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo   repositories.AccountRepository
	itineraryRepo repositories.ItineraryRepository
	resetTokens   mem.TokenStore
	mailService   MailServiceInterface
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	itineraryRepo repositories.ItineraryRepository,
	resetTokens mem.TokenStore,
	mailService MailServiceInterface,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:   accountRepo,
		itineraryRepo: itineraryRepo,
		resetTokens:   resetTokens,
		mailService:   mailService,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.LoginResponse, error) {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Invites may have been sent to this email before the account existed.
	if err := a.itineraryRepo.ClaimInvites(ctx, newAccount.Email, newAccount.ID); err != nil {
		log.Printf("claiming pending invites for %s failed: %v", newAccount.Email, err)
	}

	token, err := utils.CreateToken(newAccount.ID, newAccount.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  toAccountResponse(newAccount),
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  toAccountResponse(account),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.Email != "" && request.Email != account.Email {
		existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrEmailAlreadyExists
		}
		account.Email = request.Email
	}
	if request.Username != "" {
		account.Username = request.Username
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdatePreferences(ctx context.Context, userID string, request request_models.UpdatePreferencesRequest) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	account.TravelStyle = request.Preferences.TravelStyle
	account.BudgetLevel = request.Preferences.BudgetLevel

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) RequestPasswordReset(ctx context.Context, request request_models.RequestForgotPassword) error {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	// Do not reveal whether the email is registered.
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.ID.String(), resetTokenTTL)

	if err := a.mailService.SendPasswordReset(account.Email, token); err != nil {
		log.Printf("sending reset mail to %s failed: %v", account.Email, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	userID := a.resetTokens.Consume(request.Token)
	if userID == "" {
		return utils.ErrInvalidInviteToken
	}

	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	account.PasswordHash = hashedPassword

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:       account.ID.String(),
		Username: account.Username,
		Email:    account.Email,
		Preferences: response_models.AccountPreferences{
			TravelStyle: account.TravelStyle,
			BudgetLevel: account.BudgetLevel,
		},
	}
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "museum/internal/delivery/context"
	"museum/internal/domain/entity"
	domainerrors "museum/internal/domain/errors"
	"museum/internal/domain/repository"
	"museum/internal/domain/service"
	"museum/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	profileRepo repository.ProfileRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	ProfileRepo repository.ProfileRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		profileRepo: params.ProfileRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and its paired profile in one transaction.
// Hashing happens here, explicitly, before any write — never inside a
// persistence hook.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "registration rejected")
	}

	// Hash outside the transaction: argon2 is CPU-bound and must not hold a
	// database connection while it runs.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "registration failed")
	}

	newAccount := &entity.Account{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
	}
	newProfile := &entity.Profile{Username: input.Username}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		profileRepo := repoFactory.ProfileRepo()

		_, findErr := accountRepo.FindByUsername(ctx, input.Username)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "registration rejected")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check username availability")
		}

		if createErr := accountRepo.Create(ctx, newAccount); createErr != nil {
			return errors.Wrap(createErr, "failed to create account during registration")
		}

		if createErr := profileRepo.Create(ctx, newProfile); createErr != nil {
			return errors.Wrap(createErr, "failed to create profile during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return &usecase.AccountOutput{
		Account: usecase.NewAccountView(newAccount),
		Profile: newProfile,
	}, nil
}

// Login verifies credentials. An unknown username and a wrong password produce
// the same error, so a caller cannot probe which usernames exist.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	if input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "login rejected")
	}

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// Check password outside any transaction (argon2 is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	profile, err := srv.profileRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to load profile for login")
		}

		// A missing profile means the pairing invariant was broken somewhere,
		// but the credentials are valid, so the login still succeeds.
		srv.log(ctx).Error("Profile missing for authenticated account", slog.String("username", input.Username))
		profile = nil
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.AccountOutput{
		Account: usecase.NewAccountView(account),
		Profile: profile,
	}, nil
}

// ListProfiles returns every profile in store order. Raw accounts are never
// listed.
func (srv *accountService) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list profiles", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// Update mutates an account and keeps its paired profile in sync, all in one
// transaction. A rename re-runs the same uniqueness check used by Register.
func (srv *accountService) Update(ctx context.Context, input *usecase.UpdateAccountInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Info("Starting account update", slog.String("username", input.Username))

	// Hash the replacement password before the transaction, same reasoning as
	// in Register. The old hash is discarded, never retained.
	var newHash string
	if input.NewPassword != nil {
		if *input.NewPassword == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "account update rejected")
		}

		hash, err := srv.hasher.Hash(*input.NewPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "account update failed")
		}
		newHash = hash
	}

	var updatedAccount *entity.Account
	var updatedProfile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		profileRepo := repoFactory.ProfileRepo()

		account, err := accountRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account update rejected")
			}

			return errors.Wrap(err, "failed to load account for update")
		}

		profile, err := profileRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account update rejected")
			}

			return errors.Wrap(err, "failed to load profile for update")
		}

		if input.NewUsername != nil && *input.NewUsername != account.Username {
			if *input.NewUsername == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed, "account update rejected")
			}

			if err := srv.checkRenameTarget(ctx, accountRepo, *input.NewUsername); err != nil {
				return err
			}

			account.Username = *input.NewUsername
			profile.Username = *input.NewUsername
		}

		if newHash != "" {
			account.PasswordHash = newHash
		}
		if input.FirstName != nil {
			account.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			account.LastName = *input.LastName
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		updatedAccount = account
		updatedProfile = profile

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Account update completed", slog.Any("accountID", updatedAccount.ID))

	return &usecase.AccountOutput{
		Account: usecase.NewAccountView(updatedAccount),
		Profile: updatedProfile,
	}, nil
}

// checkRenameTarget rejects a rename whose target username belongs to another
// account. This is the same availability check Register performs.
func (srv *accountService) checkRenameTarget(ctx context.Context, accountRepo repository.AccountRepository, newUsername string) error {
	_, err := accountRepo.FindByUsername(ctx, newUsername)
	if err == nil {
		return errors.Wrap(domainerrors.ErrUsernameTaken, "rename rejected")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check rename target availability")
	}

	return nil
}

// Delete removes the account and its paired profile in one transaction.
// Deleting a username that does not exist is a successful no-op.
func (srv *accountService) Delete(ctx context.Context, username string) error {
	srv.log(ctx).Info("Deleting account", slog.String("username", username))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().DeleteByUsername(ctx, username); err != nil {
			return errors.Wrap(err, "failed to delete account")
		}
		if err := repoFactory.ProfileRepo().DeleteByUsername(ctx, username); err != nil {
			return errors.Wrap(err, "failed to delete profile")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute account deletion transaction", slog.String("username", username), slog.Any("error", err))

		return err
	}

	return nil
}

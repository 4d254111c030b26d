// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "agenda/internal/delivery/context"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	txManager    repository.TransactionManager
	oauthService service.OAuthService
	logger       *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(
	txManager repository.TransactionManager,
	oauthService service.OAuthService,
	logger *slog.Logger,
) usecase.CredentialUsecase {
	return &credentialService{
		txManager:    txManager,
		oauthService: oauthService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AccessToken returns the stored access token of the user.
func (srv *credentialService) AccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	var token string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUnauthenticated, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		token = user.AccessToken

		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// Refresh exchanges the stored refresh token for a new access token and
// persists it. Only one refresh happens per call; a rejected refresh token
// means the user must go through the consent flow again.
func (srv *credentialService) Refresh(ctx context.Context, userID uuid.UUID) (string, error) {
	var token string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUnauthenticated, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !user.HasRefreshToken() {
			return errors.Wrap(domainerrors.ErrReauthRequired, "no refresh token stored")
		}

		refreshed, err := srv.oauthService.RefreshAccessToken(ctx, *user.RefreshToken)
		if err != nil {
			srv.log(ctx).Warn("Token refresh rejected by provider",
				slog.Any("user_id", userID),
				slog.Any("error", err),
			)

			return errors.Wrap(domainerrors.ErrReauthRequired, "refresh token rejected")
		}

		if err := userRepo.UpdateTokens(ctx, userID, refreshed, nil); err != nil {
			return errors.Wrap(err, "failed to persist refreshed token")
		}

		token = refreshed

		return nil
	})
	if err != nil {
		return "", err
	}

	srv.log(ctx).Debug("Access token refreshed", slog.Any("user_id", userID))

	return token, nil
}

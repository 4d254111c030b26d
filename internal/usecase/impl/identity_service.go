package impl

import (
	"context"
	"log/slog"
	"time"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// identityService implements the AuthUsecase interface. It binds Google
// identities to local users, opens sessions and resolves them back to users.
type identityService struct {
	txManager     repository.TransactionManager
	oauthService  service.OAuthService
	sessionTokens service.SessionTokenService
	sync          usecase.SyncUsecase
	sessionTTL    time.Duration
	dashboardURL  string
	logger        *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	txManager repository.TransactionManager,
	oauthService service.OAuthService,
	sessionTokens service.SessionTokenService,
	sync usecase.SyncUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &identityService{
		txManager:     txManager,
		oauthService:  oauthService,
		sessionTokens: sessionTokens,
		sync:          sync,
		sessionTTL:    cfg.Session.TTL,
		dashboardURL:  cfg.Sync.DashboardURL,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLogin mints a CSRF state and returns the provider consent URL.
func (srv *identityService) BeginLogin(ctx context.Context) (string, error) {
	state, err := srv.oauthService.GenerateState()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	srv.log(ctx).Debug("Login started")

	return srv.oauthService.BuildAuthorizationURL(state), nil
}

// CompleteLogin validates the callback, binds the Google identity to a local
// user, opens a session and runs one synchronous calendar sync.
//
// The binding is an upsert keyed by the Google account ID: repeated logins
// update the profile and stored credentials instead of creating duplicates.
// Google withholds the refresh token on some flows; the stored one is then
// overwritten with absence, matching what the provider reported.
func (srv *identityService) CompleteLogin(ctx context.Context, state, code string) (*usecase.LoginOutput, error) {
	if !srv.oauthService.ValidateState(state) {
		return nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid, "state missing or already used")
	}

	pair, err := srv.oauthService.ExchangeCode(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, err.Error())
	}

	profile, err := srv.oauthService.FetchProfile(ctx, pair.AccessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	var user *entity.User
	session := &entity.Session{
		ID:        uuid.New(),
		ExpiresAt: time.Now().Add(srv.sessionTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err = srv.bindUser(ctx, userRepo, profile, pair)
		if err != nil {
			return err
		}

		session.UserID = user.ID

		return repoFactory.NewSessionRepository().Create(ctx, session)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to bind user")
	}

	token, err := srv.sessionTokens.Sign(session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	srv.log(ctx).Info("User logged in",
		slog.Any("user_id", user.ID),
		slog.String("google_id", profile.ID),
	)

	// One synchronous sync per login. A failed sync fails the request; the
	// committed binding and session survive, so a retry needs no new consent.
	out, err := srv.sync.SyncCalendar(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Post-login sync failed",
			slog.Any("user_id", user.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "post-login sync failed")
	}

	return &usecase.LoginOutput{
		SessionToken: token,
		RedirectURL:  srv.dashboardURL,
		User:         user,
		Synced:       out.Processed,
	}, nil
}

// bindUser upserts the user row keyed by the Google account ID.
func (srv *identityService) bindUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	profile *service.OAuthProfile,
	pair *service.TokenPair,
) (*entity.User, error) {
	user, err := userRepo.FindByGoogleID(ctx, profile.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to look up user")
		}

		user = &entity.User{
			GoogleID:     profile.ID,
			Name:         profile.Name,
			Email:        profile.Email,
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, err
		}

		return user, nil
	}

	user.Name = profile.Name
	user.Email = profile.Email
	user.AccessToken = pair.AccessToken
	user.RefreshToken = pair.RefreshToken
	if err := userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate resolves a session cookie token to its user.
func (srv *identityService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	sessionID, err := srv.sessionTokens.Verify(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "invalid session token")
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.NewSessionRepository().FindByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrUnauthenticated, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		if session.Expired(time.Now()) {
			return errors.Wrap(domainerrors.ErrSessionExpired, "session expired")
		}

		user, err = repoFactory.NewUserRepository().FindByID(ctx, session.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUnauthenticated, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Logout removes the session behind the cookie token. An invalid or already
// removed session logs out successfully.
func (srv *identityService) Logout(ctx context.Context, token string) error {
	sessionID, err := srv.sessionTokens.Verify(token)
	if err != nil {
		return nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewSessionRepository().Delete(ctx, sessionID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("User logged out", slog.Any("session_id", sessionID))

	return nil
}

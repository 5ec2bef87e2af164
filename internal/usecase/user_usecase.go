package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
	"golang.org/x/crypto/bcrypt"
)

const errInternalServer = "internal server error"

// UserUsecase implements the account operations over whichever user backend
// was selected at startup. userRepo and tokenRepo may be nil when the active
// backend does not support users (FS mode); every operation then fails with
// entity.ErrBackendUnavailable instead of panicking.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	tokenRepo       contract.ITokenRepository
	hasher          contract.IHasher
	jwtService      JWTService
	mailService     contract.IEmailService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomGenerator contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		mailService:     mailService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomGenerator,
	}
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// repos returns the user and token repositories or ErrBackendUnavailable when
// the active backend has no user support.
func (uc *UserUsecase) repos() (contract.IUserRepository, contract.ITokenRepository, error) {
	if uc.userRepo == nil || uc.tokenRepo == nil {
		return nil, nil, entity.ErrBackendUnavailable
	}
	return uc.userRepo, uc.tokenRepo, nil
}

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, email, password, firstName, lastName string) (*entity.User, error) {
	users, _, err := uc.repos()
	if err != nil {
		return nil, err
	}

	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("weak password: %w", err)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	var pFirstName *string
	if firstName != "" {
		pFirstName = &firstName
	}
	var pLastName *string
	if lastName != "" {
		pLastName = &lastName
	}

	now := time.Now()
	user := &entity.User{
		ID:             uc.uuidGenerator.NewUUID(),
		Email:          email,
		PasswordHash:   hashedPassword,
		Role:           entity.DefaultRole(),
		Premium:        false,
		FirstName:      pFirstName,
		LastName:       pLastName,
		LastConnection: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateKey) {
			return nil, entity.ErrDuplicateAccount
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user")
	}

	return user, nil
}

// Login verifies local credentials and opens a session.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	users, _, err := uc.repos()
	if err != nil {
		return nil, "", "", err
	}

	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", errors.New(errInternalServer)
	}

	// Federated accounts carry no local credential.
	if user.PasswordHash == "" {
		return nil, "", "", entity.ErrInvalidCredentials
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", entity.ErrInvalidCredentials
	}

	return uc.openSession(ctx, user)
}

// LoginWithOAuth completes a federated login: it resolves or creates the user
// record for a verified external assertion and opens a session.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, provider, providerID, email, firstName, lastName string) (*entity.User, string, string, error) {
	users, _, err := uc.repos()
	if err != nil {
		return nil, "", "", err
	}

	user, err := users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", "", errors.New(errInternalServer)
	}

	if user == nil {
		var pFirstName *string
		if firstName != "" {
			pFirstName = &firstName
		}
		var pLastName *string
		if lastName != "" {
			pLastName = &lastName
		}

		now := time.Now()
		user = &entity.User{
			ID:             uc.uuidGenerator.NewUUID(),
			Email:          email,
			PasswordHash:   "", // no local credential for federated accounts
			Role:           entity.DefaultRole(),
			Premium:        false,
			Provider:       &provider,
			ProviderID:     &providerID,
			FirstName:      pFirstName,
			LastName:       pLastName,
			LastConnection: now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := users.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to create user from OAuth: %v", err)
			return nil, "", "", fmt.Errorf("failed to register user")
		}
	}

	return uc.openSession(ctx, user)
}

// openSession stamps the user's last connection and issues the access/refresh
// token pair, persisting the hashed refresh token.
func (uc *UserUsecase) openSession(ctx context.Context, user *entity.User) (*entity.User, string, string, error) {
	users, tokens, err := uc.repos()
	if err != nil {
		return nil, "", "", err
	}

	user.LastConnection = time.Now()
	if _, err := users.UpdateUser(ctx, user); err != nil {
		uc.logger.Warnf("failed to stamp last connection for user %s: %v", user.ID, err)
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", "", errors.New("failed to generate token")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return nil, "", "", errors.New("failed to generate token")
	}

	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypeRefresh,
		TokenHash: uc.hasher.HashString(refreshToken),
		ExpiresAt: time.Now().Add(uc.config.GetRefreshTokenExpiry()),
		CreatedAt: time.Now(),
	}
	if err := tokens.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return nil, "", "", errors.New("failed to store token")
	}

	return user, accessToken, refreshToken, nil
}

// Logout closes the user's session. It is idempotent: logging out with no
// active session is not an error.
func (uc *UserUsecase) Logout(ctx context.Context, userID string) error {
	users, tokens, err := uc.repos()
	if err != nil {
		return err
	}

	storedToken, err := tokens.GetTokenByUserID(ctx, userID, entity.TokenTypeRefresh)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil
		}
		uc.logger.Errorf("failed to retrieve refresh token for user %s: %v", userID, err)
		return errors.New(errInternalServer)
	}
	if err := tokens.RevokeToken(ctx, storedToken.ID); err != nil {
		uc.logger.Errorf("failed to revoke refresh token for user %s: %v", userID, err)
		return errors.New("failed to revoke token")
	}

	if user, err := users.GetUserByID(ctx, userID); err == nil {
		user.LastConnection = time.Now()
		if _, err := users.UpdateUser(ctx, user); err != nil {
			uc.logger.Warnf("failed to stamp last connection on logout for user %s: %v", userID, err)
		}
	}

	return nil
}

// CurrentUser returns the attached principal's public projection.
func (uc *UserUsecase) CurrentUser(ctx context.Context, principal *entity.Principal) (*entity.PublicUser, error) {
	if principal == nil {
		return nil, entity.ErrUnauthenticated
	}
	users, _, err := uc.repos()
	if err != nil {
		return nil, err
	}
	user, err := users.GetUserByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrUnauthenticated
		}
		uc.logger.Errorf("failed to retrieve current user: %v", err)
		return nil, errors.New(errInternalServer)
	}
	pub := user.Public()
	return &pub, nil
}

// GetAllUsers returns every account's public projection. Admin only; no
// pagination, callers must not assume a bounded result size.
func (uc *UserUsecase) GetAllUsers(ctx context.Context) ([]entity.PublicUser, error) {
	users, _, err := uc.repos()
	if err != nil {
		return nil, err
	}
	all, err := users.GetAllUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, errors.New(errInternalServer)
	}
	result := make([]entity.PublicUser, 0, len(all))
	for _, u := range all {
		result = append(result, u.Public())
	}
	return result, nil
}

// RefreshToken rotates a refresh token into a new access/refresh pair.
func (uc *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	_, tokens, err := uc.repos()
	if err != nil {
		return "", "", err
	}

	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", entity.ErrInvalidToken
	}

	storedToken, err := tokens.GetTokenByUserID(ctx, claims.UserID, entity.TokenTypeRefresh)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", "", entity.ErrInvalidToken
		}
		uc.logger.Errorf("failed to retrieve stored refresh token: %v", err)
		return "", "", errors.New(errInternalServer)
	}

	if storedToken.Revoked || storedToken.ExpiresAt.Before(time.Now()) {
		return "", "", entity.ErrInvalidToken
	}
	if !uc.hasher.CheckHash(refreshToken, storedToken.TokenHash) {
		uc.logger.Warnf("refresh token mismatch for user %s", claims.UserID)
		_ = tokens.RevokeToken(ctx, storedToken.ID)
		return "", "", entity.ErrInvalidToken
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", "", entity.ErrInvalidToken
	}

	newAccessToken, err := uc.jwtService.GenerateAccessToken(user)
	if err != nil {
		uc.logger.Errorf("failed to generate new access token during refresh: %v", err)
		return "", "", errors.New("failed to generate new access token")
	}
	newRefreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate new refresh token during refresh: %v", err)
		return "", "", errors.New("failed to generate new refresh token")
	}

	err = tokens.UpdateToken(ctx, storedToken.ID, uc.hasher.HashString(newRefreshToken), time.Now().Add(uc.config.GetRefreshTokenExpiry()))
	if err != nil {
		uc.logger.Errorf("failed to update refresh token: %v", err)
		return "", "", errors.New("failed to update token")
	}

	return newAccessToken, newRefreshToken, nil
}

// ResetPass issues a password-reset credential and mails the reset link.
func (uc *UserUsecase) ResetPass(ctx context.Context, email string) error {
	users, tokens, err := uc.repos()
	if err != nil {
		return err
	}

	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user for password reset: %v", err)
		return errors.New(errInternalServer)
	}

	resetToken, err := uc.randomGenerator.GenerateRandomToken(32)
	if err != nil {
		return fmt.Errorf("failed to create password reset token: %w", err)
	}
	hashedResetToken, err := bcrypt.GenerateFromPassword([]byte(resetToken), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash reset token: %w", err)
	}
	// The verifier identifies the stored token; the token itself proves it.
	verifier, err := uc.randomGenerator.GenerateRandomToken(16)
	if err != nil {
		return fmt.Errorf("failed to generate verifier: %w", err)
	}

	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypePasswordReset,
		TokenHash: string(hashedResetToken),
		Verifier:  verifier,
		ExpiresAt: time.Now().Add(uc.config.GetPasswordResetTokenExpiry()),
		CreatedAt: time.Now(),
	}
	if err := tokens.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store password reset token for user %s: %v", user.ID, err)
		return errors.New("failed to initiate password reset")
	}

	resetLink := fmt.Sprintf("%s/newPassword?verifier=%s&token=%s", uc.config.GetAppBaseURL(), verifier, resetToken)
	emailBody := fmt.Sprintf("Hi,\n\nYou have requested to reset your password. Please follow this link to set a new one: %s\n\nIf you did not request this, please ignore this email.", resetLink)

	if err := uc.mailService.SendEmail(ctx, user.Email, "Password Reset Request", emailBody); err != nil {
		uc.logger.Errorf("failed to send password reset email to %s: %v", user.Email, err)
		return errors.New("failed to send password reset email")
	}

	return nil
}

// UpdatePass consumes a password-reset credential and rewrites the stored
// hashed secret.
func (uc *UserUsecase) UpdatePass(ctx context.Context, verifier, resetToken, newPassword string) error {
	users, tokens, err := uc.repos()
	if err != nil {
		return err
	}

	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return fmt.Errorf("weak password: %w", err)
	}

	token, err := tokens.GetTokenByVerifier(ctx, verifier)
	if err != nil {
		return entity.ErrInvalidToken
	}
	if token.TokenType != entity.TokenTypePasswordReset || token.Revoked || time.Now().After(token.ExpiresAt) {
		return entity.ErrInvalidToken
	}
	if err := bcrypt.CompareHashAndPassword([]byte(token.TokenHash), []byte(resetToken)); err != nil {
		return entity.ErrInvalidToken
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := users.UpdateUserPassword(ctx, token.UserID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", token.UserID, err)
	}
	if err := tokens.RevokeToken(ctx, token.ID); err != nil {
		return fmt.Errorf("failed to revoke reset token: %w", err)
	}

	return nil
}

// TogglePremium flips the premium flag on the target user.
func (uc *UserUsecase) TogglePremium(ctx context.Context, userID string) (*entity.User, error) {
	users, _, err := uc.repos()
	if err != nil {
		return nil, err
	}

	user, err := users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user for premium toggle: %v", err)
		return nil, errors.New(errInternalServer)
	}

	user.Premium = !user.Premium
	updated, err := users.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to toggle premium for user %s: %v", userID, err)
		return nil, errors.New("failed to toggle premium")
	}
	return updated, nil
}

// DeleteInactive removes every account whose last connection exceeds the
// configured staleness threshold and returns how many were removed.
func (uc *UserUsecase) DeleteInactive(ctx context.Context) (int64, error) {
	users, _, err := uc.repos()
	if err != nil {
		return 0, err
	}

	before := time.Now().Add(-uc.config.GetInactivityThreshold())
	count, err := users.DeleteInactiveUsers(ctx, before)
	if err != nil {
		uc.logger.Errorf("inactive user sweep failed: %v", err)
		return 0, errors.New("failed to delete inactive users")
	}
	uc.logger.Infof("inactive user sweep removed %d account(s)", count)
	return count, nil
}

// DeleteUser deletes exactly one account.
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	users, _, err := uc.repos()
	if err != nil {
		return err
	}

	if err := users.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrNotFound
		}
		uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		return errors.New("failed to delete user")
	}
	return nil
}

package usecase_test

import (
	"context"
	"net/url"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/jwt"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/logger"
	passwordservice "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/password_service"
	randomgenerator "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/random_generator"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/uuidgen"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/validator"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase"
)

// ---------- in-memory fakes ----------

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return entity.ErrDuplicateKey
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memUserRepo) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		all = append(all, &clone)
	}
	return all, nil
}

func (r *memUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, entity.ErrNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	result := clone
	return &result, nil
}

func (r *memUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return entity.ErrNotFound
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (r *memUserRepo) DeleteUser(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) DeleteInactiveUsers(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for id, u := range r.users {
		if u.LastConnection.Before(before) {
			delete(r.users, id)
			count++
		}
	}
	return count, nil
}

type memTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.Token
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: map[string]*entity.Token{}}
}

func (r *memTokenRepo) CreateToken(ctx context.Context, token *entity.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *token
	r.tokens[token.ID] = &clone
	return nil
}

func (r *memTokenRepo) GetTokenByUserID(ctx context.Context, userID string, tokenType entity.TokenType) (*entity.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var newest *entity.Token
	for _, t := range r.tokens {
		if t.UserID == userID && t.TokenType == tokenType && !t.Revoked {
			if newest == nil || t.CreatedAt.After(newest.CreatedAt) {
				newest = t
			}
		}
	}
	if newest == nil {
		return nil, entity.ErrNotFound
	}
	clone := *newest
	return &clone, nil
}

func (r *memTokenRepo) GetTokenByVerifier(ctx context.Context, verifier string) (*entity.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.Verifier == verifier {
			clone := *t
			return &clone, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memTokenRepo) UpdateToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[id]
	if !ok {
		return entity.ErrNotFound
	}
	t.TokenHash = tokenHash
	t.ExpiresAt = expiresAt
	return nil
}

func (r *memTokenRepo) RevokeToken(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[id]; ok {
		t.Revoked = true
	}
	return nil
}

type capturingMail struct {
	mu     sync.Mutex
	bodies []string
}

func (m *capturingMail) SendEmail(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bodies = append(m.bodies, body)
	return nil
}

type stubConfig struct {
	inactivity time.Duration
}

func (s *stubConfig) GetAppBaseURL() string                     { return "http://localhost:8080" }
func (s *stubConfig) GetRefreshTokenExpiry() time.Duration      { return time.Hour }
func (s *stubConfig) GetPasswordResetTokenExpiry() time.Duration { return 15 * time.Minute }
func (s *stubConfig) GetInactivityThreshold() time.Duration {
	if s.inactivity == 0 {
		return 48 * time.Hour
	}
	return s.inactivity
}

// ---------- fixtures ----------

type fixture struct {
	uc    *usecase.UserUsecase
	users *memUserRepo
	mail  *capturingMail
	cfg   *stubConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	mail := &capturingMail{}
	cfg := &stubConfig{}
	jwtService := jwt.NewJWTService(jwt.NewJWTManager("test-secret"))
	uc := usecase.NewUserUsecase(
		users, tokens,
		passwordservice.NewHasher(), jwtService, mail,
		logger.NewStdLogger(), cfg, validator.NewValidator(),
		uuidgen.NewGenerator(), randomgenerator.NewRandomGenerator(),
	)
	return &fixture{uc: uc, users: users, mail: mail, cfg: cfg}
}

const testPassword = "Password123"

func (f *fixture) register(t *testing.T, email string) *entity.User {
	t.Helper()
	user, err := f.uc.Register(context.Background(), email, testPassword, "Test", "User")
	require.NoError(t, err)
	return user
}

// ---------- tests ----------

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	f := newFixture(t)
	registered := f.register(t, "alice@example.com")

	user, accessToken, refreshToken, err := f.uc.Login(context.Background(), "alice@example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// The issued access token carries the registered identity.
	jwtService := jwt.NewJWTService(jwt.NewJWTManager("test-secret"))
	claims, err := jwtService.ParseAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, entity.UserRoleUser, claims.Role)
}

func TestRegisterDuplicateAccount(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice@example.com")

	_, err := f.uc.Register(context.Background(), "alice@example.com", testPassword, "", "")
	assert.ErrorIs(t, err, entity.ErrDuplicateAccount)
}

func TestRegisterDefaultsRoleAndPremium(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice@example.com")

	assert.Equal(t, entity.UserRoleUser, user.Role)
	assert.False(t, user.Premium)
}

func TestLoginBeforeRegisterFails(t *testing.T) {
	f := newFixture(t)

	_, _, _, err := f.uc.Login(context.Background(), "nobody@example.com", testPassword)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice@example.com")

	_, _, _, err := f.uc.Login(context.Background(), "alice@example.com", "Wrong12345")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogoutIsIdempotent(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice@example.com")
	_, _, _, err := f.uc.Login(context.Background(), "alice@example.com", testPassword)
	require.NoError(t, err)

	assert.NoError(t, f.uc.Logout(context.Background(), user.ID))
	// Second logout with no live session still succeeds.
	assert.NoError(t, f.uc.Logout(context.Background(), user.ID))
	// Logging out a user that never logged in succeeds too.
	assert.NoError(t, f.uc.Logout(context.Background(), "ghost"))
}

func TestLoginWithOAuthCreatesThenReuses(t *testing.T) {
	f := newFixture(t)

	first, _, _, err := f.uc.LoginWithOAuth(context.Background(), entity.ProviderGitHub, "12345", "bob@example.com", "Bob", "")
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleUser, first.Role)
	require.NotNil(t, first.Provider)
	assert.Equal(t, entity.ProviderGitHub, *first.Provider)

	// A federated account has no local credential.
	_, _, _, err = f.uc.Login(context.Background(), "bob@example.com", testPassword)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	second, _, _, err := f.uc.LoginWithOAuth(context.Background(), entity.ProviderGitHub, "12345", "bob@example.com", "Bob", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestTogglePremiumTwiceRestoresFlag(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice@example.com")
	require.False(t, user.Premium)

	once, err := f.uc.TogglePremium(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, once.Premium)

	twice, err := f.uc.TogglePremium(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, twice.Premium)
}

func TestTogglePremiumUnknownUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.TogglePremium(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteUserUnknownUser(t *testing.T) {
	f := newFixture(t)
	err := f.uc.DeleteUser(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteInactiveNoStaleRecords(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice@example.com")

	count, err := f.uc.DeleteInactive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	all, err := f.uc.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteInactiveSweepsStaleRecords(t *testing.T) {
	f := newFixture(t)
	stale := f.register(t, "old@example.com")
	fresh := f.register(t, "new@example.com")

	// Backdate the stale account past the threshold.
	u, err := f.users.GetUserByID(context.Background(), stale.ID)
	require.NoError(t, err)
	u.LastConnection = time.Now().Add(-72 * time.Hour)
	_, err = f.users.UpdateUser(context.Background(), u)
	require.NoError(t, err)

	count, err := f.uc.DeleteInactive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = f.users.GetUserByID(context.Background(), stale.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = f.users.GetUserByID(context.Background(), fresh.ID)
	assert.NoError(t, err)
}

var resetLinkRe = regexp.MustCompile(`https?://\S+`)

func TestPasswordResetRoundTrip(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice@example.com")

	require.NoError(t, f.uc.ResetPass(context.Background(), "alice@example.com"))
	require.Len(t, f.mail.bodies, 1)

	link := resetLinkRe.FindString(f.mail.bodies[0])
	require.NotEmpty(t, link)
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	verifier := parsed.Query().Get("verifier")
	token := parsed.Query().Get("token")
	require.NotEmpty(t, verifier)
	require.NotEmpty(t, token)

	const newPassword = "NewPassword456"
	require.NoError(t, f.uc.UpdatePass(context.Background(), verifier, token, newPassword))

	// Old password no longer works, new one does.
	_, _, _, err = f.uc.Login(context.Background(), "alice@example.com", testPassword)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	logged, _, _, err := f.uc.Login(context.Background(), "alice@example.com", newPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	// The reset credential is single-use.
	err = f.uc.UpdatePass(context.Background(), verifier, token, "AnotherPass789")
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestUpdatePassInvalidToken(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice@example.com")

	err := f.uc.UpdatePass(context.Background(), "bogus-verifier", "bogus-token", "NewPassword456")
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestRefreshTokenRotation(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice@example.com")
	_, _, refreshToken, err := f.uc.Login(context.Background(), "alice@example.com", testPassword)
	require.NoError(t, err)

	newAccess, newRefresh, err := f.uc.RefreshToken(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)

	// The rotated-out token no longer matches the stored hash.
	_, _, err = f.uc.RefreshToken(context.Background(), refreshToken)
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestOperationsWithoutUserBackend(t *testing.T) {
	// FS mode: no user or token repository is available.
	jwtService := jwt.NewJWTService(jwt.NewJWTManager("test-secret"))
	uc := usecase.NewUserUsecase(
		nil, nil,
		passwordservice.NewHasher(), jwtService, &capturingMail{},
		logger.NewStdLogger(), &stubConfig{}, validator.NewValidator(),
		uuidgen.NewGenerator(), randomgenerator.NewRandomGenerator(),
	)

	_, err := uc.Register(context.Background(), "alice@example.com", testPassword, "", "")
	assert.ErrorIs(t, err, entity.ErrBackendUnavailable)
	_, _, _, err = uc.Login(context.Background(), "alice@example.com", testPassword)
	assert.ErrorIs(t, err, entity.ErrBackendUnavailable)
	_, err = uc.GetAllUsers(context.Background())
	assert.ErrorIs(t, err, entity.ErrBackendUnavailable)
	_, err = uc.DeleteInactive(context.Background())
	assert.ErrorIs(t, err, entity.ErrBackendUnavailable)
}

func TestCurrentUser(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice@example.com")

	pub, err := f.uc.CurrentUser(context.Background(), &entity.Principal{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, user.Email, pub.Email)

	_, err = f.uc.CurrentUser(context.Background(), nil)
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
}

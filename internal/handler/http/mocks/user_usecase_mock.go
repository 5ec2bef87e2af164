package mocks

import (
	"context"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	FailRegister       error
	FailLogin          error
	FailLogout         error
	FailCurrentUser    error
	FailGetAllUsers    error
	FailRefreshToken   error
	FailResetPass      error
	FailUpdatePass     error
	FailTogglePremium  error
	FailDeleteInactive error
	FailDeleteUser     error
	FailLoginWithOAuth error

	// Return values
	MockUser          entity.User
	MockAccessToken   string
	MockRefreshToken  string
	MockDeletedCount  int64
	LogoutCalls       int
	DeleteUserCalls   []string
	TogglePremiumUIDs []string
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Email: "test@example.com",
			Role:  entity.UserRoleUser,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, email, password, firstName, lastName string) (*entity.User, error) {
	if m.FailRegister != nil {
		return nil, m.FailRegister
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.FailLogin != nil {
		return nil, "", "", m.FailLogin
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, provider, providerID, email, firstName, lastName string) (*entity.User, string, string, error) {
	if m.FailLoginWithOAuth != nil {
		return nil, "", "", m.FailLoginWithOAuth
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, userID string) error {
	m.LogoutCalls++
	return m.FailLogout
}

func (m *MockUserUsecase) CurrentUser(ctx context.Context, principal *entity.Principal) (*entity.PublicUser, error) {
	if m.FailCurrentUser != nil {
		return nil, m.FailCurrentUser
	}
	if principal == nil {
		return nil, entity.ErrUnauthenticated
	}
	pub := m.MockUser.Public()
	return &pub, nil
}

func (m *MockUserUsecase) GetAllUsers(ctx context.Context) ([]entity.PublicUser, error) {
	if m.FailGetAllUsers != nil {
		return nil, m.FailGetAllUsers
	}
	return []entity.PublicUser{m.MockUser.Public()}, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.FailRefreshToken != nil {
		return "", "", m.FailRefreshToken
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) ResetPass(ctx context.Context, email string) error {
	return m.FailResetPass
}

func (m *MockUserUsecase) UpdatePass(ctx context.Context, verifier, resetToken, newPassword string) error {
	return m.FailUpdatePass
}

func (m *MockUserUsecase) TogglePremium(ctx context.Context, userID string) (*entity.User, error) {
	if m.FailTogglePremium != nil {
		return nil, m.FailTogglePremium
	}
	m.TogglePremiumUIDs = append(m.TogglePremiumUIDs, userID)
	user := m.MockUser
	user.Premium = !user.Premium
	return &user, nil
}

func (m *MockUserUsecase) DeleteInactive(ctx context.Context) (int64, error) {
	if m.FailDeleteInactive != nil {
		return 0, m.FailDeleteInactive
	}
	return m.MockDeletedCount, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if m.FailDeleteUser != nil {
		return m.FailDeleteUser
	}
	m.DeleteUserCalls = append(m.DeleteUserCalls, userID)
	return nil
}

package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	handlerHttp "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/middleware"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeJWTService resolves the single fixed token "user-token".
type fakeJWTService struct{}

func (f *fakeJWTService) GenerateAccessToken(user *entity.User) (string, error) {
	return "user-token", nil
}

func (f *fakeJWTService) GenerateRefreshToken(userID string) (string, error) {
	return "refresh-token", nil
}

func (f *fakeJWTService) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	if tokenStr == "user-token" {
		return &entity.Claims{UserID: "u1", Email: "u1@example.com", Role: entity.UserRoleUser}, nil
	}
	return nil, errors.New("invalid token")
}

func (f *fakeJWTService) ParseRefreshToken(tokenStr string) (*entity.Claims, error) {
	return nil, errors.New("not implemented")
}

func setupHandler(mock *mocks.MockUserUsecase) (*gin.Engine, *handlerHttp.UserHandler) {
	r := gin.New()
	r.Use(middleware.Attach(&fakeJWTService{}))
	return r, handlerHttp.NewUserHandler(mock)
}

func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := nethttp.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.POST("/register", h.Register)

	w := doJSON(r, "POST", "/register", gin.H{"email": "new@example.com", "password": "Password123"}, "")
	assert.Equal(t, nethttp.StatusCreated, w.Code)
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.FailRegister = entity.ErrDuplicateAccount
	r, h := setupHandler(mock)
	r.POST("/register", h.Register)

	w := doJSON(r, "POST", "/register", gin.H{"email": "dup@example.com", "password": "Password123"}, "")
	assert.Equal(t, nethttp.StatusConflict, w.Code)
}

func TestRegisterHandlerBadPayload(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.POST("/register", h.Register)

	w := doJSON(r, "POST", "/register", gin.H{"email": "not-an-email", "password": "short"}, "")
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
}

func TestLoginHandlerSetsSessionCookie(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.POST("/login", h.Login)

	w := doJSON(r, "POST", "/login", gin.H{"email": "test@example.com", "password": "Password123"}, "")
	require.Equal(t, nethttp.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mock_access_token", resp["access_token"])
	assert.Equal(t, "mock_refresh_token", resp["refresh_token"])

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AccessTokenCookie, cookies[0].Name)
	assert.Equal(t, "mock_access_token", cookies[0].Value)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.FailLogin = entity.ErrInvalidCredentials
	r, h := setupHandler(mock)
	r.POST("/login", h.Login)

	w := doJSON(r, "POST", "/login", gin.H{"email": "test@example.com", "password": "Wrong1234"}, "")
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginHandlerBackendUnavailable(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.FailLogin = entity.ErrBackendUnavailable
	r, h := setupHandler(mock)
	r.POST("/login", h.Login)

	w := doJSON(r, "POST", "/login", gin.H{"email": "test@example.com", "password": "Password123"}, "")
	assert.Equal(t, nethttp.StatusServiceUnavailable, w.Code)
}

func TestLogoutHandler(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.POST("/logout", h.Logout)

	// With a session: the usecase is invoked and the cookie cleared.
	w := doJSON(r, "POST", "/logout", nil, "user-token")
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, 1, mock.LogoutCalls)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AccessTokenCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)

	// Repeating the call still succeeds.
	w = doJSON(r, "POST", "/logout", nil, "user-token")
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, 2, mock.LogoutCalls)

	// Without a principal the handler succeeds without touching the usecase.
	w = doJSON(r, "POST", "/logout", nil, "")
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, 2, mock.LogoutCalls)
}

func TestCurrentUserHandler(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.GET("/currentUser", h.CurrentUser)

	w := doJSON(r, "GET", "/currentUser", nil, "user-token")
	require.Equal(t, nethttp.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test@example.com", resp["email"])
	// The public projection never carries the stored secret.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestCurrentUserHandlerAnonymous(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.GET("/currentUser", h.CurrentUser)

	w := doJSON(r, "GET", "/currentUser", nil, "")
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestGetAllUsersHandler(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.GET("/users", h.GetAllUsers)

	w := doJSON(r, "GET", "/users", nil, "user-token")
	require.Equal(t, nethttp.StatusOK, w.Code)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "test@example.com", resp[0]["email"])
}

func TestTogglePremiumHandler(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.PUT("/premium/:uid", h.TogglePremium)

	w := doJSON(r, "PUT", "/premium/u42", nil, "user-token")
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, []string{"u42"}, mock.TogglePremiumUIDs)
}

func TestDeleteUserHandler(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.DELETE("/deleteUser/:uid", h.DeleteUser)

	w := doJSON(r, "DELETE", "/deleteUser/u42", nil, "user-token")
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, []string{"u42"}, mock.DeleteUserCalls)
}

func TestDeleteUserHandlerNotFound(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.FailDeleteUser = entity.ErrNotFound
	r, h := setupHandler(mock)
	r.DELETE("/deleteUser/:uid", h.DeleteUser)

	w := doJSON(r, "DELETE", "/deleteUser/missing", nil, "user-token")
	assert.Equal(t, nethttp.StatusNotFound, w.Code)
}

func TestDeleteInactiveHandler(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.MockDeletedCount = 3
	r, h := setupHandler(mock)
	r.DELETE("/deleteInactive", h.DeleteInactive)

	w := doJSON(r, "DELETE", "/deleteInactive", nil, "user-token")
	require.Equal(t, nethttp.StatusOK, w.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp["deleted"])
}

func TestDeleteInactiveHandlerNoStaleAccounts(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.DELETE("/deleteInactive", h.DeleteInactive)

	w := doJSON(r, "DELETE", "/deleteInactive", nil, "user-token")
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":0}`, w.Body.String())
}

func TestRefreshTokenHandler(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.POST("/refreshToken", h.RefreshToken)

	w := doJSON(r, "POST", "/refreshToken", gin.H{"refresh_token": "old-refresh"}, "")
	require.Equal(t, nethttp.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mock_access_token", resp["access_token"])
}

func TestRefreshTokenHandlerInvalid(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.FailRefreshToken = entity.ErrInvalidToken
	r, h := setupHandler(mock)
	r.POST("/refreshToken", h.RefreshToken)

	w := doJSON(r, "POST", "/refreshToken", gin.H{"refresh_token": "stale"}, "")
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestResetPasswordHandler(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	r, h := setupHandler(mock)
	r.POST("/resetPassword", h.ResetPassword)

	w := doJSON(r, "POST", "/resetPassword", gin.H{"email": "test@example.com"}, "")
	assert.Equal(t, nethttp.StatusOK, w.Code)
}

func TestNewPasswordHandlerInvalidToken(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.FailUpdatePass = entity.ErrInvalidToken
	r, h := setupHandler(mock)
	r.PUT("/newPassword", h.NewPassword)

	w := doJSON(r, "PUT", "/newPassword", gin.H{"verifier": "v", "token": "t", "password": "Password123"}, "")
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

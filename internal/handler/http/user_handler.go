package http

import (
	"net/http"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/dto"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/middleware"
	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
	"github.com/gin-gonic/gin"
)

// UserHandlerInterface defines the methods for user handler to allow
// interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	CurrentUser(*gin.Context)
	GetAllUsers(*gin.Context)
	RefreshToken(*gin.Context)
	ResetPassword(*gin.Context)
	NewPassword(*gin.Context)
	TogglePremium(*gin.Context)
	DeleteInactive(*gin.Context)
	DeleteUser(*gin.Context)
}

var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Register handles user registration (signup)
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	_, err := h.userUsecase.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	MessageHandler(c, http.StatusCreated, "User created successfully")
}

// Login handles local-credential authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	_, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	setSessionCookie(c, accessToken)
	SuccessHandler(c, http.StatusOK, dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout closes the current session. Calling it with no live session still
// succeeds.
func (h *UserHandler) Logout(c *gin.Context) {
	if p, ok := middleware.PrincipalFromContext(c); ok {
		if err := h.userUsecase.Logout(c.Request.Context(), p.UserID); err != nil {
			DomainErrorHandler(c, err)
			return
		}
	}
	clearSessionCookie(c)
	MessageHandler(c, http.StatusOK, "Logged out")
}

// CurrentUser returns the authenticated principal's public projection.
func (h *UserHandler) CurrentUser(c *gin.Context) {
	principal, _ := middleware.PrincipalFromContext(c)
	user, err := h.userUsecase.CurrentUser(c.Request.Context(), principal)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// GetAllUsers lists every account (admin only).
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userUsecase.GetAllUsers(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

// RefreshToken rotates a refresh token into a new session pair.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	accessToken, refreshToken, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	setSessionCookie(c, accessToken)
	SuccessHandler(c, http.StatusOK, dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// ResetPassword issues a password-reset credential and mails the link.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.ResetPass(c.Request.Context(), req.Email); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Password reset email sent")
}

// NewPassword consumes a reset credential and stores the new password.
func (h *UserHandler) NewPassword(c *gin.Context) {
	var req dto.NewPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.UpdatePass(c.Request.Context(), req.Verifier, req.Token, req.Password); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Password updated")
}

// TogglePremium flips the premium flag on the target user (admin only).
func (h *UserHandler) TogglePremium(c *gin.Context) {
	uid := c.Param("uid")
	user, err := h.userUsecase.TogglePremium(c.Request.Context(), uid)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user.Public())
}

// DeleteInactive removes every stale account (admin only).
func (h *UserHandler) DeleteInactive(c *gin.Context) {
	count, err := h.userUsecase.DeleteInactive(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CountResponse{Deleted: count})
}

// DeleteUser removes one account (admin only).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	uid := c.Param("uid")
	if err := h.userUsecase.DeleteUser(c.Request.Context(), uid); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted")
}

func setSessionCookie(c *gin.Context, accessToken string) {
	c.SetCookie(middleware.AccessTokenCookie, accessToken, 15*60, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
}

package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/dto"
	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

const oauthStateCookie = "oauthState"

// AuthHandler completes federated logins. The identity providers do the
// credential verification; this handler only consumes the verified assertion
// (provider + external subject id + email) and opens a session.
type AuthHandler struct {
	UserUseCase usecasecontract.IUserUseCase
	BaseURL     string
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, baseURL string) *AuthHandler {
	return &AuthHandler{
		UserUseCase: uc,
		BaseURL:     baseURL,
	}
}

func (h *AuthHandler) githubOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		RedirectURL:  h.BaseURL + "/github/callback",
		Scopes:       []string{"user:email"},
		Endpoint:     github.Endpoint,
	}
}

func (h *AuthHandler) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  h.BaseURL + "/oauth2/redirect/accounts.google.com",
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// HandleGitHubLogin begins the GitHub flow.
func (h *AuthHandler) HandleGitHubLogin(c *gin.Context) {
	h.redirectToProvider(c, h.githubOauthConfig())
}

// HandleGoogleLogin begins the Google flow.
func (h *AuthHandler) HandleGoogleLogin(c *gin.Context) {
	h.redirectToProvider(c, h.googleOauthConfig())
}

func (h *AuthHandler) redirectToProvider(c *gin.Context, conf *oauth2.Config) {
	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, conf.AuthCodeURL(state))
}

// HandleGitHubCallback completes the GitHub flow.
func (h *AuthHandler) HandleGitHubCallback(c *gin.Context) {
	conf := h.githubOauthConfig()
	token, ok := h.exchange(c, conf)
	if !ok {
		return
	}

	requestCtx := c.Request.Context()
	client := conf.Client(requestCtx, token)

	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to get user info: %v", err))
		return
	}
	defer resp.Body.Close()

	var ghUser struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ghUser); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to decode user info: %v", err))
		return
	}

	// GitHub hides the email unless the profile exposes it; fall back to the
	// primary address from the emails endpoint.
	if ghUser.Email == "" {
		emailResp, err := client.Get("https://api.github.com/user/emails")
		if err == nil {
			defer emailResp.Body.Close()
			var emails []struct {
				Email   string `json:"email"`
				Primary bool   `json:"primary"`
			}
			if err := json.NewDecoder(emailResp.Body).Decode(&emails); err == nil {
				for _, e := range emails {
					if e.Primary {
						ghUser.Email = e.Email
						break
					}
				}
			}
		}
	}
	if ghUser.Email == "" {
		ErrorHandler(c, http.StatusBadGateway, "identity provider returned no email")
		return
	}

	h.completeLogin(c, entity.ProviderGitHub, fmt.Sprintf("%d", ghUser.ID), ghUser.Email, ghUser.Name, "")
}

// HandleGoogleCallback completes the Google flow.
func (h *AuthHandler) HandleGoogleCallback(c *gin.Context) {
	conf := h.googleOauthConfig()
	token, ok := h.exchange(c, conf)
	if !ok {
		return
	}

	requestCtx := c.Request.Context()
	client := conf.Client(requestCtx, token)

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to get user info: %v", err))
		return
	}
	defer resp.Body.Close()

	var gUser struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&gUser); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to decode user info: %v", err))
		return
	}
	if gUser.Email == "" {
		ErrorHandler(c, http.StatusBadGateway, "identity provider returned no email")
		return
	}

	h.completeLogin(c, entity.ProviderGoogle, gUser.ID, gUser.Email, gUser.GivenName, gUser.FamilyName)
}

// exchange verifies the CSRF state and trades the authorization code for a
// provider token.
func (h *AuthHandler) exchange(c *gin.Context, conf *oauth2.Config) (*oauth2.Token, bool) {
	state := c.Query("state")
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(c, http.StatusUnauthorized, "invalid CSRF state token")
		return nil, false
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		ErrorHandler(c, http.StatusBadRequest, "authorization code not provided")
		return nil, false
	}

	token, err := conf.Exchange(c.Request.Context(), code)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to exchange authorization code: %v", err))
		return nil, false
	}
	return token, true
}

func (h *AuthHandler) completeLogin(c *gin.Context, provider, providerID, email, firstName, lastName string) {
	_, accessToken, refreshToken, err := h.UserUseCase.LoginWithOAuth(c.Request.Context(), provider, providerID, email, firstName, lastName)
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

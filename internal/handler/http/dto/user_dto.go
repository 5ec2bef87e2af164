package dto

// RegisterRequest is the registration payload. Field shape is validated here
// by the binding layer; the usecase re-checks only email format and password
// strength.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// LoginRequest is the local-credential login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest starts the password-reset flow.
type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// NewPasswordRequest consumes a password-reset credential.
type NewPasswordRequest struct {
	Verifier string `json:"verifier" binding:"required"`
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshTokenRequest rotates a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

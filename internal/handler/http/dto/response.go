package dto

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the uniform informational payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued session token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CountResponse reports how many records an operation affected.
type CountResponse struct {
	Deleted int64 `json:"deleted"`
}

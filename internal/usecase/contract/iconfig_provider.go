package usecasecontract

import "time"

// IConfigProvider exposes the configuration values the usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetRefreshTokenExpiry() time.Duration
	GetPasswordResetTokenExpiry() time.Duration
	GetInactivityThreshold() time.Duration
}

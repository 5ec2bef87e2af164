package externalservices

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
)

// EmailService sends mail over SMTP. Used for password-reset links.
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
}

// NewEmailService creates an EmailService from SMTP settings.
func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
	}
}

var _ contract.IEmailService = (*EmailService)(nil)

// SendEmail sends a plain-text message.
func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf(
			"To: %s\r\n"+
				"From: %s\r\n"+
				"Subject: %s\r\n"+
				"\r\n"+
				"%s\r\n",
			to, es.From, subject, body,
		),
	)

	auth := smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	if err := smtp.SendMail(addr, auth, es.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

package contract

import (
	"context"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

type IChatRepository interface {
	// CreateMessage stores a chat message.
	CreateMessage(ctx context.Context, msg *entity.ChatMessage) error
	// GetAllMessages returns the stored chat history, oldest first.
	GetAllMessages(ctx context.Context) ([]*entity.ChatMessage, error)
}

package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
)

// ChatUsecase persists and lists store chat messages. The chat repository is
// Mongo-only; under the FS backend every operation fails with
// entity.ErrBackendUnavailable.
type ChatUsecase struct {
	chatRepo      contract.IChatRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

func NewChatUsecase(chatRepo contract.IChatRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *ChatUsecase {
	return &ChatUsecase{
		chatRepo:      chatRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

func (uc *ChatUsecase) PostMessage(ctx context.Context, userEmail, message string) (*entity.ChatMessage, error) {
	if uc.chatRepo == nil {
		return nil, entity.ErrBackendUnavailable
	}
	msg := &entity.ChatMessage{
		ID:        uc.uuidGenerator.NewUUID(),
		UserEmail: userEmail,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := uc.chatRepo.CreateMessage(ctx, msg); err != nil {
		uc.logger.Errorf("failed to store chat message: %v", err)
		return nil, errors.New("failed to store chat message")
	}
	return msg, nil
}

func (uc *ChatUsecase) GetHistory(ctx context.Context) ([]*entity.ChatMessage, error) {
	if uc.chatRepo == nil {
		return nil, entity.ErrBackendUnavailable
	}
	return uc.chatRepo.GetAllMessages(ctx)
}

package http

import (
	"net/http"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/dto"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/middleware"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUsecase *usecase.ChatUsecase
}

func NewChatHandler(chatUsecase *usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req dto.ChatMessageRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	email := ""
	if p, ok := middleware.PrincipalFromContext(c); ok {
		email = p.Email
	}

	msg, err := h.chatUsecase.PostMessage(c.Request.Context(), email, req.Message)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, msg)
}

func (h *ChatHandler) GetHistory(c *gin.Context) {
	messages, err := h.chatUsecase.GetHistory(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, messages)
}

package http

import (
	"net/http"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/middleware"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartUsecase *usecase.CartUsecase
}

func NewCartHandler(cartUsecase *usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	userID := ""
	if p, ok := middleware.PrincipalFromContext(c); ok {
		userID = p.UserID
	}
	cart, err := h.cartUsecase.CreateCart(c.Request.Context(), userID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, cart)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartUsecase.GetCartByID(c.Request.Context(), c.Param("cid"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, cart)
}

func (h *CartHandler) AddProduct(c *gin.Context) {
	cart, err := h.cartUsecase.AddProduct(c.Request.Context(), c.Param("cid"), c.Param("pid"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, cart)
}

func (h *CartHandler) RemoveProduct(c *gin.Context) {
	cart, err := h.cartUsecase.RemoveProduct(c.Request.Context(), c.Param("cid"), c.Param("pid"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, cart)
}

func (h *CartHandler) DeleteCart(c *gin.Context) {
	if err := h.cartUsecase.DeleteCart(c.Request.Context(), c.Param("cid")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Cart deleted")
}

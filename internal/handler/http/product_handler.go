package http

import (
	"net/http"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/dto"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/middleware"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productUsecase *usecase.ProductUsecase
}

func NewProductHandler(productUsecase *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	owner := "admin"
	if p, ok := middleware.PrincipalFromContext(c); ok {
		owner = p.Email
	}

	product, err := h.productUsecase.CreateProduct(c.Request.Context(), &entity.Product{
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Owner:       owner,
	})
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, product)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productUsecase.GetProductByID(c.Request.Context(), c.Param("pid"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, product)
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	filter := &contract.ProductFilter{
		Category: c.Query("category"),
		Owner:    c.Query("owner"),
	}
	products, err := h.productUsecase.GetAllProducts(c.Request.Context(), filter)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, products)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	existing, err := h.productUsecase.GetProductByID(c.Request.Context(), c.Param("pid"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Code = req.Code
	existing.Price = req.Price
	existing.Stock = req.Stock
	existing.Category = req.Category
	existing.UpdatedAt = time.Now()

	updated, err := h.productUsecase.UpdateProduct(c.Request.Context(), existing)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productUsecase.DeleteProduct(c.Request.Context(), c.Param("pid")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Product deleted")
}

package dto

// ProductRequest creates or updates a catalog entry.
type ProductRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Code        string  `json:"code" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Category    string  `json:"category"`
}

// ChatMessageRequest posts a message to the store chat.
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

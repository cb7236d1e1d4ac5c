package models

import "github.com/google/uuid"

type QuoteItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Size      string    `json:"size" validate:"max=20"`
	Color     string    `json:"color" validate:"max=50"`
}

type CartQuoteRequest struct {
	Items []QuoteItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

type CartLine struct {
	ProductID uuid.UUID `json:"productId"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
}

type CartQuote struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

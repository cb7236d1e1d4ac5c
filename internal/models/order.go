package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type OrderItem struct {
	ProductID uuid.UUID `json:"product"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

type OrderUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type Order struct {
	ID          uuid.UUID   `json:"id"`
	User        *OrderUser  `json:"user"`
	OrderItems  []OrderItem `json:"orderItems"`
	TotalPrice  float64     `json:"totalPrice"`
	Status      OrderStatus `json:"status"`
	IsDelivered bool        `json:"isDelivered"`
	DeliveredAt *time.Time  `json:"deliveredAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}

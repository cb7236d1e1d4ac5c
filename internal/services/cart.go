package service

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront-api/internal/cart"
	appErrors "github.com/aaravmahajanofficial/storefront-api/internal/errors"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

// CartService prices a client held basket against the live catalog.
// Nothing is persisted; the client owns the cart.
type CartService interface {
	Quote(ctx context.Context, req *models.CartQuoteRequest) (*models.CartQuote, error)
}

type cartService struct {
	products repository.ProductRepository
}

func NewCartService(products repository.ProductRepository) CartService {
	return &cartService{products: products}
}

func (s *cartService) Quote(ctx context.Context, req *models.CartQuoteRequest) (*models.CartQuote, error) {

	ids := make([]uuid.UUID, 0, len(req.Items))
	seen := make(map[uuid.UUID]bool, len(req.Items))
	for _, item := range req.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	byID := make(map[uuid.UUID]*models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	c := cart.New()
	requested := make(map[uuid.UUID]int, len(ids))

	for _, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok || !product.IsActive {
			return nil, appErrors.NotFoundError("Product not found").WithDetail(item.ProductID.String())
		}

		// stock is shared by every size and colour of a product
		requested[product.ID] += item.Quantity
		if requested[product.ID] > product.Stock {
			return nil, appErrors.BadRequestError(fmt.Sprintf("Insufficient stock for %s", product.Name))
		}

		var image string
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		c.Add(cart.Item{
			Key:      cart.Key{ProductID: product.ID, Size: item.Size, Color: item.Color},
			Name:     product.Name,
			Image:    image,
			Price:    product.Price,
			Quantity: item.Quantity,
		})
	}

	lines := make([]models.CartLine, 0, c.Len())
	for _, item := range c.Items() {
		lines = append(lines, models.CartLine{
			ProductID: item.ProductID,
			Size:      item.Size,
			Color:     item.Color,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}

	return &models.CartQuote{
		Items:     lines,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}, nil
}

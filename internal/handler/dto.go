package handler

import (
	"time"

	"github.com/vault93/storefront/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registeredAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		RegisteredAt: u.RegisteredAt.Format(time.RFC3339),
	}
}

// CartItemDTO is the JSON representation of a cart line.
type CartItemDTO struct {
	ProductID string  `json:"productId"`
	Brand     string  `json:"brand"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

func toCartItemDTOs(items []domain.CartItem) []CartItemDTO {
	dtos := make([]CartItemDTO, len(items))
	for i, item := range items {
		dtos[i] = CartItemDTO{
			ProductID: item.ProductID,
			Brand:     item.Brand,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		}
	}
	return dtos
}

// WishlistEntryDTO is the JSON representation of a wishlist entry.
type WishlistEntryDTO struct {
	ProductID string  `json:"productId"`
	Brand     string  `json:"brand"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	AddedAt   string  `json:"addedAt"`
}

func toWishlistEntryDTOs(entries []domain.WishlistEntry) []WishlistEntryDTO {
	dtos := make([]WishlistEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = WishlistEntryDTO{
			ProductID: e.ProductID,
			Brand:     e.Brand,
			Name:      e.Name,
			Price:     e.Price,
			Image:     e.Image,
			AddedAt:   e.AddedAt.Format(time.RFC3339),
		}
	}
	return dtos
}

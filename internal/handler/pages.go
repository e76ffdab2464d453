package handler

import (
	"github.com/vault93/storefront/internal/service"
	"github.com/vault93/storefront/internal/view"
)

// pageData builds the layout state every page shell needs.
func pageData(title string, auth *service.AuthService, cart *service.CartService, wishlist *service.WishlistService) view.PageData {
	data := view.PageData{
		Title:         title,
		LoggedIn:      auth.IsLoggedIn(),
		CartCount:     cart.ItemCount(),
		WishlistCount: wishlist.Count(),
	}
	if session := auth.CurrentUser(); session != nil {
		data.FirstName = session.FirstName
	}
	return data
}

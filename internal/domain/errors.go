package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrAlreadyInWishlist = errors.New("item already in wishlist")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrLoginRequired     = errors.New("login required")
	ErrInvalidInput      = errors.New("invalid input")
)

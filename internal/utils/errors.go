package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken         = errors.New("INVALID_TOKEN")
	ErrInvalidClient        = errors.New("INVALID_CLIENT")
	ErrInvalidIP            = errors.New("INVALID_IP")
	ErrProductNotFound      = errors.New("PRODUCT_NOT_FOUND")
	ErrOrderNotFound        = errors.New("ORDER_NOT_FOUND")
	ErrArtworkNotFound      = errors.New("ARTWORK_NOT_FOUND")
	ErrPaperStockNotFound   = errors.New("PAPER_STOCK_NOT_FOUND")
	ErrSizeNotFound         = errors.New("SIZE_NOT_FOUND")
	ErrQuantityGroupEmpty   = errors.New("QUANTITY_GROUP_EMPTY")
	ErrCustomQtyDisallowed  = errors.New("CUSTOM_QUANTITY_NOT_ALLOWED")
	ErrCustomSizeDisallowed = errors.New("CUSTOM_SIZE_NOT_ALLOWED")
	ErrArtworkNotApproved   = errors.New("ARTWORK_NOT_APPROVED")
	ErrDuplicateSlug        = errors.New("DUPLICATE_SLUG")
	ErrQuoteNotFound        = errors.New("QUOTE_NOT_FOUND")
)

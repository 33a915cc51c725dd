package inventory

import "errors"

var (
	// ErrProductNotFound is returned when no live product matches the given ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateSKU is returned when a create or update would give two live
	// products the same SKU.
	ErrDuplicateSKU = errors.New("sku already exists")
)

// Package inventory holds the product catalog: the record model, field
// validation, and a snapshot-backed store that serializes all mutations.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/ponabinanth/inventory-service/pkg/validator"
)

// Product is a single inventory record. ID is system-generated; SKU is the
// caller-supplied business key, unique among live records.
type Product struct {
	ID        uuid.UUID `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Supplier  string    `json:"supplier"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	MfgDate   string    `json:"mfg_date"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input carries the caller-supplied fields shared by create and update.
type Input struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Supplier string  `json:"supplier"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	MfgDate  string  `json:"mfg_date"`
}

// Validate checks the input against the field rules shared by create and
// update: all text fields required, price strictly positive, quantity never
// negative.
func (in Input) Validate() error {
	return validator.Apply(
		validator.Required("sku", in.SKU),
		validator.Required("name", in.Name),
		validator.Required("category", in.Category),
		validator.Required("supplier", in.Supplier),
		validator.Required("mfg_date", in.MfgDate),
		validator.PositiveAmount("price", in.Price),
		validator.NonNegativeAmount("quantity", in.Quantity),
	)
}

package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ponabinanth/inventory-service/pkg/logger"
	"github.com/ponabinanth/inventory-service/pkg/snapshot"
	"github.com/ponabinanth/inventory-service/pkg/validator"
)

// Store keeps the product collection in memory and mirrors every successful
// mutation to a snapshot file. Mutations run one at a time under the write
// lock and persist before returning; a failed persist rolls the in-memory
// state back so memory and disk never diverge. Reads run concurrently and
// return copies.
type Store struct {
	mu       sync.RWMutex
	products []Product
	snap     *snapshot.Store[[]Product]
	log      *slog.Logger
}

// New creates a store backed by the given snapshot file and loads any
// previously persisted collection into memory.
func New(snap *snapshot.Store[[]Product], log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	products, err := snap.Load()
	if err != nil {
		return nil, fmt.Errorf("load product snapshot: %w", err)
	}

	return &Store{
		products: products,
		snap:     snap,
		log:      log.With(logger.Component("inventory.store")),
	}, nil
}

// Create validates the input, assigns a fresh ID, and appends the product.
// Returns ErrDuplicateSKU when another live product already uses the SKU.
func (s *Store) Create(ctx context.Context, in Input) (Product, error) {
	if err := in.Validate(); err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexBySKU(in.SKU) >= 0 {
		return Product{}, fmt.Errorf("%w: %s", ErrDuplicateSKU, in.SKU)
	}

	product := Product{
		ID:        uuid.New(),
		SKU:       in.SKU,
		Name:      in.Name,
		Category:  in.Category,
		Supplier:  in.Supplier,
		Price:     in.Price,
		Quantity:  in.Quantity,
		MfgDate:   in.MfgDate,
		UpdatedAt: time.Now().UTC(),
	}

	s.products = append(s.products, product)
	if err := s.persist(ctx); err != nil {
		s.products = s.products[:len(s.products)-1]
		return Product{}, err
	}

	s.log.DebugContext(ctx, "product created",
		logger.ProductID(product.ID),
		logger.SKU(product.SKU),
	)
	return product, nil
}

// Update validates the input and replaces every caller-supplied field of the
// product, bumping UpdatedAt. Renaming the SKU onto another live product
// returns ErrDuplicateSKU.
func (s *Store) Update(ctx context.Context, id uuid.UUID, in Input) (Product, error) {
	if err := in.Validate(); err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByID(id)
	if i < 0 {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	if j := s.indexBySKU(in.SKU); j >= 0 && j != i {
		return Product{}, fmt.Errorf("%w: %s", ErrDuplicateSKU, in.SKU)
	}

	prev := s.products[i]
	s.products[i] = Product{
		ID:        prev.ID,
		SKU:       in.SKU,
		Name:      in.Name,
		Category:  in.Category,
		Supplier:  in.Supplier,
		Price:     in.Price,
		Quantity:  in.Quantity,
		MfgDate:   in.MfgDate,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.persist(ctx); err != nil {
		s.products[i] = prev
		return Product{}, err
	}

	s.log.DebugContext(ctx, "product updated",
		logger.ProductID(id),
		logger.SKU(in.SKU),
	)
	return s.products[i], nil
}

// Restock adds delta units to the product's quantity and bumps UpdatedAt.
// Delta must be at least 1.
func (s *Store) Restock(ctx context.Context, id uuid.UUID, delta int) (Product, error) {
	if err := validator.Apply(validator.MinNum("quantity", delta, 1)); err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByID(id)
	if i < 0 {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	prev := s.products[i]
	s.products[i].Quantity += delta
	s.products[i].UpdatedAt = time.Now().UTC()
	if err := s.persist(ctx); err != nil {
		s.products[i] = prev
		return Product{}, err
	}

	s.log.DebugContext(ctx, "product restocked",
		logger.ProductID(id),
		logger.SKU(prev.SKU),
		slog.Int("delta", delta),
		slog.Int("quantity", s.products[i].Quantity),
	)
	return s.products[i], nil
}

// Delete removes the product from the collection.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByID(id)
	if i < 0 {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	removed := s.products[i]
	next := make([]Product, 0, len(s.products)-1)
	next = append(next, s.products[:i]...)
	next = append(next, s.products[i+1:]...)

	old := s.products
	s.products = next
	if err := s.persist(ctx); err != nil {
		s.products = old
		return Product{}, err
	}

	s.log.DebugContext(ctx, "product deleted",
		logger.ProductID(removed.ID),
		logger.SKU(removed.SKU),
	)
	return removed, nil
}

// Get returns a copy of the product with the given ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexByID(id)
	if i < 0 {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return s.products[i], nil
}

// List returns a copy of the whole collection in insertion order.
func (s *Store) List(ctx context.Context) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of live products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.snap.Save(s.products); err != nil {
		s.log.ErrorContext(ctx, "product snapshot write failed", logger.Error(err))
		return fmt.Errorf("persist products: %w", err)
	}
	return nil
}

// indexByID returns the position of the product with the given ID, or -1.
// Callers must hold at least the read lock.
func (s *Store) indexByID(id uuid.UUID) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// indexBySKU returns the position of the product with the given SKU, or -1.
// Callers must hold at least the read lock.
func (s *Store) indexBySKU(sku string) int {
	for i := range s.products {
		if s.products[i].SKU == sku {
			return i
		}
	}
	return -1
}

package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	// ErrUninitializedID is returned when a product identifier is read before the store assigned one.
	ErrUninitializedID = errors.New("product identifier is not initialized")

	// ErrNegativeStock is returned when a stock adjustment receives a negative amount.
	ErrNegativeStock = errors.New("stock amount must not be negative")

	// ErrInsufficientStock is returned when removing more stock than is available.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStockOverflow is returned when an addition would exceed the largest representable quantity.
	ErrStockOverflow = errors.New("stock quantity overflow")

	// ErrInvalidProduct is returned by Validate.
	ErrInvalidProduct = errors.New("invalid product")
)

// Item is implemented by every persisted product variant.
type Item interface {
	Core() *ProductCore
	AddStocks(n int) error
	RemoveStocks(n int) error
	Validate() error
}

// ProductCore holds the fields stored in the shared product table.
type ProductCore struct {
	ID          int64
	Name        string
	Photos      Photos
	Price       int64
	Description string
	Quantity    int
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Core returns the shared product fields.
func (p *ProductCore) Core() *ProductCore {
	return p
}

// IsPersisted reports whether the store assigned an identifier.
func (p *ProductCore) IsPersisted() bool {
	return p.ID != 0
}

// PersistedID returns the stored identifier or ErrUninitializedID.
func (p *ProductCore) PersistedID() (int64, error) {
	if p.ID == 0 {
		return 0, ErrUninitializedID
	}
	return p.ID, nil
}

// InitMeta initializes missing timestamps.
func (p *ProductCore) InitMeta() {
	now := time.Now().UTC().Truncate(time.Second)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}

// Touch sets the update timestamp.
func (p *ProductCore) Touch(now time.Time) {
	p.UpdatedAt = now.UTC().Truncate(time.Second)
}

// AddStocks increases the quantity by n. The quantity is left untouched on error.
func (p *ProductCore) AddStocks(n int) error {
	if n < 0 {
		return fmt.Errorf("cannot add %d: %w", n, ErrNegativeStock)
	}
	if n > math.MaxInt-p.Quantity {
		return fmt.Errorf("cannot add %d to %d: %w", n, p.Quantity, ErrStockOverflow)
	}
	p.Quantity += n
	return nil
}

// RemoveStocks decreases the quantity by n. The quantity is left untouched on error.
func (p *ProductCore) RemoveStocks(n int) error {
	if n < 0 {
		return fmt.Errorf("cannot remove %d: %w", n, ErrNegativeStock)
	}
	if n > p.Quantity {
		return fmt.Errorf("cannot remove %d of %d: %w", n, p.Quantity, ErrInsufficientStock)
	}
	p.Quantity -= n
	return nil
}

// Validate checks the fields shared by every variant.
func (p *ProductCore) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("name is required: %w", ErrInvalidProduct)
	case p.Price < 0:
		return fmt.Errorf("price %d is negative: %w", p.Price, ErrInvalidProduct)
	case p.Quantity < 0:
		return fmt.Errorf("quantity %d is negative: %w", p.Quantity, ErrInvalidProduct)
	case p.CategoryID <= 0:
		return fmt.Errorf("category is required: %w", ErrInvalidProduct)
	}
	return nil
}

// Product is a base product row without a subtype.
type Product struct {
	ProductCore
}

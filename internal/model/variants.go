package model

import "fmt"

// Clothing is a product stored with a matching row in the clothing table.
type Clothing struct {
	ProductCore
	Size        string
	Color       string
	Type        string
	MaterialFee int64
}

// Electronic is a product stored with a matching row in the electronic table.
type Electronic struct {
	ProductCore
	Brand       string
	WarrantyFee int64
}

// Validate checks the shared fields and rejects a negative material fee.
func (c *Clothing) Validate() error {
	if err := c.ProductCore.Validate(); err != nil {
		return err
	}
	if c.MaterialFee < 0 {
		return fmt.Errorf("material fee %d is negative: %w", c.MaterialFee, ErrInvalidProduct)
	}
	return nil
}

// Validate checks the shared fields and rejects a negative warranty fee.
func (e *Electronic) Validate() error {
	if err := e.ProductCore.Validate(); err != nil {
		return err
	}
	if e.WarrantyFee < 0 {
		return fmt.Errorf("warranty fee %d is negative: %w", e.WarrantyFee, ErrInvalidProduct)
	}
	return nil
}

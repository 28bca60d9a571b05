package model

import "time"

// Category groups products. Products is only filled when explicitly loaded.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Products    []*Product
}

// InitMeta initializes missing timestamps.
func (c *Category) InitMeta() {
	now := time.Now().UTC().Truncate(time.Second)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
}

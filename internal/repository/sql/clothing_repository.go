package sql

import (
	"database/sql"

	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
)

const insertClothingQuery = `INSERT INTO clothing (product_id, size, color, type, material_fee) VALUES (?, ?, ?, ?, ?)`

var clothingTable = productTable[*model.Clothing]{
	kind: "clothing",
	selectSQL: `SELECT ` + productColumns + `, c.size, c.color, c.type, c.material_fee
	          FROM product p
	          JOIN clothing c ON c.product_id = p.id`,
	insertSQL: insertClothingQuery,
	upsertSQL: insertClothingQuery + ` ON CONFLICT(product_id) DO UPDATE SET
	          size = excluded.size, color = excluded.color, type = excluded.type, material_fee = excluded.material_fee`,
	otherVariantsSQL: `SELECT COUNT(*) FROM electronic WHERE product_id = ?`,
	args: func(c *model.Clothing) []interface{} {
		return []interface{}{c.Size, c.Color, c.Type, c.MaterialFee}
	},
	scan: scanClothing,
}

// ClothingRepository persists clothing items across the product and clothing tables.
type ClothingRepository struct {
	productStore[*model.Clothing]
}

var _ repository.ProductStore[*model.Clothing] = (*ClothingRepository)(nil)

// NewClothingRepository creates a new ClothingRepository instance.
func NewClothingRepository(db *sql.DB) *ClothingRepository {
	return &ClothingRepository{productStore[*model.Clothing]{db: db, table: clothingTable}}
}

func scanClothing(row rowScanner) (*model.Clothing, error) {
	var clothing model.Clothing
	cr := coreRow{core: &clothing.ProductCore}
	dest := append(cr.dest(), &clothing.Size, &clothing.Color, &clothing.Type, &clothing.MaterialFee)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if err := cr.finish(); err != nil {
		return nil, err
	}
	return &clothing, nil
}

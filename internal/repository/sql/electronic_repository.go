package sql

import (
	"database/sql"

	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
)

const insertElectronicQuery = `INSERT INTO electronic (product_id, brand, warranty_fee) VALUES (?, ?, ?)`

var electronicTable = productTable[*model.Electronic]{
	kind: "electronic",
	selectSQL: `SELECT ` + productColumns + `, e.brand, e.warranty_fee
	          FROM product p
	          JOIN electronic e ON e.product_id = p.id`,
	insertSQL: insertElectronicQuery,
	upsertSQL: insertElectronicQuery + ` ON CONFLICT(product_id) DO UPDATE SET
	          brand = excluded.brand, warranty_fee = excluded.warranty_fee`,
	otherVariantsSQL: `SELECT COUNT(*) FROM clothing WHERE product_id = ?`,
	args: func(e *model.Electronic) []interface{} {
		return []interface{}{e.Brand, e.WarrantyFee}
	},
	scan: scanElectronic,
}

// ElectronicRepository persists electronic items across the product and electronic tables.
type ElectronicRepository struct {
	productStore[*model.Electronic]
}

var _ repository.ProductStore[*model.Electronic] = (*ElectronicRepository)(nil)

// NewElectronicRepository creates a new ElectronicRepository instance.
func NewElectronicRepository(db *sql.DB) *ElectronicRepository {
	return &ElectronicRepository{productStore[*model.Electronic]{db: db, table: electronicTable}}
}

func scanElectronic(row rowScanner) (*model.Electronic, error) {
	var electronic model.Electronic
	cr := coreRow{core: &electronic.ProductCore}
	dest := append(cr.dest(), &electronic.Brand, &electronic.WarrantyFee)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if err := cr.finish(); err != nil {
		return nil, err
	}
	return &electronic, nil
}

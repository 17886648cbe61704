package catalog

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Product is a storefront listing. Discount is a percentage in [0,100];
// Discount and StockQuantity are 0 when the API omits them.
type Product struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	ImageURL      string          `json:"image_url" yaml:"image_url"`
	Price         decimal.Decimal `json:"price" yaml:"price"`
	Discount      int             `json:"discount" yaml:"discount"`
	Category      string          `json:"category" yaml:"category"`
	StockQuantity int             `json:"stock_quantity" yaml:"stock_quantity"`
	Description   string          `json:"description" yaml:"description"`
	SellerID      string          `json:"seller_id" yaml:"seller_id"`
}

// ProductList is a tolerant decode of the products returned by one call.
type ProductList = Batch[Product]

func (p Product) identity() string { return p.ID }

func decodeProduct(f fields) (Product, error) {
	var (
		p   Product
		err error
	)
	if p.ID, err = f.requiredID(); err != nil {
		return Product{}, err
	}
	if p.Name, err = f.requiredString("name"); err != nil {
		return Product{}, err
	}
	if p.ImageURL, err = f.requiredString("image_url"); err != nil {
		return Product{}, err
	}
	if p.Price, err = f.requiredDecimal("price"); err != nil {
		return Product{}, err
	}
	if p.Price.IsNegative() {
		return Product{}, errors.Errorf("price %s is negative", p.Price)
	}

	if p.Discount, err = f.optionalInt("discount"); err != nil {
		return Product{}, err
	}
	if p.Discount < 0 || p.Discount > 100 {
		return Product{}, errors.Errorf("discount %d is outside [0,100]", p.Discount)
	}
	if p.StockQuantity, err = f.optionalInt("stock_quantity"); err != nil {
		return Product{}, err
	}
	if p.StockQuantity < 0 {
		return Product{}, errors.Errorf("stock quantity %d is negative", p.StockQuantity)
	}
	p.Category = f.optionalString("category")
	p.Description = f.optionalString("description")
	p.SellerID = f.optionalString("seller_id")
	return p, nil
}

package models

// Product represents a product record. ShopID references the owning shop
// and is immutable after creation; it is not validated for existence.
// Price intentionally carries no positivity constraint here: creation
// accepts any numeric price, only updates reject non-positive values.
type Product struct {
	ID     string  `json:"id" validate:"required,uuid"`
	ShopID string  `json:"shop_id" validate:"required,uuid"`
	Name   string  `json:"name" validate:"required,min=1"`
	Price  float64 `json:"price" validate:"required"`
}

// Validate validates the product data against its struct tags.
func (p *Product) Validate() error {
	return validate.Struct(p)
}

// ProductList is the payload returned by list-all and query-by-shop.
type ProductList struct {
	Count    int        `json:"count"`
	Products []*Product `json:"products"`
}

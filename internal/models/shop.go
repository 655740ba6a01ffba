package models

// Shop represents a shop record. Name is the only mutable field; ID is
// generated at creation and never changes.
type Shop struct {
	ID   string `json:"id" validate:"required,uuid"`
	Name string `json:"name" validate:"required,min=1"`
}

// Validate validates the shop data against its struct tags.
func (s *Shop) Validate() error {
	return validate.Struct(s)
}

// ShopList is the payload returned by the list-all operation.
type ShopList struct {
	Count int     `json:"count"`
	Shops []*Shop `json:"shops"`
}

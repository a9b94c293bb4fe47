package model

// Product is the catalog write schema. Pointer fields distinguish an absent
// value from a zero value so that a price of 0 passes validation while a
// missing price does not.
type Product struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Image       *string  `json:"image"`
	InStock     *bool    `json:"in_stock"`
}

// ProductView is a catalog row as returned to clients. Stored documents may
// predate the current schema, so optional fields carry defaults when mapped.
type ProductView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       *string `json:"image"`
	InStock     bool    `json:"in_stock"`
}

package model

// OrderItem is a line item embedded in an order. Title, price and image are
// snapshots taken at purchase time: later catalog changes must not alter the
// historical record.
type OrderItem struct {
	ProductID string   `json:"product_id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Quantity  *int     `json:"quantity" validate:"required,gte=1"`
	Image     *string  `json:"image"`
}

// Order is the order intake schema. All monetary fields are supplied by the
// caller and persisted verbatim; the service does not recompute or cross-check
// them against the catalog.
type Order struct {
	Items    []OrderItem `json:"items" validate:"required,min=1,dive"`
	Subtotal *float64    `json:"subtotal" validate:"required,gte=0"`
	Shipping *float64    `json:"shipping" validate:"required,gte=0"`
	Tax      *float64    `json:"tax" validate:"required,gte=0"`
	Total    *float64    `json:"total" validate:"required,gte=0"`

	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerEmail string  `json:"customer_email" validate:"required"`
	AddressLine1  string  `json:"address_line1" validate:"required"`
	AddressLine2  *string `json:"address_line2"`
	City          string  `json:"city" validate:"required"`
	State         string  `json:"state" validate:"required"`
	PostalCode    string  `json:"postal_code" validate:"required"`
	Country       string  `json:"country" validate:"required"`
}

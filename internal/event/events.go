package event

const (
	TopicProductCreated = "product.created"
	TopicOrderReceived  = "order.received"
)

type ProductCreatedEvent struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
}

type OrderReceivedEvent struct {
	OrderID       string  `json:"order_id"`
	ItemCount     int     `json:"item_count"`
	Total         float64 `json:"total"`
	CustomerEmail string  `json:"customer_email"`
}

package domain

// LineItem is one row of the cart: a single product id and its quantity.
// Quantity is always at least 1; a product appears in at most one line.
type LineItem struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

// Cart is the snapshot handed to presentation layers. Items keep their
// insertion order.
type Cart struct {
	Items []LineItem `json:"items"`
}

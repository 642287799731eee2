package domain

// Line is one priced row of the order summary.
type Line struct {
	ProductID int     `json:"productId"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// Summary is the checkout view of the cart: every line priced from the
// catalog, plus the flat-shipping totals.
type Summary struct {
	Lines    []Line  `json:"lines"`
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

package order

// OrderLine is one (item, quantity) pair of an incoming order.
type OrderLine struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

// PricingResult is produced once per pricing call and never stored.
type PricingResult struct {
	TotalPrice float64 `json:"totalPrice"`
}

package domain

// CartItem is one staged order line, keyed uniquely by ProductID within a
// cart session.
type CartItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

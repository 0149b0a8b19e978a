package domain

// CartEntry is one (product id, quantity) pair from a session's cart, in
// insertion order. The key is a string; it is only resolved against the
// catalog at pricing time.
type CartEntry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartLine is a priced cart entry joined against the catalog. Entries whose
// product no longer resolves are dropped before this view is built.
type CartLine struct {
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
	TotalCents int64   `json:"lineTotalCents"`
}

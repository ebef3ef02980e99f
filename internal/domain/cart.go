package domain

// CartItem is a client-side cart line. Items are keyed by product id and
// unique per cart; Quantity is always > 0 (a non-positive quantity triggers
// removal at the cart manager level).
type CartItem struct {
	ID       string  `json:"id"` // product id as string
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
	Category string  `json:"category,omitempty"`
}

// RemoteCartItem is a cart line as the backend cart service returns it.
type RemoteCartItem struct {
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// RemoteCart is the server-side cart aggregate.
type RemoteCart struct {
	ID    int64            `json:"id"`
	Items []RemoteCartItem `json:"items"`
	Total float64          `json:"total"`
}

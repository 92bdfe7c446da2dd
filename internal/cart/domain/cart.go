package domain

// LineItem is one product-quantity pairing within a cart. It carries a full
// copy of the product's display fields so the cart can render without
// re-fetching the catalog. Prices are in minor units (cents).
type LineItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"price"`
	Quantity  int32  `json:"quantity"`
	Category  string `json:"category,omitempty"`
	Image     string `json:"image,omitempty"`
}

// Cart is the ordered set of line items one session intends to buy.
// At most one line item exists per product ID.
type Cart struct {
	SessionID string     `json:"-"`
	Items     []LineItem `json:"items"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total is the sum of unit price times quantity over all lines, in cents.
func (c Cart) Total() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.UnitPrice * int64(it.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, not the number of lines.
func (c Cart) ItemCount() int {
	var n int
	for _, it := range c.Items {
		n += int(it.Quantity)
	}
	return n
}

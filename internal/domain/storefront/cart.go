package storefront

import (
	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CartLine is one product-quantity pairing in a shopping cart.
// Title, price, and image are snapshots taken when the product was
// first added; later catalog edits do not touch existing lines.
type CartLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns unit price times quantity for this line
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the line items of one anonymous browsing session.
// Invariants: no two lines share a product ID, and no line has a
// quantity below 1 (a zero quantity removes the line instead).
// The zero value is a usable empty cart.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{Lines: make([]CartLine, 0)}
}

// AddItem adds one unit of the product to the cart. If a line for the
// product already exists its quantity is incremented; otherwise a new
// line with quantity 1 is created from a snapshot of the product's
// current title, price, and image. It cannot fail.
func (c *Cart) AddItem(product *catalog.Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID: product.ID,
		Title:     product.Title,
		UnitPrice: product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  1,
	})
}

// SetQuantity sets the absolute quantity of the line for productID.
// A quantity of zero or less removes the line; removing an absent
// line is a no-op, so the operation is idempotent.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Quantity = quantity
		}
		return
	}
}

// Clone returns a deep copy of the cart. Lines are value types, so
// copying the slice is enough to detach the clone from the original.
func (c *Cart) Clone() *Cart {
	clone := &Cart{Lines: make([]CartLine, len(c.Lines))}
	copy(clone.Lines, c.Lines)
	return clone
}

// Line returns the line for productID, or false if none exists
func (c *Cart) Line(productID uuid.UUID) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return CartLine{}, false
}

// Total returns the sum of line totals as an exact decimal.
// Rounding happens only at display time.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// ItemCount returns the sum of line quantities
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

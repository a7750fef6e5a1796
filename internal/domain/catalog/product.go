package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents one catalog entry of a store.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.StoreAggregateRoot
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ImageURL    string          `gorm:"type:varchar(500)"`
	Category    string          `gorm:"type:varchar(100);index"`
	Visible     bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new visible product
func NewProduct(storeID uuid.UUID, title string, price decimal.Decimal) (*Product, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Title:              title,
		Price:              price,
		Visible:            true,
	}, nil
}

// Update updates the product's title and description
func (p *Product) Update(title, description string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if len(description) > 2000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 2000 characters")
	}

	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrice sets the unit price.
// Carts that already hold this product keep the price they snapshotted
// at add time; only future adds see the new price.
func (p *Product) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}

	p.Price = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetImageURL sets the product image reference
func (p *Product) SetImageURL(imageURL string) error {
	if len(imageURL) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}

	p.ImageURL = imageURL
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCategory sets the category label; empty clears it
func (p *Product) SetCategory(category string) error {
	category = strings.TrimSpace(category)
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}

	p.Category = category
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Show makes the product visible on the public storefront
func (p *Product) Show() {
	p.setVisible(true)
}

// Hide removes the product from the public storefront without deleting it
func (p *Product) Hide() {
	p.setVisible(false)
}

func (p *Product) setVisible(visible bool) {
	if p.Visible == visible {
		return
	}
	p.Visible = visible
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// HasCategory returns true if the product has a category label
func (p *Product) HasCategory() bool {
	return p.Category != ""
}

// validateTitle validates the product title
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot exceed 200 characters")
	}
	return nil
}

// validatePrice validates the unit price
func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}

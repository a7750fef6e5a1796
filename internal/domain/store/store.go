package store

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopfront/backend/internal/domain/shared"
)

// DefaultCurrency is the display currency assigned to new stores
const DefaultCurrency = "USD"

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Store represents one storefront and its owner-facing settings.
// It is the aggregate root for store configuration and the scoping
// key for everything else in the system.
type Store struct {
	shared.BaseAggregateRoot
	Slug           string `gorm:"type:varchar(50);not null;uniqueIndex"`
	BusinessName   string `gorm:"type:varchar(200);not null"`
	WhatsAppNumber string `gorm:"type:varchar(30)"`
	Currency       string `gorm:"type:varchar(3);not null;default:'USD'"`
	LogoURL        string `gorm:"type:varchar(500)"`
	Email          string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store with default settings
func NewStore(slug, businessName string) (*Store, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if err := validateBusinessName(businessName); err != nil {
		return nil, err
	}

	return &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Slug:              strings.ToLower(slug),
		BusinessName:      businessName,
		Currency:          DefaultCurrency,
	}, nil
}

// Rename updates the public business name
func (s *Store) Rename(businessName string) error {
	if err := validateBusinessName(businessName); err != nil {
		return err
	}

	s.BusinessName = businessName
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetWhatsAppNumber sets the checkout contact number.
// The number is stored as entered; only the digits are used when the
// checkout deep link is built. An empty number is allowed but leaves
// the storefront unable to check out until one is configured.
func (s *Store) SetWhatsAppNumber(number string) error {
	if number != "" && countDigits(number) < 7 {
		return shared.NewDomainError("INVALID_WHATSAPP_NUMBER", "WhatsApp number must contain at least 7 digits")
	}
	if len(number) > 30 {
		return shared.NewDomainError("INVALID_WHATSAPP_NUMBER", "WhatsApp number cannot exceed 30 characters")
	}

	s.WhatsAppNumber = number
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetCurrency sets the display currency code (ISO-like, three letters)
func (s *Store) SetCurrency(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !currencyPattern.MatchString(code) {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency must be a three-letter code")
	}

	s.Currency = code
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetLogoURL sets the branding logo reference
func (s *Store) SetLogoURL(logoURL string) error {
	if len(logoURL) > 500 {
		return shared.NewDomainError("INVALID_LOGO_URL", "Logo URL cannot exceed 500 characters")
	}

	s.LogoURL = logoURL
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetEmail sets the owner contact email
func (s *Store) SetEmail(email string) error {
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	s.Email = email
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// CanCheckout returns true if the store has a usable checkout contact
func (s *Store) CanCheckout() bool {
	return countDigits(s.WhatsAppNumber) > 0
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// validateSlug validates the public storefront slug
func validateSlug(slug string) error {
	slug = strings.ToLower(slug)
	if len(slug) < 3 {
		return shared.NewDomainError("INVALID_SLUG", "Slug must be at least 3 characters")
	}
	if len(slug) > 50 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 50 characters")
	}
	if !slugPattern.MatchString(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug can only contain lowercase letters, numbers, and hyphens")
	}
	return nil
}

// validateBusinessName validates the store display name
func validateBusinessName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot exceed 200 characters")
	}
	return nil
}

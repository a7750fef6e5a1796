package storefront

import (
	"fmt"
	"net/url"
	"strings"
)

// whatsappBaseURL is the click-to-chat endpoint the checkout link targets
const whatsappBaseURL = "https://wa.me/"

// BuildOrderMessage serializes the cart into the human-readable order
// summary sent at checkout. One row per line item, then the cart total,
// framed by a greeting naming the store and a closing confirmation
// sentence. Amounts are prefixed with the currency code, not its symbol.
//
// The builder assumes the cart is non-empty; the checkout use case
// enforces that guard before calling it.
func BuildOrderMessage(cart *Cart, currency, storeName string) string {
	if storeName == "" {
		storeName = "Our Store"
	}

	rows := make([]string, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		rows = append(rows, fmt.Sprintf("%s - Quantity: %d - %s %s",
			l.Title, l.Quantity, currency, l.LineTotal().StringFixed(2)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I'd like to order the following from %s:\n\n", storeName)
	b.WriteString(strings.Join(rows, "\n"))
	fmt.Fprintf(&b, "\n\nTotal: %s %s", currency, cart.Total().StringFixed(2))
	b.WriteString("\n\nPlease confirm my order. Thank you!")
	return b.String()
}

// CheckoutLink composes the wa.me deep link for the order message.
// Every non-digit is stripped from the contact number and the message
// is percent-encoded as a URL query component, with spaces as %20.
//
// The caller guarantees the number contains at least one digit;
// see CartService.Checkout for the guard.
func CheckoutLink(message, whatsappNumber string) string {
	return whatsappBaseURL + DigitsOnly(whatsappNumber) + "?text=" + encodeQueryComponent(message)
}

// DigitsOnly strips every non-digit character from a contact number,
// so "+1 (234) 567-890" becomes "1234567890"
func DigitsOnly(number string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
}

// encodeQueryComponent percent-encodes a string for use as a URL query
// value. QueryEscape emits "+" for spaces; "%20" keeps the value
// readable by any percent-decoder, matching what browsers produce for
// query components.
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

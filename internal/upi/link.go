// Package upi builds the deterministic upi://pay deep link encoded into the
// payment QR. The link format is treated as an opaque string template.
package upi

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// PaymentLink renders a UPI payment intent for the given payee and amount.
// The transaction reference travels in both tr and tn so payment apps that
// only surface the note still show it.
func PaymentLink(payeeAddress, payeeName string, amount decimal.Decimal, reference string) string {
	params := url.Values{}
	params.Set("pa", payeeAddress)
	params.Set("pn", payeeName)
	params.Set("am", amount.StringFixed(2))
	params.Set("cu", "INR")
	params.Set("tr", reference)
	params.Set("tn", fmt.Sprintf("Payment %s", reference))

	return "upi://pay?" + params.Encode()
}

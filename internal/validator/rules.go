package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// upiIDPattern accepts local-part@bank-handle addresses such as
// "shop.electronics@okhdfc".
var upiIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)

func registerCustomRules(v *validator.Validate) {
	// upi_id: pattern check; length bounds are expressed with min/max tags
	// on the DTO fields.
	_ = v.RegisterValidation("upi_id", func(fl validator.FieldLevel) bool {
		return upiIDPattern.MatchString(fl.Field().String())
	})
}

// IsValidUpiAddress is the same check for callers outside binding, such as
// the merchant service double-checking before insert.
func IsValidUpiAddress(address string) bool {
	return len(address) >= 5 && len(address) <= 50 && upiIDPattern.MatchString(address)
}

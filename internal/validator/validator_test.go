package validator

import (
	"testing"

	"upipay_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidUpiAddress(t *testing.T) {
	t.Parallel()

	valid := []string{
		"shop@okhdfc",
		"shop.electronics@okaxis",
		"user_name-1@paytm",
		"a.b@c2",
	}
	for _, address := range valid {
		assert.True(t, IsValidUpiAddress(address), "expected %q to be valid", address)
	}

	invalid := []string{
		"",
		"a@b",            // too short
		"noat",           // no separator
		"shop@",          // empty handle
		"@okhdfc",        // empty local part
		"shop@ok-hdfc",   // handle allows alphanumerics only
		"sh op@okhdfc",   // whitespace
		"shop@okhdfc@up", // double separator
	}
	for _, address := range invalid {
		assert.False(t, IsValidUpiAddress(address), "expected %q to be invalid", address)
	}

	// Boundary lengths.
	longLocal := make([]byte, 44)
	for i := range longLocal {
		longLocal[i] = 'a'
	}
	atMax := string(longLocal) + "@okupi" // 50 chars
	assert.True(t, IsValidUpiAddress(atMax))
	assert.False(t, IsValidUpiAddress("a"+atMax))
}

func TestValidate_RegisterRequest(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&dto.RegisterUpiRequest{
		UpiID:        "shop@okhdfc",
		MerchantName: "Test Shop",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&dto.RegisterUpiRequest{
		UpiID:        "bad address",
		MerchantName: "X",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "upi_id")
	assert.Contains(t, vErr.Errors, "merchant_name")
	assert.Equal(t, "must be at least 2 characters", vErr.Errors["merchant_name"])
}

func TestValidate_TransitionStatusOneOf(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&dto.TransitionRequest{Status: "success"}))
	assert.NoError(t, v.Validate(&dto.TransitionRequest{Status: "failed"}))
	assert.NoError(t, v.Validate(&dto.TransitionRequest{Status: "expired"}))

	err := v.Validate(&dto.TransitionRequest{Status: "pending"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "status")
}

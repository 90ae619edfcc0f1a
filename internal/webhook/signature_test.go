package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignVerify(t *testing.T) {
	t.Parallel()

	sig := Sign("secret", "REF123", "success")
	assert.True(t, Verify("secret", "REF123", "success", sig))
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	sig := Sign("secret", "REF123", "success")

	assert.False(t, Verify("other-secret", "REF123", "success", sig), "wrong secret")
	assert.False(t, Verify("secret", "REF456", "success", sig), "signature bound to reference")
	assert.False(t, Verify("secret", "REF123", "failed", sig), "signature bound to status")
	assert.False(t, Verify("secret", "REF123", "success", ""), "empty signature")
	assert.False(t, Verify("secret", "REF123", "success", "deadbeef"), "garbage signature")
}

func TestSign_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Sign("secret", "REF123", "success"), Sign("secret", "REF123", "success"))
}

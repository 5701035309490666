package booking

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRazorpaySignatureVerification(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret123")

	mac := hmac.New(sha256.New, []byte("secret123"))
	mac.Write([]byte("order_rzp1|pay_rzp1"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, g.VerifySignature("order_rzp1", "pay_rzp1", valid))
	assert.False(t, g.VerifySignature("order_rzp1", "pay_rzp1", "tampered"))
	assert.False(t, g.VerifySignature("order_other", "pay_rzp1", valid))
	assert.False(t, g.VerifySignature("order_rzp1", "pay_other", valid))
}

func TestGatewayKeyID(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret123")
	assert.Equal(t, "rzp_test_key", g.KeyID())
}

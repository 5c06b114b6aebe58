package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignatureMatchesReference(t *testing.T) {
	secret := "test_secret"
	orderID := "order_MvXk2Lq9zT"
	paymentID := "pay_NwYl3Mr0aU"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, ComputeSignature(secret, orderID, paymentID))
}

func TestVerifySignatureAcceptsOnlyExactMatch(t *testing.T) {
	secret := "test_secret"
	sig := ComputeSignature(secret, "order_1", "pay_1")

	assert.True(t, VerifySignature(secret, "order_1", "pay_1", sig))

	// Any field changing invalidates the signature.
	assert.False(t, VerifySignature(secret, "order_2", "pay_1", sig))
	assert.False(t, VerifySignature(secret, "order_1", "pay_2", sig))
	assert.False(t, VerifySignature("other_secret", "order_1", "pay_1", sig))

	// A single flipped hex digit is rejected.
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	assert.False(t, VerifySignature(secret, "order_1", "pay_1", string(tampered)))
}

func TestVerifySignatureSeparatorIsNotAmbiguous(t *testing.T) {
	// "ab"|"c" and "a"|"bc" must not collide.
	secret := "s"
	sig := ComputeSignature(secret, "ab", "c")
	assert.False(t, VerifySignature(secret, "a", "bc", sig))
}

func TestBuildUPIURI(t *testing.T) {
	uri := BuildUPIURI("temple@upi", "Temple Foundation", 500, "Donation DON-42")

	assert.Contains(t, uri, "upi://pay?")
	assert.Contains(t, uri, "pa=temple%40upi")
	assert.Contains(t, uri, "am=500.00")
	assert.Contains(t, uri, "cu=INR")
	assert.Contains(t, uri, "pn=Temple+Foundation")
}

func TestQRCodePNG(t *testing.T) {
	png, err := QRCodePNG("upi://pay?pa=temple@upi&am=1.00", 256)
	assert.NoError(t, err)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

package intake

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// ValidSignature checks the Shopify webhook HMAC: SHA-256 over the exact raw
// body with the shared secret, base64-encoded. The comparison is constant
// time and the computed digest is never surfaced to the caller.
func ValidSignature(payload []byte, secret, header string) bool {
	if header == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(header))
}

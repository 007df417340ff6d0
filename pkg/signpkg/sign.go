// Package signpkg provides HMAC signing of event and webhook payloads.
package signpkg

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Algorithm names the signature algorithm advertised alongside signed payloads.
const Algorithm = "HMAC-SHA256"

// Sign computes a hex encoded HMAC-SHA256 signature over the payload.
// The signature and signature_alg fields are excluded so consumers can
// verify a payload that already carries its own signature.
func Sign(payload map[string]interface{}, secret string) string {
	sanitized := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		if k == "signature" || k == "signature_alg" {
			continue
		}
		sanitized[k] = v
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(Canonical(sanitized)))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether the payload carries a valid signature for the secret.
func Verify(payload map[string]interface{}, secret string) bool {
	signature, ok := payload["signature"].(string)
	if !ok {
		return false
	}

	expected := Sign(payload, secret)

	return hmac.Equal([]byte(expected), []byte(signature))
}

// Canonical serializes a value deterministically: object keys are emitted
// in sorted order at every nesting level, so the same payload always
// produces the same bytes regardless of map iteration order.
func Canonical(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := "{"
		for i, k := range keys {
			if i > 0 {
				out += ","
			}
			key, _ := json.Marshal(k)
			out += fmt.Sprintf("%s:%s", key, Canonical(v[k]))
		}

		return out + "}"
	case []interface{}:
		out := "["
		for i, item := range v {
			if i > 0 {
				out += ","
			}
			out += Canonical(item)
		}

		return out + "]"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "null"
		}

		return string(b)
	}
}

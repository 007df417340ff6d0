package signpkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalSortsKeysAtEveryLevel(t *testing.T) {
	payload := map[string]interface{}{
		"b": 2,
		"a": map[string]interface{}{
			"z": "last",
			"m": []interface{}{1, "two", nil},
			"a": true,
		},
		"c": nil,
	}

	want := `{"a":{"a":true,"m":[1,"two",null],"z":"last"},"b":2,"c":null}`

	require.Equal(t, want, Canonical(payload))

	// Same content assembled in a different order canonicalizes identically.
	reordered := map[string]interface{}{
		"c": nil,
		"a": map[string]interface{}{
			"a": true,
			"z": "last",
			"m": []interface{}{1, "two", nil},
		},
		"b": 2,
	}

	require.Equal(t, Canonical(payload), Canonical(reordered))
}

func TestSignExcludesSignatureFields(t *testing.T) {
	secret := "test-secret"

	payload := map[string]interface{}{
		"amount":   "100.00",
		"currency": "USD",
	}

	signature := Sign(payload, secret)
	require.NotEmpty(t, signature)

	signed := map[string]interface{}{
		"amount":        "100.00",
		"currency":      "USD",
		"signature":     signature,
		"signature_alg": Algorithm,
	}

	require.Equal(t, signature, Sign(signed, secret))
}

func TestVerify(t *testing.T) {
	secret := "test-secret"

	payload := map[string]interface{}{
		"amount":   "100.00",
		"currency": "USD",
	}

	payload["signature"] = Sign(payload, secret)
	payload["signature_alg"] = Algorithm

	require.True(t, Verify(payload, secret))
	require.False(t, Verify(payload, "other-secret"))

	payload["amount"] = "999.00"
	require.False(t, Verify(payload, secret))
}

func TestVerifyWithoutSignature(t *testing.T) {
	require.False(t, Verify(map[string]interface{}{"amount": "1.00"}, "secret"))
}
